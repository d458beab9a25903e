// Package ops contains concrete service operations built on the servicekit
// contract. Each operation captures its parameters at construction, performs
// its logic exactly once under the Service wrapper, and reports failures as
// structured records rather than returned errors.
package ops
