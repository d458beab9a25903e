// Package domain contains the entities operated on by the example service
// operations. Entities hold no infrastructure concerns; construction
// validates the few invariants the types themselves can guarantee.
package domain
