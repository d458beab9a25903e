package servicekit

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Status represents the derived lifecycle state of a Service.
// It is computed from the run flag and the error list, never stored.
type Status string

// Possible service status values
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Operation contains the business logic of one service object.
// Implementations receive the wrapping Service so they can append structured
// failures; they return the operation's result value, conventionally nil when
// the operation failed. Implementations must not raise failures as panics -
// expected failures are appended as Records instead.
type Operation interface {
	// Call executes the business logic. The Service guarantees Call runs at
	// most once per instance, whichever of Run or Result triggers it first.
	Call(s *Service) any
}

// Service wraps an Operation with lazy at-most-once execution, a cached
// result, and an ordered list of structured error records.
//
// A Service is not safe for concurrent use: the execution guard is not
// synchronized, and each instance is intended for a single goroutine.
type Service struct {
	id     uuid.UUID
	op     Operation
	logger *slog.Logger

	// errs holds entries of any type so that a contract violation by the
	// operation author (appending a non-Record) is representable and is
	// detected when Errors is read.
	errs   []any
	result any
	hasRun bool
}

// New creates a Service wrapping the given operation.
// It returns ErrNilOperation if op is nil; the abstract contract has no
// default business logic to fall back on.
func New(op Operation) (*Service, error) {
	if op == nil {
		return nil, ErrNilOperation
	}

	return &Service{
		id:     uuid.New(),
		op:     op,
		logger: slog.Default(),
	}, nil
}

// ID returns the service instance's unique identifier, used in log output.
func (s *Service) ID() uuid.UUID {
	return s.id
}

// SetLogger replaces the logger used for execution logging.
// Passing nil restores the default logger.
func (s *Service) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.logger = logger
}

// Run executes the operation if it has not run yet and returns the cached
// result. Repeated calls never re-execute the business logic; they return
// the value cached by the first run. Run is also the entry point used by
// Result, so invoking Run explicitly before reading Result does not cause a
// second execution.
func (s *Service) Run() any {
	if s.hasRun {
		return s.result
	}

	opType := fmt.Sprintf("%T", s.op)
	s.logger.Debug("service operation starting",
		"service_id", s.id,
		"operation", opType)

	start := time.Now()
	s.result = s.op.Call(s)
	s.hasRun = true

	if len(s.errs) > 0 {
		s.logger.Warn("service operation finished with errors",
			"service_id", s.id,
			"operation", opType,
			"error_count", len(s.errs),
			"duration", time.Since(start))
	} else {
		s.logger.Debug("service operation finished",
			"service_id", s.id,
			"operation", opType,
			"duration", time.Since(start))
	}

	return s.result
}

// Result returns the lazily computed result of the operation.
// The first read triggers execution; every subsequent read returns the
// identical cached value. There is no invalidation - the value is permanent
// for the instance's lifetime.
func (s *Service) Result() any {
	return s.Run()
}

// Success reports whether the error list is empty at the time of the read.
// It never triggers execution: before the operation has run it reports
// "no errors yet" rather than "succeeded". Use Status to distinguish the
// pre-execution state.
func (s *Service) Success() bool {
	return len(s.errs) == 0
}

// Status derives the lifecycle state of the service: StatusPending before
// the operation has run, StatusFailed after a run that left error records,
// StatusCompleted otherwise. Like Success, it never triggers execution.
func (s *Service) Status() Status {
	switch {
	case !s.hasRun:
		return StatusPending
	case len(s.errs) > 0:
		return StatusFailed
	default:
		return StatusCompleted
	}
}

// Errors returns the ordered list of structured error records appended
// during execution. Every read re-validates the whole list: if any entry is
// not a Record, Errors returns an *InvalidErrorTypeError naming the
// offending entry's type instead of a partially valid list. The list is not
// cached, so an append between two reads is visible on the next read.
func (s *Service) Errors() ([]Record, error) {
	if len(s.errs) == 0 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(s.errs))
	for _, entry := range s.errs {
		record, ok := entry.(Record)
		if !ok {
			return nil, &InvalidErrorTypeError{Entry: entry}
		}
		records = append(records, record)
	}

	return records, nil
}

// AppendError appends a raw entry to the error list in insertion order.
// The entry is expected to be a Record; appending anything else is a
// contract violation that surfaces on the next Errors read. Operations that
// want append-time validation should use AppendRecord.
func (s *Service) AppendError(entry any) {
	s.errs = append(s.errs, entry)
}

// AppendRecord validates the record and appends it to the error list.
// Returns an error wrapping ErrInvalidRecord when the record has no message;
// nothing is appended in that case.
func (s *Service) AppendRecord(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.errs = append(s.errs, r)
	return nil
}

// Fail appends a Record carrying the given message.
func (s *Service) Fail(msg string) {
	s.errs = append(s.errs, Record{Message: msg})
}

// Failf appends a Record carrying the formatted message.
func (s *Service) Failf(format string, args ...any) {
	s.Fail(fmt.Sprintf(format, args...))
}
