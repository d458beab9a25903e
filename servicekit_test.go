package servicekit

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// returningOperation succeeds and returns a fixed value.
type returningOperation struct {
	value any
}

func (op *returningOperation) Call(_ *Service) any {
	return op.value
}

// failingOperation appends the given records and returns nil.
type failingOperation struct {
	records []Record
}

func (op *failingOperation) Call(s *Service) any {
	for _, r := range op.records {
		s.AppendError(r)
	}
	return nil
}

// malformedErrorOperation violates the contract by appending a plain string.
type malformedErrorOperation struct{}

func (op *malformedErrorOperation) Call(s *Service) any {
	s.AppendError("something went wrong")
	return nil
}

// countingOperation counts how many times its logic actually executes.
type countingOperation struct {
	callCount int
}

func (op *countingOperation) Call(_ *Service) any {
	op.callCount++
	return op.callCount
}

func TestNew_NilOperation(t *testing.T) {
	t.Parallel()

	svc, err := New(nil)

	assert.Nil(t, svc, "New(nil) should not return a service")
	assert.ErrorIs(t, err, ErrNilOperation, "New(nil) should fail with ErrNilOperation")
}

func TestService_Success(t *testing.T) {
	t.Parallel()

	expected := map[string]string{"data": "test"}
	svc, err := New(&returningOperation{value: expected})
	require.NoError(t, err)

	assert.Equal(t, expected, svc.Result(), "Result should be the operation's return value")
	assert.True(t, svc.Success(), "a run with no appended records should succeed")

	records, err := svc.Errors()
	require.NoError(t, err, "a list of valid records should not fail validation")
	assert.Empty(t, records, "a successful run should leave no error records")
}

func TestService_Failure(t *testing.T) {
	t.Parallel()

	record := Record{Message: "something went wrong"}
	svc, err := New(&failingOperation{records: []Record{record}})
	require.NoError(t, err)

	assert.Nil(t, svc.Result(), "a failed operation conventionally returns nil")
	assert.False(t, svc.Success(), "appended records should mark the run as failed")

	records, err := svc.Errors()
	require.NoError(t, err)
	require.Len(t, records, 1, "exactly the appended record should be present")
	assert.Equal(t, record, records[0])
}

func TestService_NilResult(t *testing.T) {
	t.Parallel()

	// Returning nil explicitly is a success as long as no records were
	// appended.
	svc, err := New(&returningOperation{value: nil})
	require.NoError(t, err)

	assert.Nil(t, svc.Result())
	assert.True(t, svc.Success())

	records, err := svc.Errors()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_InvalidErrorEntry(t *testing.T) {
	t.Parallel()

	svc, err := New(&malformedErrorOperation{})
	require.NoError(t, err)

	svc.Run()

	records, err := svc.Errors()
	assert.Nil(t, records, "no partially valid list should be returned")
	require.Error(t, err, "a non-record entry should fail the accessor")

	var invalidErr *InvalidErrorTypeError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "something went wrong", invalidErr.Entry)

	msg := err.Error()
	assert.True(t, len(msg) >= len("Invalid error type"), "message should not be empty")
	assert.Equal(t, "Invalid error type", msg[:len("Invalid error type")],
		"message should start with the literal prefix")
	assert.Contains(t, msg, "'string'", "message should name the offending runtime type")
}

func TestService_ResultCaching(t *testing.T) {
	t.Parallel()

	t.Run("repeated result reads", func(t *testing.T) {
		t.Parallel()

		op := &countingOperation{}
		svc, err := New(op)
		require.NoError(t, err)

		assert.Equal(t, 1, svc.Result())
		assert.Equal(t, 1, svc.Result())
		assert.Equal(t, 1, svc.Result())
		assert.Equal(t, 1, op.callCount, "business logic should execute exactly once")
	})

	t.Run("explicit run before result", func(t *testing.T) {
		t.Parallel()

		op := &countingOperation{}
		svc, err := New(op)
		require.NoError(t, err)

		assert.Equal(t, 1, svc.Run())
		assert.Equal(t, 1, svc.Result())
		assert.Equal(t, 1, svc.Result())
		assert.Equal(t, 1, op.callCount, "Run followed by Result reads should not re-execute")
	})

	t.Run("repeated explicit runs", func(t *testing.T) {
		t.Parallel()

		op := &countingOperation{}
		svc, err := New(op)
		require.NoError(t, err)

		assert.Equal(t, 1, svc.Run())
		assert.Equal(t, 1, svc.Run())
		assert.Equal(t, 1, op.callCount, "Run does not bypass the guard")
	})
}

func TestService_MultipleErrors(t *testing.T) {
	t.Parallel()

	first := Record{Message: "Error 1"}
	second := Record{Message: "Error 2"}
	svc, err := New(&failingOperation{records: []Record{first, second}})
	require.NoError(t, err)

	assert.Nil(t, svc.Result())
	assert.False(t, svc.Success())

	records, err := svc.Errors()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first, records[0], "insertion order should be preserved")
	assert.Equal(t, second, records[1], "insertion order should be preserved")
}

func TestService_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	svc, err := New(&failingOperation{records: []Record{{Message: "Initial error"}}})
	require.NoError(t, err)

	svc.Run()

	records, err := svc.Errors()
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Appends between reads must be visible on the next read.
	svc.AppendError(Record{Message: "Second error"})

	records, err = svc.Errors()
	require.NoError(t, err)
	assert.Len(t, records, 2, "the error list should reflect live mutation")
}

func TestService_SuccessDoesNotTriggerExecution(t *testing.T) {
	t.Parallel()

	op := &countingOperation{}
	svc, err := New(op)
	require.NoError(t, err)

	assert.True(t, svc.Success(), "before execution no errors exist yet")
	assert.Equal(t, 0, op.callCount, "Success should not trigger execution")
}

func TestService_Status(t *testing.T) {
	t.Parallel()

	t.Run("pending before execution", func(t *testing.T) {
		t.Parallel()

		svc, err := New(&returningOperation{value: 42})
		require.NoError(t, err)

		assert.Equal(t, StatusPending, svc.Status())
	})

	t.Run("completed after clean run", func(t *testing.T) {
		t.Parallel()

		svc, err := New(&returningOperation{value: 42})
		require.NoError(t, err)

		svc.Run()
		assert.Equal(t, StatusCompleted, svc.Status())
	})

	t.Run("failed after run with records", func(t *testing.T) {
		t.Parallel()

		svc, err := New(&failingOperation{records: []Record{{Message: "boom"}}})
		require.NoError(t, err)

		svc.Run()
		assert.Equal(t, StatusFailed, svc.Status())
	})
}

func TestService_ID(t *testing.T) {
	t.Parallel()

	first, err := New(&returningOperation{})
	require.NoError(t, err)
	second, err := New(&returningOperation{})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID(), "each instance should get its own identity")
}

func TestService_RunLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	svc, err := New(&failingOperation{records: []Record{{Message: "boom"}}})
	require.NoError(t, err)
	svc.SetLogger(logger)

	svc.Run()

	output := buf.String()
	assert.Contains(t, output, "service operation starting")
	assert.Contains(t, output, "service operation finished with errors")
	assert.Contains(t, output, svc.ID().String(), "log output should carry the instance ID")
}

func TestService_SetLoggerNil(t *testing.T) {
	t.Parallel()

	svc, err := New(&returningOperation{value: 1})
	require.NoError(t, err)

	// Must not panic when the logger is reset to the default.
	svc.SetLogger(nil)
	assert.Equal(t, 1, svc.Run())
}
