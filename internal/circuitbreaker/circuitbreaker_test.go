package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func testConfig() Config {
	return Config{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	}
}

func TestExecuteSuccess(t *testing.T) {
	cb := New(testConfig())

	err := cb.Execute(context.Background(), func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestOpensAfterFailureThreshold(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), func() error { return errBoom })
		assert.ErrorIs(t, err, errBoom)
	}

	assert.Equal(t, StateOpen, cb.State())
	assert.True(t, cb.IsOpen())

	err := cb.Execute(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestHalfOpenRecovery(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBoom })
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	// SuccessThreshold successful probes close the circuit again.
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestHalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBoom })
	}
	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return errBoom })
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, StateOpen, cb.State())
}

func TestExecuteCancelledContext(t *testing.T) {
	cb := New(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestGetStats(t *testing.T) {
	cb := New(testConfig())

	_ = cb.Execute(context.Background(), func() error { return errBoom })

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
