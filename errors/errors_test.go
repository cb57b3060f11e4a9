package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(99), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.class.String())
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.True(t, IsTransient(ErrConnectionLost))
	assert.True(t, IsTransient(ErrConnectionTimeout))
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.True(t, IsTransient(errors.New("network unreachable")))
	assert.False(t, IsTransient(errors.New("syntax error")))
}

func TestIsInvalid(t *testing.T) {
	assert.False(t, IsInvalid(nil))
	assert.True(t, IsInvalid(ErrInvalidData))
	assert.True(t, IsInvalid(ErrUnknownVariant))
	assert.True(t, IsInvalid(ErrMalformedEscape))
	assert.True(t, IsInvalid(ErrShapeMismatch))
	assert.False(t, IsInvalid(ErrInvalidConfig)) // fatal, not invalid input
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.True(t, IsFatal(ErrInvalidConfig))
	assert.True(t, IsFatal(ErrMissingConfig))
	assert.False(t, IsFatal(ErrConnectionLost))
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrap(base, "gateway", "Dial", "open websocket")

	require.Error(t, wrapped)
	assert.Equal(t, "gateway.Dial: open websocket failed: boom", wrapped.Error())
	assert.True(t, errors.Is(wrapped, base))

	assert.Nil(t, Wrap(nil, "gateway", "Dial", "open websocket"))
}

func TestWrapClassified(t *testing.T) {
	base := errors.New("boom")

	transient := WrapTransient(base, "gateway", "Dial", "connect")
	assert.Equal(t, ErrorTransient, Classify(transient))
	assert.True(t, errors.Is(transient, base))

	invalid := WrapInvalid(base, "event", "Parse", "decode")
	assert.Equal(t, ErrorInvalid, Classify(invalid))

	fatal := WrapFatal(base, "config", "Load", "validate")
	assert.Equal(t, ErrorFatal, Classify(fatal))

	var ce *ClassifiedError
	require.True(t, errors.As(invalid, &ce))
	assert.Equal(t, "event", ce.Component)
	assert.Equal(t, "Parse", ce.Operation)
}

func TestUnknownVariantError(t *testing.T) {
	err := &UnknownVariantError{Wrapper: "segment", Tag: "bogus"}

	assert.Equal(t, `unknown segment variant "bogus"`, err.Error())
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	assert.True(t, IsInvalid(err))

	var uve *UnknownVariantError
	wrapped := fmt.Errorf("decode: %w", err)
	require.True(t, errors.As(wrapped, &uve))
	assert.Equal(t, "bogus", uve.Tag)
}

func TestMalformedEscapeError(t *testing.T) {
	err := &MalformedEscapeError{Input: `ab\`, Pos: 2}

	assert.Equal(t, "malformed escape sequence at byte 2", err.Error())
	assert.True(t, errors.Is(err, ErrMalformedEscape))
	assert.True(t, IsInvalid(err))
}

func TestShapeMismatchError(t *testing.T) {
	err := &ShapeMismatchError{Tag: "At", Field: "target", Reason: "expected number"}

	assert.Equal(t, `variant "At": field "target": expected number`, err.Error())
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	bare := &ShapeMismatchError{Tag: "Face", Reason: "no identifying field"}
	assert.Equal(t, `variant "Face": no identifying field`, bare.Error())
}

func TestRetryConfig_ShouldRetry(t *testing.T) {
	cfg := DefaultRetryConfig()

	assert.False(t, cfg.ShouldRetry(nil, 0))
	assert.True(t, cfg.ShouldRetry(ErrConnectionLost, 0))
	assert.False(t, cfg.ShouldRetry(ErrConnectionLost, 3))
	assert.False(t, cfg.ShouldRetry(ErrUnknownVariant, 0))

	cfg.RetryableErrors = []error{ErrConnectionTimeout}
	assert.True(t, cfg.ShouldRetry(ErrConnectionTimeout, 0))
	assert.False(t, cfg.ShouldRetry(ErrConnectionLost, 0))
}

func TestRetryConfig_ToRetryConfig(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries:    4,
		InitialDelay:  50 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
	}

	rc := cfg.ToRetryConfig()
	assert.Equal(t, 5, rc.MaxAttempts)
	assert.Equal(t, 50*time.Millisecond, rc.InitialDelay)
	assert.Equal(t, 2*time.Second, rc.MaxDelay)
	assert.True(t, rc.AddJitter)
}

func TestRetryConfig_BackoffDelay(t *testing.T) {
	cfg := DefaultRetryConfig()

	assert.Equal(t, cfg.InitialDelay, cfg.BackoffDelay(0))
	assert.Equal(t, 200*time.Millisecond, cfg.BackoffDelay(1))
	assert.Equal(t, 400*time.Millisecond, cfg.BackoffDelay(2))
	assert.Equal(t, cfg.MaxDelay, cfg.BackoffDelay(20))
}
