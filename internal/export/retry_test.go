package export

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPolicySucceedsWithoutRetry(t *testing.T) {
	p := NewPolicy(3, time.Second)
	slept := 0
	p.sleep = func(time.Duration) { slept++ }

	calls := 0
	err := p.Do(func() error { calls++; return nil })

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, slept)
}

func TestPolicyRetriesUntilSuccess(t *testing.T) {
	p := NewPolicy(3, time.Second)
	var pauses []time.Duration
	p.sleep = func(d time.Duration) { pauses = append(pauses, d) }

	calls := 0
	err := p.Do(func() error {
		calls++
		if calls < 3 {
			return errors.New("boom")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, pauses)
}

func TestPolicyExhaustionReturnsLastError(t *testing.T) {
	p := NewPolicy(3, time.Second)
	slept := 0
	p.sleep = func(time.Duration) { slept++ }

	calls := 0
	last := errors.New("attempt 3")
	err := p.Do(func() error {
		calls++
		if calls == 3 {
			return last
		}
		return errors.New("earlier")
	})

	assert.Equal(t, last, err)
	assert.Equal(t, 3, calls)
	// No sleep after the final attempt.
	assert.Equal(t, 2, slept)
}

func TestPolicyZeroValueStillRunsOnce(t *testing.T) {
	var p Policy
	calls := 0
	assert.NoError(t, p.Do(func() error { calls++; return nil }))
	assert.Equal(t, 1, calls)
}
