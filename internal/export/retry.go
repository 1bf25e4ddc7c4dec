package export

import "time"

// Policy is a bounded fixed-backoff retry shared by the detail-fetch
// sites: at most MaxAttempts tries with a Backoff sleep between them.
type Policy struct {
	MaxAttempts int
	Backoff     time.Duration

	sleep func(time.Duration)
}

// NewPolicy builds a retry policy with the given attempt budget and a
// fixed pause between attempts.
func NewPolicy(maxAttempts int, backoff time.Duration) Policy {
	return Policy{MaxAttempts: maxAttempts, Backoff: backoff, sleep: time.Sleep}
}

// Do runs fn until it succeeds or the attempt budget is exhausted, then
// returns the last error.
func (p Policy) Do(fn func() error) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt < attempts {
			sleep(p.Backoff)
		}
	}
	return err
}
