// Package backoff produces bounded exponential retry delay sequences with
// optional jitter.
//
// A Backoff value is an immutable description of the sequence. Delays
// iterates it lazily, yielding one element per attempt: a duration to wait
// before retrying, or ok=false once the retry budget is spent.
//
//	b, err := backoff.New(3).Jitter(0.3)
//	if err != nil {
//		return err
//	}
//
//	for delay, ok := range b.Delays() {
//		err = op()
//		if err == nil {
//			return nil
//		}
//		if !ok {
//			return fmt.Errorf("retries exhausted: %w", err)
//		}
//		time.Sleep(delay)
//	}
//
// The sequence never sleeps or performs the retried work; waiting between
// attempts and cancellation are the caller's responsibility.
package backoff
