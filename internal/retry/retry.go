// Package retry provides the one retry policy used across the service: a
// bounded exponential backoff applied to read paths whose failures are
// classified as transient. Writes are never routed through here.
package retry

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Policy describes a bounded exponential backoff. Classify decides whether
// an error is transient and worth another attempt; a nil Classify retries
// every error.
type Policy struct {
	MaxAttempts uint64
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Classify    func(error) bool
}

// DefaultReads is the policy for classified-transient read paths.
var DefaultReads = Policy{
	MaxAttempts: 3,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

// Do runs fn under the policy, honoring context cancellation between
// attempts. The last error is returned once attempts are exhausted or fn
// fails with a non-transient error.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	b := retry.NewExponential(p.BaseDelay)
	if p.MaxDelay > 0 {
		b = retry.WithCappedDuration(p.MaxDelay, b)
	}
	if p.MaxAttempts > 0 {
		b = retry.WithMaxRetries(p.MaxAttempts-1, b)
	}

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if p.Classify != nil && !p.Classify(err) {
			return err
		}
		return retry.RetryableError(err)
	})
}

// WithClassifier returns a copy of the policy using the given classifier.
func (p Policy) WithClassifier(classify func(error) bool) Policy {
	p.Classify = classify
	return p
}
