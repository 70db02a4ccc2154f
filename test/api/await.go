/*
Copyright 2025-2026 the Petstore Conformance Suite Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// The petstore acknowledges writes before they are visible to reads, so a
// read issued straight after a write can observe stale state. Await is the
// single polling primitive the resource clients use to bridge that gap:
// it repeats an action until a predicate accepts the observation or a
// caller-chosen deadline passes.

// AwaitOptions bound one polling loop. Both values are caller-supplied per
// call site; endpoints converge at different speeds and no single global
// pair fits all of them.
type AwaitOptions struct {
	Timeout  time.Duration
	Interval time.Duration
}

// TimeoutError reports that the predicate was never satisfied within the
// bound. It carries the last observation so a failing test can show what the
// service actually returned, distinguishing "service disagrees" from
// "service never converged".
type TimeoutError[T any] struct {
	LastObservation T
	Attempts        int
	Timeout         time.Duration
}

func (e *TimeoutError[T]) Error() string {
	return fmt.Sprintf("condition not met after %s (%d attempts), last observation: %+v",
		e.Timeout, e.Attempts, e.LastObservation)
}

// Await invokes action until predicate accepts its result or opts.Timeout
// elapses, sleeping opts.Interval between attempts.
//
// An error returned by the action is a transport failure, not evidence the
// service has yet to converge, so it propagates immediately and is never
// retried. The predicate must be a pure function of the observation.
//
// On success the accepted observation is returned without any trailing
// sleep. On timeout the returned error is a *TimeoutError[T] carrying the
// last observation. Cancelling ctx stops polling between attempts; it does
// not abort an action already in flight.
func Await[T any](ctx context.Context, action func(context.Context) (T, error), predicate func(T) bool, opts AwaitOptions) (T, error) {
	var last T

	deadline := time.Now().Add(opts.Timeout)
	attempts := 0

	for {
		observation, err := action(ctx)
		if err != nil {
			return last, fmt.Errorf("await action failed: %w", err)
		}

		last = observation
		attempts++

		if predicate(observation) {
			return observation, nil
		}

		if !time.Now().Before(deadline) {
			return last, &TimeoutError[T]{
				LastObservation: last,
				Attempts:        attempts,
				Timeout:         opts.Timeout,
			}
		}

		timer := time.NewTimer(opts.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return last, fmt.Errorf("await cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

// IsTimeout reports whether err is an await timeout for observation type T,
// returning the carried error for inspection.
func IsTimeout[T any](err error) (*TimeoutError[T], bool) {
	var timeoutErr *TimeoutError[T]
	if errors.As(err, &timeoutErr) {
		return timeoutErr, true
	}

	return nil, false
}
