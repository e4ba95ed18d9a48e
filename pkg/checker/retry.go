// petrel
// (C) 2024, Deutsche Telekom IT GmbH
//
// Deutsche Telekom IT GmbH and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package checker

import (
	"context"
	"time"

	"github.com/petrel-team/petrel/internal/helper"
	"github.com/petrel-team/petrel/internal/logger"
)

// Policy wraps single probes with bounded retries and exponential backoff.
// Timeout and ConnectionError outcomes are retried until MaxAttempts is
// reached; OtherError is terminal, a request that cannot be built will not
// build on the next try either. The first Success stops the sequence.
type Policy struct {
	// MaxAttempts is retries + 1
	MaxAttempts int
	// Timeout bounds each single attempt
	Timeout time.Duration
	// Backoff is the delay before attempt 2; it doubles per further attempt
	Backoff time.Duration
}

// Check resolves one target to its final CheckResult. The whole attempt
// sequence runs on the calling goroutine; retries of one target are never
// parallelized.
func (p Policy) Check(ctx context.Context, prober *Prober, target string) CheckResult {
	log := logger.FromContext(ctx).With("target", target)

	var outcome ProbeOutcome
	attempts := 0
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		attempts = attempt
		outcome = prober.Probe(ctx, target, p.Timeout)
		if outcome.Kind == Success || outcome.Kind == OtherError {
			break
		}
		if attempt == p.MaxAttempts {
			break
		}

		delay := helper.Backoff(p.Backoff, attempt)
		log.Debug("Attempt failed, backing off", "attempt", attempt, "kind", string(outcome.Kind), "delay", delay.String())

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return newResult(target, outcome, attempts)
		case <-timer.C:
		}
	}

	return newResult(target, outcome, attempts)
}

// newResult seals the attempt sequence of a target into its CheckResult
func newResult(target string, outcome ProbeOutcome, attempts int) CheckResult {
	return CheckResult{
		Target:    target,
		Outcome:   outcome,
		Attempts:  attempts,
		Timestamp: time.Now().UTC(),
	}
}
