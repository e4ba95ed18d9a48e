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

// Package checker is the concurrent checking engine: a fixed-size worker pool
// pulls targets from a shared queue, resolves each one through a bounded
// retry policy around single HTTP probes, and collects the outcomes into a
// report ordered by input order regardless of completion order.
package checker

import (
	"time"
)

// Kind classifies the outcome of a single probe attempt
type Kind string

const (
	// Success means an HTTP exchange completed, whatever the status code
	Success Kind = "Success"
	// Timeout means the per-attempt deadline expired before a response
	Timeout Kind = "Timeout"
	// ConnectionError covers DNS failures, refused connections and TLS negotiation failures
	ConnectionError Kind = "ConnectionError"
	// OtherError covers malformed urls and unexpected client errors
	OtherError Kind = "OtherError"
)

// ProbeOutcome is the result of one network attempt against a target.
// A fresh value is created per attempt and never mutated.
type ProbeOutcome struct {
	// Kind classifies the attempt
	Kind Kind
	// StatusCode is only set when Kind is Success
	StatusCode int
	// Elapsed is the measured duration of the attempt
	Elapsed time.Duration
	// Err holds the underlying failure for non-Success outcomes
	Err error
}

// CheckResult is the final, retry-resolved record for one target
type CheckResult struct {
	// Target is the checked url
	Target string
	// Outcome is the last observed probe outcome
	Outcome ProbeOutcome
	// Attempts is the number of attempts made, starting at 1
	Attempts int
	// Timestamp is the UTC time the final attempt completed
	Timestamp time.Time
}

// Reachable reports whether the final attempt was a Success
func (r CheckResult) Reachable() bool {
	return r.Outcome.Kind == Success
}

// Report is the input-ordered sequence of results of one sweep run,
// one entry per deduplicated target
type Report []CheckResult

// FailedCount returns the number of targets whose final attempt was not a Success
func (r Report) FailedCount() int {
	failed := 0
	for _, res := range r {
		if !res.Reachable() {
			failed++
		}
	}
	return failed
}
