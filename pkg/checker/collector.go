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
	"fmt"
	"slices"
	"sync"
)

// collector gathers results as workers complete. Results arrive in
// completion order; the report they form is keyed by input index, so its
// ordering depends only on the input order.
type collector struct {
	mu        sync.Mutex
	results   []CheckResult
	seen      []bool
	remaining int
}

// newCollector creates a collector expecting exactly n results
func newCollector(n int) *collector {
	return &collector{
		results:   make([]CheckResult, n),
		seen:      make([]bool, n),
		remaining: n,
	}
}

// put stores the result for the given input index.
// A second result for the same index is dropped; every target resolves
// exactly once.
func (c *collector) put(i int, res CheckResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.results) || c.seen[i] {
		return
	}
	c.seen[i] = true
	c.results[i] = res
	c.remaining--
}

// report returns the input-ordered results once every target has reported
func (c *collector) report() (Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining != 0 {
		return nil, fmt.Errorf("%w: %d targets outstanding", ErrIncompleteReport, c.remaining)
	}
	return Report(slices.Clone(c.results)), nil
}
