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
	"sync"
	"time"

	"github.com/petrel-team/petrel/internal/httpclient"
	"github.com/petrel-team/petrel/internal/logger"
)

// Config configures the worker pool of one sweep run
type Config struct {
	// Workers is the number of concurrent execution slots
	Workers int
	// Timeout bounds each single probe attempt
	Timeout time.Duration
	// Retries is the number of additional attempts after the first one
	Retries int
	// Backoff is the base delay between attempts of one target
	Backoff time.Duration
}

// Validate checks the pool configuration
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return ErrInvalidConfig{Field: "workers", Reason: "must be a positive integer"}
	}
	if c.Timeout <= 0 {
		return ErrInvalidConfig{Field: "timeout", Reason: "must be a positive duration"}
	}
	if c.Retries < 0 {
		return ErrInvalidConfig{Field: "retries", Reason: "must not be negative"}
	}
	if c.Backoff <= 0 {
		return ErrInvalidConfig{Field: "backoff", Reason: "must be a positive duration"}
	}
	return nil
}

// job pairs a target with its position in the input order
type job struct {
	index  int
	target string
}

// Pool distributes targets across a fixed number of workers.
// Workers pull from one shared queue, so slow targets never leave other
// slots idle while work remains.
type Pool struct {
	cfg     Config
	metrics metrics
}

// New creates a worker pool for the given config
func New(cfg Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pool{
		cfg:     cfg,
		metrics: newMetrics(),
	}, nil
}

// Run sweeps all targets and returns the input-ordered report.
// The target slice is expected to be deduplicated; each entry resolves to
// exactly one result. At most cfg.Workers retry sequences are in flight at
// any instant, and each sequence runs entirely within one worker slot.
// The http.Client shared by the probes is taken from the context.
func (p *Pool) Run(ctx context.Context, urls []string) (Report, error) {
	ctx, cancel := logger.NewContextWithLogger(ctx, "pool")
	defer cancel()
	log := logger.FromContext(ctx)

	prober := NewProber(httpclient.FromContext(ctx))
	policy := Policy{
		MaxAttempts: p.cfg.Retries + 1,
		Timeout:     p.cfg.Timeout,
		Backoff:     p.cfg.Backoff,
	}
	coll := newCollector(len(urls))

	jobs := make(chan job)
	go func() {
		defer close(jobs)
		for i, u := range urls {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{index: i, target: u}:
			}
		}
	}()

	workers := p.cfg.Workers
	if len(urls) < workers {
		workers = len(urls)
	}
	log.Debug("Starting sweep", "workers", workers, "targets", len(urls))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := policy.Check(ctx, prober, j.target)
				p.metrics.record(res)
				coll.put(j.index, res)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		log.Error("Sweep aborted", "error", err)
		return nil, err
	}

	log.Debug("Sweep finished")
	return coll.report()
}
