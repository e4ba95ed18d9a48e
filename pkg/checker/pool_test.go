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
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrel-team/petrel/internal/httpclient"
	"github.com/petrel-team/petrel/pkg/targets"
)

func testContext() context.Context {
	return httpclient.IntoContext(context.Background(), &http.Client{})
}

func TestPool_Run_DedupScenario(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, "http://a.test", httpmock.NewStringResponder(http.StatusOK, ""))
	httpmock.RegisterResponder(http.MethodGet, "http://b.test", httpmock.NewErrorResponder(context.DeadlineExceeded))

	urls := targets.Dedupe([]string{"http://a.test", "http://b.test", "http://a.test"})

	pool, err := New(Config{Workers: 2, Timeout: time.Second, Retries: 1, Backoff: time.Millisecond})
	require.NoError(t, err)

	rep, err := pool.Run(testContext(), urls)
	require.NoError(t, err)
	require.Len(t, rep, 2)

	assert.Equal(t, "http://a.test", rep[0].Target)
	assert.Equal(t, Success, rep[0].Outcome.Kind)
	assert.Equal(t, http.StatusOK, rep[0].Outcome.StatusCode)
	assert.Equal(t, 1, rep[0].Attempts)

	assert.Equal(t, "http://b.test", rep[1].Target)
	assert.Equal(t, Timeout, rep[1].Outcome.Kind)
	assert.Equal(t, 2, rep[1].Attempts)

	assert.Equal(t, 1, rep.FailedCount())
}

func TestPool_Run_ReportKeepsInputOrder(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var urls []string
	for i := 0; i < 20; i++ {
		u := fmt.Sprintf("http://host-%02d.test", i)
		urls = append(urls, u)
		delay := time.Duration(20-i) * time.Millisecond
		httpmock.RegisterResponder(http.MethodGet, u, func(req *http.Request) (*http.Response, error) {
			time.Sleep(delay)
			return httpmock.NewStringResponse(http.StatusOK, ""), nil
		})
	}

	pool, err := New(Config{Workers: 5, Timeout: time.Second, Retries: 0, Backoff: time.Millisecond})
	require.NoError(t, err)

	rep, err := pool.Run(testContext(), urls)
	require.NoError(t, err)
	require.Len(t, rep, len(urls))
	for i, res := range rep {
		assert.Equal(t, urls[i], res.Target, "report order must match input order")
	}
}

func TestPool_Run_ConcurrencyBound(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	const workers = 3
	var inFlight, peak atomic.Int64

	var urls []string
	for i := 0; i < 12; i++ {
		u := fmt.Sprintf("http://host-%02d.test", i)
		urls = append(urls, u)
		httpmock.RegisterResponder(http.MethodGet, u, func(req *http.Request) (*http.Response, error) {
			cur := inFlight.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return httpmock.NewStringResponse(http.StatusOK, ""), nil
		})
	}

	pool, err := New(Config{Workers: workers, Timeout: time.Second, Retries: 0, Backoff: time.Millisecond})
	require.NoError(t, err)

	_, err = pool.Run(testContext(), urls)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int64(workers), "no more than N probes may be in flight")
}

func TestPool_Run_Idempotent(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, "http://a.test", httpmock.NewStringResponder(http.StatusOK, ""))
	httpmock.RegisterResponder(http.MethodGet, "http://b.test", httpmock.NewStringResponder(http.StatusTeapot, ""))

	urls := []string{"http://a.test", "http://b.test"}
	pool, err := New(Config{Workers: 2, Timeout: time.Second, Retries: 1, Backoff: time.Millisecond})
	require.NoError(t, err)

	first, err := pool.Run(testContext(), urls)
	require.NoError(t, err)
	second, err := pool.Run(testContext(), urls)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Target, second[i].Target)
		assert.Equal(t, first[i].Outcome.Kind, second[i].Outcome.Kind)
		assert.Equal(t, first[i].Outcome.StatusCode, second[i].Outcome.StatusCode)
		assert.Equal(t, first[i].Attempts, second[i].Attempts)
	}
}

func TestPool_Run_CanceledContext(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodGet, "http://a.test", httpmock.NewStringResponder(http.StatusOK, ""))

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	pool, err := New(Config{Workers: 1, Timeout: time.Second, Retries: 0, Backoff: time.Millisecond})
	require.NoError(t, err)

	_, err = pool.Run(ctx, []string{"http://a.test"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPool_Run_EmptyTargetList(t *testing.T) {
	pool, err := New(Config{Workers: 4, Timeout: time.Second, Retries: 0, Backoff: time.Millisecond})
	require.NoError(t, err)

	rep, err := pool.Run(testContext(), nil)
	require.NoError(t, err)
	assert.Empty(t, rep)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "zero workers", cfg: Config{Workers: 0, Timeout: time.Second, Backoff: time.Millisecond}},
		{name: "negative workers", cfg: Config{Workers: -1, Timeout: time.Second, Backoff: time.Millisecond}},
		{name: "zero timeout", cfg: Config{Workers: 1, Timeout: 0, Backoff: time.Millisecond}},
		{name: "negative retries", cfg: Config{Workers: 1, Timeout: time.Second, Retries: -1, Backoff: time.Millisecond}},
		{name: "zero backoff", cfg: Config{Workers: 1, Timeout: time.Second, Backoff: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			var wantErr ErrInvalidConfig
			assert.ErrorAs(t, err, &wantErr)
		})
	}
}
