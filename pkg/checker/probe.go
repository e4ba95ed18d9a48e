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
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/petrel-team/petrel/internal/logger"
)

// Prober performs single HTTP attempts against targets.
// It does not retry and has no side effects beyond the network call.
type Prober struct {
	client *http.Client
}

// NewProber creates a prober using the given http.Client.
// The client may be shared across workers; the prober never mutates it.
func NewProber(c *http.Client) *Prober {
	return &Prober{client: c}
}

// Probe performs one GET request against the target with the given timeout
// and classifies the outcome. The response body is closed unread.
func (p *Prober) Probe(ctx context.Context, target string, timeout time.Duration) ProbeOutcome {
	log := logger.FromContext(ctx).With("target", target)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		log.Debug("Could not create request", "error", err)
		return ProbeOutcome{Kind: OtherError, Err: err}
	}

	start := time.Now()
	resp, err := p.client.Do(req) //nolint:bodyclose
	elapsed := time.Since(start)
	if err != nil {
		kind := classify(err)
		log.Debug("Probe failed", "kind", string(kind), "elapsed", elapsed.String(), "error", err)
		return ProbeOutcome{Kind: kind, Elapsed: elapsed, Err: err}
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			log.Debug("Failed to close response body", "error", cerr)
		}
	}(resp.Body)

	return ProbeOutcome{Kind: Success, StatusCode: resp.StatusCode, Elapsed: elapsed}
}

// classify maps a transport error to its outcome kind.
// http.Client wraps everything in *url.Error, so matching happens on the
// unwrapped chain.
func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return Timeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ConnectionError
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ConnectionError
	}
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return ConnectionError
	}
	var authErr x509.UnknownAuthorityError
	if errors.As(err, &authErr) {
		return ConnectionError
	}
	var hostErr x509.HostnameError
	if errors.As(err, &hostErr) {
		return ConnectionError
	}

	return OtherError
}
