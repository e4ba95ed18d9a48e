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

package targets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/petrel-team/petrel/internal/helper"
	"github.com/petrel-team/petrel/internal/logger"
)

// HTTPLoader fetches a newline-delimited target list from a remote endpoint.
// A failed fetch is retried with exponential backoff before the run is
// aborted.
type HTTPLoader struct {
	url      string
	token    string
	client   *http.Client
	retryCfg helper.RetryConfig
}

// NewHTTPLoader creates a loader for the given target list url.
// The token, if not empty, is sent as a bearer token.
func NewHTTPLoader(url, token string, timeout time.Duration, rc helper.RetryConfig) *HTTPLoader {
	return &HTTPLoader{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout: timeout,
		},
		retryCfg: rc,
	}
}

// Load gets the remote target list, retrying per the loader's retry config
func (hl *HTTPLoader) Load(ctx context.Context) ([]string, error) {
	ctx, cancel := logger.NewContextWithLogger(ctx, "httpLoader")
	defer cancel()
	log := logger.FromContext(ctx)

	var urls []string
	getTargetsRetry := helper.Retry(func(ctx context.Context) error {
		var err error
		urls, err = hl.fetch(ctx)
		return err
	}, hl.retryCfg)

	if err := getTargetsRetry(ctx); err != nil {
		log.Error("Could not get remote target list", "url", hl.url, "error", err)
		return nil, err
	}

	log.Info("Successfully got remote target list", "url", hl.url, "targets", len(urls))
	return urls, nil
}

// fetch performs one GET against the target list url
func (hl *HTTPLoader) fetch(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).With("url", hl.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, hl.url, http.NoBody)
	if err != nil {
		log.Error("Could not create http GET request", "error", err.Error())
		return nil, err
	}
	if hl.token != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", hl.token))
	}

	res, err := hl.client.Do(req) //nolint:bodyclose
	if err != nil {
		log.Error("Http get request failed", "error", err.Error())
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			log.Error("Failed to close response body", "error", cerr.Error())
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		log.Error("Http get request failed", "status", res.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrListUnavailable, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Error("Could not read response body", "error", err.Error())
		return nil, err
	}

	return parseLines(body), nil
}
