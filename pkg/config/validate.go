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

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/petrel-team/petrel/internal/logger"
)

// Validate checks the config before any probing starts.
// All problems are logged; the returned error joins every violation so the
// operator sees them in one pass.
func (c *Config) Validate(ctx context.Context, fm *RunFlagsNameMapping) error {
	ctx, cancel := logger.NewContextWithLogger(ctx, "configValidation")
	defer cancel()
	log := logger.FromContext(ctx)

	var errs []error
	if c.Workers <= 0 {
		log.ErrorContext(ctx, "The worker count must be positive", fm.Workers, c.Workers)
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, c.Workers))
	}
	if c.Timeout <= 0 {
		log.ErrorContext(ctx, "The timeout must be positive", fm.Timeout, c.Timeout.String())
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout))
	}
	if c.Retries < 0 {
		log.ErrorContext(ctx, "The retry count must not be negative", fm.Retries, c.Retries)
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidRetryCount, c.Retries))
	}
	if c.Backoff <= 0 {
		log.ErrorContext(ctx, "The backoff delay must be positive", fm.Backoff, c.Backoff.String())
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidBackoff, c.Backoff))
	}
	if c.Output == "" {
		log.ErrorContext(ctx, "The output path must not be empty", fm.Output, c.Output)
		errs = append(errs, ErrInvalidOutput)
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		log.ErrorContext(ctx, "The report format is unknown", fm.Format, c.Format)
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format))
	}

	if c.TargetsFile == "" && len(c.Targets) == 0 {
		log.ErrorContext(ctx, "No target source provided")
		errs = append(errs, ErrNoTargetSource)
	}

	return errors.Join(errs...)
}
