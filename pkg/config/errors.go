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

import "errors"

var (
	// ErrInvalidWorkerCount is returned when the worker count is zero or negative
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	// ErrInvalidTimeout is returned when the per-attempt timeout is not positive
	ErrInvalidTimeout = errors.New("invalid timeout")
	// ErrInvalidRetryCount is returned when the retry count is negative
	ErrInvalidRetryCount = errors.New("invalid retry count")
	// ErrInvalidBackoff is returned when the backoff delay is not positive
	ErrInvalidBackoff = errors.New("invalid backoff delay")
	// ErrInvalidFormat is returned when the report format is unknown
	ErrInvalidFormat = errors.New("invalid report format")
	// ErrInvalidOutput is returned when the report output path is empty
	ErrInvalidOutput = errors.New("invalid output path")
	// ErrNoTargetSource is returned when neither a target file nor urls are given
	ErrNoTargetSource = errors.New("no target source: specify --file or one or more urls")
)
