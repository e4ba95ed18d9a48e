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
	"strconv"
	"time"
)

// Report output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the full configuration of one sweep run
type Config struct {
	// TargetsFile is the path or http(s) url of a target list; may be empty
	// when targets are passed as arguments
	TargetsFile string
	// TargetsToken is the bearer token used when TargetsFile is a remote url
	TargetsToken string
	// Targets are additional urls passed as positional arguments
	Targets []string
	// Timeout bounds a single probe attempt
	Timeout time.Duration
	// Retries is the number of additional attempts after the first one
	Retries int
	// Workers is the size of the worker pool
	Workers int
	// Backoff is the base delay between attempts of one target; it doubles
	// with every further attempt
	Backoff time.Duration
	// Output is the report file path, "-" meaning stdout
	Output string
	// Format is one of text, json or yaml
	Format string
}

// NewConfig creates a new Config
func NewConfig() *Config {
	return &Config{}
}

func (c *Config) SetTargetsFile(path string) {
	c.TargetsFile = path
}

func (c *Config) SetTargetsToken(token string) {
	c.TargetsToken = token
}

// SetTargets sets the urls passed as positional arguments
func (c *Config) SetTargets(urls []string) {
	c.Targets = urls
}

// SetTimeout sets the per-attempt timeout
func (c *Config) SetTimeout(timeout time.Duration) {
	c.Timeout = timeout
}

// SetRetries sets the number of retries after the first attempt
func (c *Config) SetRetries(retries int) {
	c.Retries = retries
}

// SetWorkers sets the worker pool size
func (c *Config) SetWorkers(workers int) {
	c.Workers = workers
}

// SetBackoff sets the base delay between attempts
func (c *Config) SetBackoff(backoff time.Duration) {
	c.Backoff = backoff
}

func (c *Config) SetOutput(path string) {
	c.Output = path
}

func (c *Config) SetFormat(format string) {
	c.Format = format
}

// MaxAttempts returns the total attempt count per target
func (c *Config) MaxAttempts() int {
	return c.Retries + 1
}

// ParseFlexibleDuration parses a duration flag value. Plain numbers are read
// as seconds, matching the original flag format; everything else must be a
// Go duration string like "1.5s" or "500ms".
func ParseFlexibleDuration(s string) (time.Duration, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(f * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}
