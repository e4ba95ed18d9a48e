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

// Package targets assembles the deduplicated, ordered target list of a sweep
// run from its sources: local files, remote lists and command line arguments.
package targets

import (
	"strings"
)

// Merge concatenates the given target sources in order and removes
// duplicates. The first occurrence of a url wins, so the result preserves the
// order in which targets were supplied.
func Merge(sources ...[]string) []string {
	var all []string
	for _, s := range sources {
		all = append(all, s...)
	}
	return Dedupe(all)
}

// Dedupe removes duplicate urls while preserving input order.
// A target's identity is its exact string value.
func Dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// IsRemote reports whether the target list source is an http(s) url rather
// than a local file path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// parseLines extracts targets from a newline-delimited list.
// Blank lines and lines starting with '#' are skipped; surrounding
// whitespace is trimmed.
func parseLines(b []byte) []string {
	var urls []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}
