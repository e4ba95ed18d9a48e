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

package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/petrel-team/petrel/pkg/checker"
)

// WriteText writes the report as stable, machine-parsable lines, one per
// result, in report order:
//
//	<RFC3339-UTC>  <url>  <status|ERROR>  <elapsed-ms>ms  attempts=<n> kind=<kind>
func WriteText(w io.Writer, rep checker.Report) error {
	bw := bufio.NewWriter(w)
	for _, res := range rep {
		if _, err := fmt.Fprintln(bw, formatLine(res)); err != nil {
			return fmt.Errorf("write report line for %s: %w", res.Target, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// formatLine renders one result into the stable text line format
func formatLine(res checker.CheckResult) string {
	return fmt.Sprintf("%s  %s  %s  %dms  attempts=%d kind=%s",
		res.Timestamp.UTC().Format(time.RFC3339),
		res.Target,
		statusStr(res),
		res.Outcome.Elapsed.Milliseconds(),
		res.Attempts,
		res.Outcome.Kind,
	)
}

// statusStr renders the status column: the HTTP status code of a completed
// exchange, ERROR otherwise
func statusStr(res checker.CheckResult) string {
	if res.Reachable() {
		return strconv.Itoa(res.Outcome.StatusCode)
	}
	return "ERROR"
}

// WriteJSON writes the report as a formatted JSON array
func WriteJSON(w io.Writer, rep checker.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toRecords(rep)); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}

// WriteYAML writes the report as a YAML list
func WriteYAML(w io.Writer, rep checker.Report) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(toRecords(rep)); err != nil {
		return fmt.Errorf("write yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml report: %w", err)
	}
	return nil
}
