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

// Package report serializes a finished sweep into its persistent formats.
// The text format is the stable line format operators parse; JSON and YAML
// carry the same fields for machine consumers.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/petrel-team/petrel/internal/logger"
	"github.com/petrel-team/petrel/pkg/checker"
)

// Report output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// record is the serialized form of one checker.CheckResult
type record struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	URL       string    `json:"url" yaml:"url"`
	// Status is nil when no HTTP exchange completed
	Status    *int   `json:"status" yaml:"status"`
	Kind      string `json:"kind" yaml:"kind"`
	ElapsedMS int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
	Attempts  int    `json:"attempts" yaml:"attempts"`
	Reachable bool   `json:"reachable" yaml:"reachable"`
}

// toRecords converts a report into its serialized rows, keeping report order
func toRecords(rep checker.Report) []record {
	records := make([]record, 0, len(rep))
	for _, res := range rep {
		r := record{
			Timestamp: res.Timestamp.UTC(),
			URL:       res.Target,
			Kind:      string(res.Outcome.Kind),
			ElapsedMS: res.Outcome.Elapsed.Milliseconds(),
			Attempts:  res.Attempts,
			Reachable: res.Reachable(),
		}
		if res.Reachable() {
			status := res.Outcome.StatusCode
			r.Status = &status
		}
		records = append(records, r)
	}
	return records
}

// Write serializes the report to the given path in the given format.
// The path "-" writes to stdout. A write failure is fatal to the run but the
// report stays intact in memory for the caller.
func Write(ctx context.Context, path, format string, rep checker.Report) error {
	log := logger.FromContext(ctx)

	var w io.Writer
	if path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			log.Error("Failed to create report file", "path", path, "error", err)
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				log.Error("Failed to close report file", "path", path, "error", cerr)
			}
		}()
		w = f
	}

	var err error
	switch format {
	case FormatJSON:
		err = WriteJSON(w, rep)
	case FormatYAML:
		err = WriteYAML(w, rep)
	default:
		err = WriteText(w, rep)
	}
	if err != nil {
		return err
	}

	log.Info("Report written", "path", path, "format", format, "results", len(rep))
	return nil
}
