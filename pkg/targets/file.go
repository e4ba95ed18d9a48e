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
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petrel-team/petrel/internal/logger"
)

// yamlList is the document layout of a YAML target file
type yamlList struct {
	Targets []string `yaml:"targets"`
}

// FromFile reads a target list from a local file.
// Files with a .yaml or .yml extension are parsed as a document with a
// top-level "targets" list; everything else is treated as a newline-delimited
// list where blank lines and '#' comments are ignored.
func FromFile(ctx context.Context, path string) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Info("Reading targets from file", "file", path)

	b, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read target file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read target file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var list yamlList
		if err := yaml.Unmarshal(b, &list); err != nil {
			log.Error("Failed to parse target file", "path", path, "error", err)
			return nil, fmt.Errorf("failed to parse target file: %w", err)
		}
		return list.Targets, nil
	default:
		return parseLines(b), nil
	}
}
