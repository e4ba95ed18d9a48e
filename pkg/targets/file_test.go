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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     []string
	}{
		{
			name:     "plain list with comments and blanks",
			filename: "targets.txt",
			content:  "http://a.test\n# internal hosts\nhttp://b.test\n\n  http://c.test\n",
			want:     []string{"http://a.test", "http://b.test", "http://c.test"},
		},
		{
			name:     "yaml list",
			filename: "targets.yaml",
			content:  "targets:\n  - http://a.test\n  - http://b.test\n",
			want:     []string{"http://a.test", "http://b.test"},
		},
		{
			name:     "yml extension",
			filename: "targets.yml",
			content:  "targets: [\"http://a.test\"]\n",
			want:     []string{"http://a.test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			got, err := FromFile(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFromFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets: [unclosed"), 0o600))

	_, err := FromFile(context.Background(), path)
	assert.Error(t, err)
}
