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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		urls []string
		want []string
	}{
		{
			name: "no duplicates",
			urls: []string{"http://a.test", "http://b.test"},
			want: []string{"http://a.test", "http://b.test"},
		},
		{
			name: "duplicate keeps first occurrence",
			urls: []string{"http://a.test", "http://b.test", "http://a.test"},
			want: []string{"http://a.test", "http://b.test"},
		},
		{
			name: "identity is the exact string",
			urls: []string{"http://a.test", "http://a.test/"},
			want: []string{"http://a.test", "http://a.test/"},
		},
		{
			name: "empty input",
			urls: nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Dedupe(tt.urls)); diff != "" {
				t.Errorf("Dedupe() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	got := Merge(
		[]string{"http://a.test", "http://b.test"},
		[]string{"http://b.test", "http://c.test"},
	)
	want := []string{"http://a.test", "http://b.test", "http://c.test"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{source: "http://lists.example/targets.txt", want: true},
		{source: "https://lists.example/targets.txt", want: true},
		{source: "targets.txt", want: false},
		{source: "/etc/petrel/targets.txt", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := IsRemote(tt.source); got != tt.want {
				t.Errorf("IsRemote(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	in := []byte("http://a.test\n\n  # comment\n  http://b.test  \n# another\nhttp://c.test")
	want := []string{"http://a.test", "http://b.test", "http://c.test"}
	if diff := cmp.Diff(want, parseLines(in)); diff != "" {
		t.Errorf("parseLines() mismatch (-want +got):\n%s", diff)
	}
}
