// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ffo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testSettings struct {
	ProjectID string `yaml:"projectID"`
	Zone      string `yaml:"zone"`
}

func TestUnitReadUnmarshalYAMLIfExists(t *testing.T) {
	dir := t.TempDir()
	var tests = []struct {
		name      string
		content   string
		noFile    bool
		wantFound bool
		wantErr   bool
		want      testSettings
	}{
		{
			name:      "missingFile",
			noFile:    true,
			wantFound: false,
			want:      testSettings{ProjectID: "untouched"},
		},
		{
			name:      "validFile",
			content:   "projectID: my-project\nzone: europe-west1-b\n",
			wantFound: true,
			want:      testSettings{ProjectID: "my-project", Zone: "europe-west1-b"},
		},
		{
			name:      "unknownField",
			content:   "projectID: my-project\nregion: europe-west1\n",
			wantFound: true,
			wantErr:   true,
		},
		{
			name:      "notYAML",
			content:   "projectID: [unclosed\n",
			wantFound: true,
			wantErr:   true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(dir, test.name+".yaml")
			if !test.noFile {
				if err := os.WriteFile(path, []byte(test.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			settings := testSettings{ProjectID: "untouched"}
			found, err := ReadUnmarshalYAMLIfExists(path, &settings)
			if found != test.wantFound {
				t.Errorf("want found %v got %v", test.wantFound, found)
			}
			if test.wantErr {
				if err == nil {
					t.Errorf("Should send back an error and is NOT")
				}
				return
			}
			if err != nil {
				t.Fatalf("Want NO error, got %v", err)
			}
			if settings != test.want {
				t.Errorf("want %+v got %+v", test.want, settings)
			}
		})
	}
}

func TestUnitMarshalYAMLWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.yaml")
	err := MarshalYAMLWrite(path, testSettings{ProjectID: "p", Zone: "z"})
	if err != nil {
		t.Fatalf("Want NO error, got %v", err)
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(bytes), YAMLDisclaimer) {
		t.Errorf("dump should start with the disclaimer, got %s", string(bytes))
	}
	var back testSettings
	if err := ReadUnmarshalYAML(path, &back); err != nil {
		t.Fatalf("Want NO error reading the dump back, got %v", err)
	}
	if back.ProjectID != "p" || back.Zone != "z" {
		t.Errorf("unexpected round trip %+v", back)
	}
}
