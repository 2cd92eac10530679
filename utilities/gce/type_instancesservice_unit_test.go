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

package gce

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	testProjectID = "my-project"
	testZone      = "us-central1-b"
)

// fakeCompute serves the subset of the compute REST API used by InstancesService
type fakeCompute struct {
	mu             sync.Mutex
	filters        []string
	stops          []string
	waits          int
	waitFailures   int
	operationError bool
	forbidden      map[string]bool
}

func (f *fakeCompute) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	parts := strings.Split(r.URL.Path, "/")
	zonePath := fmt.Sprintf("/projects/%s/zones/%s/", testProjectID, testZone)
	if !strings.Contains(r.URL.Path, zonePath) {
		http.NotFound(w, r)
		return
	}
	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, zonePath+"instances"):
		f.filters = append(f.filters, r.URL.Query().Get("filter"))
		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{"items":[{"name":"vm-a","status":"RUNNING","labels":{"hackathon":""}}],"nextPageToken":"page2"}`)
			return
		}
		fmt.Fprint(w, `{"items":[{"name":"vm-b","status":"TERMINATED","labels":{"hackathon":"team-1"}}]}`)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/stop"):
		name := parts[len(parts)-2]
		f.stops = append(f.stops, name)
		if f.forbidden[name] {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error":{"code":403,"message":"Required 'compute.instances.stop' permission"}}`)
			return
		}
		fmt.Fprintf(w, `{"name":"operation-%s","status":"RUNNING"}`, name)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/wait"):
		name := parts[len(parts)-2]
		f.waits++
		if f.waits <= f.waitFailures {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error":{"code":503,"message":"backend unavailable"}}`)
			return
		}
		if f.operationError {
			fmt.Fprintf(w, `{"name":"%s","status":"DONE","error":{"errors":[{"code":"RESOURCE_NOT_READY","message":"instance is busy"}]}}`, name)
			return
		}
		fmt.Fprintf(w, `{"name":"%s","status":"DONE"}`, name)
	default:
		http.NotFound(w, r)
	}
}

func newTestInstancesService(t *testing.T, fake *fakeCompute) *InstancesService {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	s, err := NewInstancesService(context.Background(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewInstancesService %v", err)
	}
	s.TransientWait = 0
	return s
}

func TestUnitListLabeled(t *testing.T) {
	fake := &fakeCompute{}
	s := newTestInstancesService(t, fake)

	instances, err := s.ListLabeled(context.Background(), testProjectID, testZone, "hackathon")
	if err != nil {
		t.Fatalf("Want NO error, got %v", err)
	}
	if len(instances) != 2 {
		t.Fatalf("want 2 instances across 2 pages, got %d", len(instances))
	}
	if instances[0].Name != "vm-a" || !instances[0].IsRunning() {
		t.Errorf("unexpected first instance %+v", instances[0])
	}
	if instances[1].Name != "vm-b" || instances[1].Status != InstanceStatusTerminated || instances[1].Labels["hackathon"] != "team-1" {
		t.Errorf("unexpected second instance %+v", instances[1])
	}
	for _, filter := range fake.filters {
		if filter != "labels.hackathon:*" {
			t.Errorf("want filter labels.hackathon:* got %s", filter)
		}
	}
}

func TestUnitListLabeledOutOfScope(t *testing.T) {
	s := newTestInstancesService(t, &fakeCompute{})
	_, err := s.ListLabeled(context.Background(), "other-project", testZone, "hackathon")
	if err == nil {
		t.Fatalf("Should send back an error and is NOT")
	}
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusNotFound {
		t.Errorf("want a wrapped 404 googleapi.Error, got %v", err)
	}
}

func TestUnitStop(t *testing.T) {
	var tests = []struct {
		name             string
		instanceName     string
		waitForOperation bool
		waitFailures     int
		operationError   bool
		wantErr          bool
		wantErrContains  string
		wantWaits        int
	}{
		{
			name:         "noWait",
			instanceName: "vm-a",
			wantWaits:    0,
		},
		{
			name:             "waitDone",
			instanceName:     "vm-a",
			waitForOperation: true,
			wantWaits:        1,
		},
		{
			name:             "waitRetriedOnTransient",
			instanceName:     "vm-a",
			waitForOperation: true,
			waitFailures:     2,
			wantWaits:        3,
		},
		{
			name:             "waitGivesUpAfterMaxRetries",
			instanceName:     "vm-a",
			waitForOperation: true,
			waitFailures:     100,
			wantErr:          true,
			wantErrContains:  "after 5 retries",
			wantWaits:        6,
		},
		{
			name:             "operationFinishedWithErrors",
			instanceName:     "vm-a",
			waitForOperation: true,
			operationError:   true,
			wantErr:          true,
			wantErrContains:  "RESOURCE_NOT_READY",
			wantWaits:        1,
		},
		{
			name:            "stopForbidden",
			instanceName:    "vm-locked",
			wantErr:         true,
			wantErrContains: "vm-locked",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fake := &fakeCompute{
				waitFailures:   test.waitFailures,
				operationError: test.operationError,
				forbidden:      map[string]bool{"vm-locked": true},
			}
			s := newTestInstancesService(t, fake)
			s.WaitForOperation = test.waitForOperation

			operationName, err := s.Stop(context.Background(), testProjectID, testZone, test.instanceName)
			if test.wantErr {
				if err == nil {
					t.Fatalf("Should send back an error and is NOT")
				}
				if !strings.Contains(err.Error(), test.wantErrContains) {
					t.Errorf("want error containing %s, got %v", test.wantErrContains, err)
				}
			} else {
				if err != nil {
					t.Fatalf("Want NO error, got %v", err)
				}
				if operationName != "operation-"+test.instanceName {
					t.Errorf("want operation name operation-%s got %s", test.instanceName, operationName)
				}
			}
			if len(fake.stops) != 1 {
				t.Errorf("want exactly one stop call, got %d", len(fake.stops))
			}
			if fake.waits != test.wantWaits {
				t.Errorf("want %d wait calls got %d", test.wantWaits, fake.waits)
			}
		})
	}
}
