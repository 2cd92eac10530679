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

// Instance snapshot of a compute instance as returned by a listing
type Instance struct {
	Name   string            `json:"name"`
	Status string            `json:"status"`
	Labels map[string]string `json:"labels,omitempty"`
}

// HasLabel returns true when the instance carries labelKey, whatever its value
func (instance Instance) HasLabel(labelKey string) bool {
	_, ok := instance.Labels[labelKey]
	return ok
}

// IsRunning returns true only for the RUNNING status
func (instance Instance) IsRunning() bool {
	return instance.Status == InstanceStatusRunning
}
