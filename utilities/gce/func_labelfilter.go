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
	"fmt"
)

// LabelFilter returns the instances.list filter selecting resources that carry labelKey with any value
// https://cloud.google.com/compute/docs/reference/rest/v1/instances/list#query-parameters
func LabelFilter(labelKey string) string {
	return fmt.Sprintf("labels.%s:*", labelKey)
}
