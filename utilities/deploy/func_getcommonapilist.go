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

package deploy

// GetCommonAPIlist returns the list of APIs every budget guard instance depends on
func GetCommonAPIlist() []string {
	return []string{
		"billingbudgets.googleapis.com",
		"cloudbuild.googleapis.com",
		"cloudfunctions.googleapis.com",
		"cloudresourcemanager.googleapis.com",
		"eventarc.googleapis.com", // gen2 functions are triggered through eventarc
		"logging.googleapis.com",
		"pubsub.googleapis.com",
		"run.googleapis.com"}
}
