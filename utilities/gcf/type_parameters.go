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

package gcf

// Parameters Cloud Function settings shared by all instances of a service
type Parameters struct {
	FunctionType        string `yaml:"functionType,omitempty"`
	Description         string `yaml:"description,omitempty"`
	GoVersion           string `yaml:"goVersion" valid:"isNotZeroValue"`
	Runtime             string `yaml:"runtime,omitempty"`
	AvailableMemoryMb   int64  `yaml:"availableMemoryMb" valid:"isNotZeroValue"`
	Timeout             string `yaml:"timeout" valid:"isNotZeroValue"`
	RetryTimeOutSeconds int64  `yaml:"retryTimeOutSeconds"`
}
