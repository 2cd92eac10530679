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

package solution

const (
	// PathToFunctionCode folder where the Cloud Functions runtime exposes the uploaded source
	PathToFunctionCode = "./serverless_function_source_code/"
	// SettingsFileName settings file name, optional, packaged with the function source
	SettingsFileName = "settings.yaml"
)

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		ProjectID  string            `yaml:"projectID,omitempty"`
		ProjectIDs map[string]string `yaml:"projectIDs,omitempty"`
		Pubsub     struct {
			TopicNames struct {
				BudgetGuardReport  string            `yaml:"budgetGuardReport,omitempty"`
				BudgetGuardReports map[string]string `yaml:"budgetGuardReports,omitempty"`
			} `yaml:"topicNames"`
		}
	}
	Monitoring struct {
		LabelKeyNames struct {
			AutoShutdown string `yaml:"autoShutdown" valid:"isLabelKey"`
		} `yaml:"labelKeyNames"`
	}
}
