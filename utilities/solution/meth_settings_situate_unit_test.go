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

import (
	"log"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitSituate(t *testing.T) {
	type testcases []struct {
		Name        string
		Settings    Settings
		Environment string
		Want        map[string]string
	}
	var testCases testcases

	yamlBytes := []byte(`---
- name: set1
  settings:
    hosting:
      projectIDs:
        dev: blabladev
        prd: blablaprd
      pubsub:
        topicNames:
          budgetGuardReports:
            dev: budget-guard-report-dev
            prd: budget-guard-report-prd
    monitoring:
      labelKeyNames:
        autoShutdown: hackathon
  environment: dev
  want:
    projectID: blabladev
    reportTopicName: budget-guard-report-dev
    labelKeyName: hackathon
- name: set2
  settings:
    hosting:
      projectID: keptproject
      projectIDs:
        prd: blablaprd
      pubsub:
        topicNames:
          budgetGuardReport: kepttopic
  environment: dev
  want:
    projectID: keptproject
    reportTopicName: kepttopic
    labelKeyName: ""`)

	err := yaml.Unmarshal(yamlBytes, &testCases)
	if err != nil {
		log.Fatalf("Unable to unmarshal yaml test data %v", err)
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			tc.Settings.Situate(tc.Environment)
			if tc.Settings.Hosting.ProjectID != tc.Want["projectID"] {
				t.Errorf("Want projectID '%s' got '%s'", tc.Want["projectID"], tc.Settings.Hosting.ProjectID)
			}
			if tc.Settings.Hosting.Pubsub.TopicNames.BudgetGuardReport != tc.Want["reportTopicName"] {
				t.Errorf("Want report topic '%s' got '%s'", tc.Want["reportTopicName"], tc.Settings.Hosting.Pubsub.TopicNames.BudgetGuardReport)
			}
			if tc.Settings.Monitoring.LabelKeyNames.AutoShutdown != tc.Want["labelKeyName"] {
				t.Errorf("Want label key '%s' got '%s'", tc.Want["labelKeyName"], tc.Settings.Monitoring.LabelKeyNames.AutoShutdown)
			}
		})
	}
}
