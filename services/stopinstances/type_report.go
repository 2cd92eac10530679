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

package stopinstances

import (
	"time"
)

// Failure policies
const (
	FailurePolicyFailFast   = "failFast"
	FailurePolicyBestEffort = "bestEffort"
)

// Actions taken on a listed instance
const (
	ActionStopped = "stopped"
	ActionSkipped = "skipped"
	ActionFailed  = "failed"
)

// InstanceResult outcome for one listed instance
type InstanceResult struct {
	Name          string `json:"name"`
	Status        string `json:"status"`
	Action        string `json:"action"`
	OperationName string `json:"operationName,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Report outcome of one stop path, in listing order
type Report struct {
	ProjectID          string           `json:"projectID"`
	Zone               string           `json:"zone"`
	LabelKeyName       string           `json:"labelKeyName"`
	BudgetDisplayName  string           `json:"budgetDisplayName,omitempty"`
	CostAmount         float64          `json:"costAmount"`
	BudgetAmount       float64          `json:"budgetAmount"`
	CurrencyCode       string           `json:"currencyCode,omitempty"`
	FailurePolicy      string           `json:"failurePolicy"`
	TriggeringPubsubID string           `json:"triggeringPubsubID,omitempty"`
	Timestamp          time.Time        `json:"timestamp"`
	Results            []InstanceResult `json:"results"`
	Error              string           `json:"error,omitempty"`
}

// Count number of results with a given action
func (report Report) Count(action string) (count int) {
	for _, result := range report.Results {
		if result.Action == action {
			count++
		}
	}
	return count
}
