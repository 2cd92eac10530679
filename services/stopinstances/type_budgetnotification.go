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
	"encoding/json"
	"fmt"
)

// BudgetNotification Cloud Billing budget notification
// https://cloud.google.com/billing/docs/how-to/budgets-programmatic-notifications#notification_format
// Only CostAmount and BudgetAmount drive the decision, the other fields are logged
type BudgetNotification struct {
	BudgetDisplayName         string   `json:"budgetDisplayName,omitempty"`
	AlertThresholdExceeded    *float64 `json:"alertThresholdExceeded,omitempty"`
	ForecastThresholdExceeded *float64 `json:"forecastThresholdExceeded,omitempty"`
	CostAmount                float64  `json:"costAmount"`
	CostIntervalStart         string   `json:"costIntervalStart,omitempty"`
	BudgetAmount              float64  `json:"budgetAmount"`
	BudgetAmountType          string   `json:"budgetAmountType,omitempty"`
	CurrencyCode              string   `json:"currencyCode,omitempty"`
}

// IsUnderBudget strict comparison, reaching the budget exactly is not under budget
func (notification BudgetNotification) IsUnderBudget() bool {
	return notification.CostAmount < notification.BudgetAmount
}

// UnmarshalJSON matches keys exactly, a key differing only by case is ignored
func (notification *BudgetNotification) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var decoded BudgetNotification
	for _, field := range []struct {
		key    string
		target interface{}
	}{
		{"budgetDisplayName", &decoded.BudgetDisplayName},
		{"alertThresholdExceeded", &decoded.AlertThresholdExceeded},
		{"forecastThresholdExceeded", &decoded.ForecastThresholdExceeded},
		{"costAmount", &decoded.CostAmount},
		{"costIntervalStart", &decoded.CostIntervalStart},
		{"budgetAmount", &decoded.BudgetAmount},
		{"budgetAmountType", &decoded.BudgetAmountType},
		{"currencyCode", &decoded.CurrencyCode},
	} {
		raw, ok := fields[field.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, field.target); err != nil {
			return fmt.Errorf("%s: %w", field.key, err)
		}
	}
	*notification = decoded
	return nil
}
