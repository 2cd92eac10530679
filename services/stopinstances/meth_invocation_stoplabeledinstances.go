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
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/budgetguard/utilities/logging"
	"go.uber.org/multierr"
)

// stopLabeledInstances lists the labeled instances once and stops the running ones, in listing order
func (inv invocation) stopLabeledInstances(ctx context.Context, notification BudgetNotification) (report Report, err error) {
	report = Report{
		ProjectID:          inv.projectID,
		Zone:               inv.zone,
		LabelKeyName:       inv.labelKeyName,
		BudgetDisplayName:  notification.BudgetDisplayName,
		CostAmount:         notification.CostAmount,
		BudgetAmount:       notification.BudgetAmount,
		CurrencyCode:       notification.CurrencyCode,
		FailurePolicy:      inv.failurePolicy,
		TriggeringPubsubID: inv.pubSubID,
		Timestamp:          time.Now(),
		Results:            []InstanceResult{},
	}
	defer func() {
		if err != nil {
			report.Error = err.Error()
		}
	}()

	instances, err := inv.instancesService.ListLabeled(ctx, inv.projectID, inv.zone, inv.labelKeyName)
	if err != nil {
		entry := inv.newEntry(logging.SeverityCritical, "redo_on_transient")
		entry.Description = err.Error()
		entry.ProjectID = inv.projectID
		entry.Zone = inv.zone
		log.Println(entry)
		return report, err
	}
	if len(instances) == 0 {
		entry := inv.newEntry(logging.SeverityInfo, fmt.Sprintf("no instance labeled %s", inv.labelKeyName))
		entry.ProjectID = inv.projectID
		entry.Zone = inv.zone
		log.Println(entry)
		return report, nil
	}

	var errs error
	for _, instance := range instances {
		result := InstanceResult{
			Name:   instance.Name,
			Status: instance.Status,
		}
		entry := inv.newEntry(logging.SeverityInfo, "")
		entry.ProjectID = inv.projectID
		entry.Zone = inv.zone
		entry.ComputeInstance = instance.Name
		entry.ComputeInstanceStatus = instance.Status

		switch {
		case !instance.HasLabel(inv.labelKeyName):
			result.Action = ActionSkipped
			entry.Severity = logging.SeverityWarning
			entry.Message = fmt.Sprintf("skipping %s, label %s missing", instance.Name, inv.labelKeyName)
			log.Println(entry)
		case !instance.IsRunning():
			result.Action = ActionSkipped
			entry.Message = fmt.Sprintf("skipping %s (status: %s)", instance.Name, instance.Status)
			log.Println(entry)
		default:
			entry.Message = fmt.Sprintf("stopping %s", instance.Name)
			log.Println(entry)
			operationName, err := inv.instancesService.Stop(ctx, inv.projectID, inv.zone, instance.Name)
			result.OperationName = operationName
			if err != nil {
				result.Action = ActionFailed
				result.Error = err.Error()
				report.Results = append(report.Results, result)
				entry.Severity = logging.SeverityCritical
				entry.Message = fmt.Sprintf("stop %s failed", instance.Name)
				entry.Description = err.Error()
				log.Println(entry)
				if inv.failurePolicy != FailurePolicyBestEffort {
					return report, err
				}
				errs = multierr.Append(errs, err)
				continue
			}
			result.Action = ActionStopped
			entry.Message = fmt.Sprintf("stopped %s", instance.Name)
			entry.Description = operationName
			log.Println(entry)
		}
		report.Results = append(report.Results, result)
	}
	return report, errs
}

// publishReport publishes the report when a topic is set, a failure is logged only
func (inv invocation) publishReport(ctx context.Context, report Report) {
	if inv.reportPublisher == nil {
		return
	}
	id, err := inv.reportPublisher.PublishJSON(ctx, report, map[string]string{
		"projectID": report.ProjectID,
		"zone":      report.Zone,
	})
	if err != nil {
		entry := inv.newEntry(logging.SeverityError, "report_publish_failed")
		entry.Description = fmt.Sprintf("topic %s %v", inv.reportTopicName, err)
		log.Println(entry)
		return
	}
	entry := inv.newEntry(logging.SeverityInfo, "report published")
	entry.Description = fmt.Sprintf("topic %s message id %s", inv.reportTopicName, id)
	log.Println(entry)
}
