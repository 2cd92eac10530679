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
	"fmt"
	"strconv"

	"github.com/BrunoReboul/budgetguard/utilities/gcf"
	"github.com/BrunoReboul/budgetguard/utilities/gcftemplate"
	"github.com/BrunoReboul/budgetguard/utilities/validater"
)

// Environment variables read by Situate, an empty value counts as unset
const (
	EnvEnvironment          = "ENVIRONMENT"
	EnvProjectID            = "PROJECT_ID"
	EnvZone                 = "ZONE"
	EnvLabelKey             = "LABEL_KEY"
	EnvFailurePolicy        = "FAILURE_POLICY"
	EnvWaitForStopOperation = "WAIT_FOR_STOP_OPERATION"
	EnvReportTopic          = "REPORT_TOPIC"
	EnvRetryTimeOutSeconds  = "RETRY_TIMEOUT_SECONDS"
)

// Situate complement settings taking in account the situation for service and instance settings
// lookupEnv is os.LookupEnv at runtime
func (instanceDeployment *InstanceDeployment) Situate(lookupEnv func(string) (string, bool)) (err error) {
	get := func(key string) (string, bool) {
		value, ok := lookupEnv(key)
		return value, ok && value != ""
	}
	if value, ok := get(EnvEnvironment); ok {
		instanceDeployment.Core.EnvironmentName = value
	}
	instanceDeployment.Core.SolutionSettings.Situate(instanceDeployment.Core.EnvironmentName)

	if value, ok := get(EnvProjectID); ok {
		instanceDeployment.Settings.Instance.GCE.ProjectID = value
	}
	if value, ok := get(EnvZone); ok {
		instanceDeployment.Settings.Instance.GCE.Zone = value
	}
	if value, ok := get(EnvLabelKey); ok {
		instanceDeployment.Core.SolutionSettings.Monitoring.LabelKeyNames.AutoShutdown = value
	}
	if value, ok := get(EnvFailurePolicy); ok {
		instanceDeployment.Settings.Instance.FailurePolicy = value
	}
	if value, ok := get(EnvWaitForStopOperation); ok {
		instanceDeployment.Settings.Instance.GCE.WaitForStopOperation, err = strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWaitForStopOperation, err)
		}
	}
	if value, ok := get(EnvReportTopic); ok {
		instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.BudgetGuardReport = value
	}
	if value, ok := get(EnvRetryTimeOutSeconds); ok {
		instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds, err = strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRetryTimeOutSeconds, err)
		}
	}
	if instanceDeployment.Core.SolutionSettings.Hosting.ProjectID == "" {
		instanceDeployment.Core.SolutionSettings.Hosting.ProjectID = instanceDeployment.Settings.Instance.GCE.ProjectID
	}

	instanceDeployment.Settings.Service.GCF.FunctionType = gcftemplate.FunctionTypeCloudEventPubSub
	instanceDeployment.Settings.Service.GCF.Description = fmt.Sprintf("stop instances labeled %s in %s %s when a budget is reached",
		instanceDeployment.Core.SolutionSettings.Monitoring.LabelKeyNames.AutoShutdown,
		instanceDeployment.Settings.Instance.GCE.ProjectID,
		instanceDeployment.Settings.Instance.GCE.Zone)
	instanceDeployment.Settings.Service.GCF.Runtime, err = gcf.GetRunTime(instanceDeployment.Settings.Service.GCF.GoVersion)
	if err != nil {
		return err
	}
	return validater.ValidateStruct(instanceDeployment, "instanceDeployment")
}
