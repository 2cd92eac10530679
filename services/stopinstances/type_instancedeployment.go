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
	"github.com/BrunoReboul/budgetguard/utilities/deploy"
	"github.com/BrunoReboul/budgetguard/utilities/gce"
	"github.com/BrunoReboul/budgetguard/utilities/gcf"
	"google.golang.org/api/iam/v1"
)

const (
	defaultProjectID    = "internal-sf-hackathon"
	defaultZone         = "us-central1-b"
	defaultLabelKeyName = "hackathon"
	serviceName         = "stopinstances"
)

// InstanceDeployment settings and artifacts structure
type InstanceDeployment struct {
	Core     *deploy.Core
	Settings struct {
		Service struct {
			APIList  []string   `yaml:"apiList" valid:"isNotZeroValue"`
			RunRoles []iam.Role `yaml:"runRoles,omitempty" valid:"-"`
			GCF      gcf.Parameters
		}
		Instance struct {
			GCE           gce.Parameters
			FailurePolicy string `yaml:"failurePolicy" valid:"isOneOf,failFast,bestEffort"`
		}
	}
}

// NewInstanceDeployment create deployment structure with default settings set
func NewInstanceDeployment() *InstanceDeployment {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Core = &deploy.Core{
		ServiceName:  serviceName,
		InstanceName: serviceName,
	}
	instanceDeployment.Core.SolutionSettings.Monitoring.LabelKeyNames.AutoShutdown = defaultLabelKeyName

	instanceDeployment.Settings.Service.APIList = append(deploy.GetCommonAPIlist(), "compute.googleapis.com")
	instanceDeployment.Settings.Service.RunRoles = []iam.Role{
		projectRunRole()}

	instanceDeployment.Settings.Service.GCF.GoVersion = "1.21"
	instanceDeployment.Settings.Service.GCF.AvailableMemoryMb = 128
	instanceDeployment.Settings.Service.GCF.Timeout = "60s"

	instanceDeployment.Settings.Instance.GCE.ProjectID = defaultProjectID
	instanceDeployment.Settings.Instance.GCE.Zone = defaultZone
	instanceDeployment.Settings.Instance.FailurePolicy = FailurePolicyFailFast

	return &instanceDeployment
}

func projectRunRole() (role iam.Role) {
	role.Title = "budgetguard_stopinstances_run"
	role.Description = "Budget guard stop instances microservice permissions to run"
	role.Stage = "GA"
	role.IncludedPermissions = []string{
		"compute.instances.list",
		"compute.instances.stop",
		"compute.zoneOperations.get",
		"pubsub.topics.publish"}
	return role
}
