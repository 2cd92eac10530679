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

	"github.com/BrunoReboul/budgetguard/utilities/ffo"
	"github.com/BrunoReboul/budgetguard/utilities/solution"
)

// LoadInstanceDeployment builds the effective settings: defaults, then the optional settings file, then the environment
// found tells if the settings file was present
func LoadInstanceDeployment(settingsPath string, lookupEnv func(string) (string, bool)) (instanceDeployment *InstanceDeployment, found bool, err error) {
	if settingsPath == "" {
		settingsPath = solution.PathToFunctionCode + solution.SettingsFileName
	}
	instanceDeployment = NewInstanceDeployment()
	found, err = ffo.ReadUnmarshalYAMLIfExists(settingsPath, instanceDeployment)
	if err != nil {
		return nil, found, fmt.Errorf("ReadUnmarshalYAML %s %w", settingsPath, err)
	}
	err = instanceDeployment.Situate(lookupEnv)
	if err != nil {
		return nil, found, fmt.Errorf("Situate %w", err)
	}
	return instanceDeployment, found, nil
}
