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

package gcftemplate

import (
	"fmt"
)

// Function types
const (
	FunctionTypeBackgroundPubSub = "backgroundPubSub"
	FunctionTypeCloudEventPubSub = "cloudEventPubSub"
)

// RenderFunctionGo returns the function.go source of a service for a given function type
// entryPointName is used only by CloudEvent functions, background functions expose EntryPoint
func RenderFunctionGo(functionType string, serviceName string, entryPointName string) (code string, err error) {
	switch functionType {
	case FunctionTypeBackgroundPubSub:
		return fmt.Sprintf(BackgroundPubSubTriggeredFunctionGo, serviceName), nil
	case FunctionTypeCloudEventPubSub:
		if entryPointName == "" {
			return "", fmt.Errorf("entry point name is required for function type %s", functionType)
		}
		return fmt.Sprintf(CloudEventPubSubTriggeredFunctionGo, serviceName, entryPointName), nil
	default:
		return "", fmt.Errorf("unsupported function type %s", functionType)
	}
}
