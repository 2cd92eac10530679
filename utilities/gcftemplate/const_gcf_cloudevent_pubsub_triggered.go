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

// CloudEventPubSubTriggeredFunctionGo function.go code skeleton, %[1]s is the serviceName, %[2]s the entry point name
const CloudEventPubSubTriggeredFunctionGo = `// Copyright 2020 Google LLC
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

// Package p contains a CloudEvent cloud function
package p

import (
	"context"

	"github.com/BrunoReboul/budgetguard/services/%[1]s"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"
)

var global %[1]s.Global
var ctx = context.Background()

func init() {
	%[1]s.Initialize(ctx, &global)
	functions.CloudEvent("%[2]s", entryPoint)
}

// entryPoint is the function to be executed for each cloud function occurence
func entryPoint(ctxEvent context.Context, e event.Event) error {
	return %[1]s.EntryPointCloudEvent(ctxEvent, e, &global)
}
`
