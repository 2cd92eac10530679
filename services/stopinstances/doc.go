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

/*
Package stopinstances stops the labeled compute instances of a zone when a Cloud Billing budget is reached

Triggered by

Cloud Billing budget programmatic notifications, through PubSub messages.

Instances

few, one per project and zone to guard.

Output

None, the compute instances are stopped. Optionally a report PubSub message listing the action taken on each instance.

Cardinality

- one-one: one budget notification, one listing of the labeled instances.

- under budget: no listing, no stop.

Decision

- stop path when cost amount is greater or equal to the budget amount.

- a missing amount counts as zero.

Automatic retrying

Yes, on remote API errors. A payload that cannot be decoded fails the invocation but is never fixed by a redelivery.

Scope

- project and zone from settings, overridden by PROJECT_ID and ZONE environment variables.

- only instances carrying the label key, any value, default key: hackathon.

- only RUNNING instances are stopped, the others are skipped.

Failure policy

- failFast: the first stop error ends the invocation.

- bestEffort: every running instance gets a stop attempt, errors are returned together.

Implementation example

 package p

 import (
     "context"

     "github.com/BrunoReboul/budgetguard/services/stopinstances"
     "github.com/BrunoReboul/budgetguard/utilities/gps"
 )

 var global stopinstances.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return stopinstances.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     stopinstances.Initialize(ctx, &global)
 }

*/
package stopinstances
