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
Package budgetguard stops the labeled compute instances of a project zone when a Cloud Billing budget is reached

## What

A Cloud Billing budget publishes its notifications to a PubSub topic. The stopinstances function consumes them: when the cost amount reaches the budget amount, every RUNNING compute instance carrying the auto shutdown label is stopped.

### Use cases

1. Hackathons and labs: cap the spend of short lived sandboxes
2. Training projects: stop the forgotten virtual machines at the end of the day budget

## Why

- Budgets alert, they do not cap
- Labels make the shutdown opt-in, unlabeled instances are never touched

## How

- services/stopinstances: the handler, decode, compare, list, stop
- stopinstances: the deployable package registering the CloudEvent function
- cmd/budgetguard: run the function locally, dump the effective settings, regenerate the deployable source
*/
package budgetguard
