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

package gcf

import (
	"time"
)

// InitialRetryCheck tells if an event is still young enough to be processed
// 1) return true when the event age is within retryTimeOutSeconds
// 2) return false when the event is too old, the entry point must then return nil to stop redelivery
// A retryTimeOutSeconds lower or equal to zero disables the control
func InitialRetryCheck(eventTimestamp time.Time, retryTimeOutSeconds int64, now time.Time) (ok bool, age time.Duration) {
	age = now.Sub(eventTimestamp)
	if retryTimeOutSeconds <= 0 || eventTimestamp.IsZero() {
		return true, age
	}
	expiration := eventTimestamp.Add(time.Duration(retryTimeOutSeconds) * time.Second)
	return !now.After(expiration), age
}
