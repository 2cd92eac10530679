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

package erm

import (
	"errors"
	"log"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
)

var transientCodes = []string{"500", "501", "502", "503", "504", "505", "506", "507", "508", "510", "511"}

// IsTransient reports whether err is a 5xx server side error
// googleapi errors are classified on their HTTP code, others on their message
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= 500 && apiErr.Code <= 599 && apiErr.Code != 509
	}
	erroMessage := err.Error()
	for _, transientCode := range transientCodes {
		if strings.Contains(erroMessage, transientCode) {
			return true
		}
	}
	return false
}

// IsNotTransientElseWait check is the error is a 5xx and wait if it is
func IsNotTransientElseWait(err error, wait time.Duration) (isNotTransient bool) {
	if !IsTransient(err) {
		return true
	}
	log.Printf("Transient error, wait %v and retry %v", wait, err)
	time.Sleep(wait)
	return false
}
