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
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Decoding steps
const (
	DecodeStepEnvelope = "envelope"
	DecodeStepBase64   = "base64"
	DecodeStepUTF8     = "utf8"
	DecodeStepJSON     = "json"
)

// DecodeError the inbound payload could not be turned into a budget notification
type DecodeError struct {
	Step string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode budget notification, step %s: %v", e.Step, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeNotification decodes the base64 data of a PubSub message into a budget notification
// The top level JSON value must be an object, absent amounts are left to zero
func DecodeNotification(data string) (notification BudgetNotification, err error) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return notification, &DecodeError{Step: DecodeStepBase64, Err: err}
	}
	if !utf8.Valid(decoded) {
		return notification, &DecodeError{Step: DecodeStepUTF8, Err: errors.New("data is not valid UTF-8 text")}
	}
	trimmed := bytes.TrimSpace(decoded)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return notification, &DecodeError{Step: DecodeStepJSON, Err: fmt.Errorf("top level JSON value is not an object: %.64q", string(trimmed))}
	}
	err = json.Unmarshal(trimmed, &notification)
	if err != nil {
		return BudgetNotification{}, &DecodeError{Step: DecodeStepJSON, Err: err}
	}
	return notification, nil
}
