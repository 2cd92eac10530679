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

package gps

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

func TestUnitMessagePublishedData(t *testing.T) {
	var tests = []struct {
		name          string
		payload       string
		wantData      string
		wantAttribute string
	}{
		{
			name:          "gen2Envelope",
			payload:       `{"message":{"data":"eyJjb3N0QW1vdW50IjoxfQ==","attributes":{"budgetId":"b-1"},"messageId":"42"},"subscription":"projects/p/subscriptions/s"}`,
			wantData:      "eyJjb3N0QW1vdW50IjoxfQ==",
			wantAttribute: "b-1",
		},
		{
			name:     "noAttributes",
			payload:  `{"message":{"data":"e30="}}`,
			wantData: "e30=",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var messagePublishedData MessagePublishedData
			err := json.Unmarshal([]byte(test.payload), &messagePublishedData)
			if err != nil {
				t.Fatalf("Want NO error, got %v", err)
			}
			if messagePublishedData.Message.Data != test.wantData {
				t.Errorf("want data %s got %s", test.wantData, messagePublishedData.Message.Data)
			}
			if messagePublishedData.Message.Attributes["budgetId"] != test.wantAttribute {
				t.Errorf("want budgetId %s got %s", test.wantAttribute, messagePublishedData.Message.Attributes["budgetId"])
			}
		})
	}
}

func TestUnitPublishJSONMarshalError(t *testing.T) {
	ctx := context.Background()
	publisher, err := NewTopicPublisher(ctx, "my-project", "budgetGuardReports",
		option.WithEndpoint("localhost:1"),
		option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("NewTopicPublisher %v", err)
	}
	defer publisher.Close()

	_, err = publisher.PublishJSON(ctx, map[string]interface{}{"unsupported": make(chan int)}, nil)
	if err == nil {
		t.Fatalf("Should send back an error and is NOT")
	}
	if !strings.Contains(err.Error(), "json.Marshal") {
		t.Errorf("want a json.Marshal error, got %v", err)
	}
}
