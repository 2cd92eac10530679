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
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// TopicPublisher publishes JSON documents to one topic
type TopicPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewTopicPublisher creates the Pub/Sub client and the topic handle
// The topic is expected to exist
func NewTopicPublisher(ctx context.Context, projectID string, topicName string, opts ...option.ClientOption) (*TopicPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("pubsub.NewClient: %w", err)
	}
	return &TopicPublisher{
		client: client,
		topic:  client.Topic(topicName),
	}, nil
}

// PublishJSON marshals v and publishes it, returning the server assigned message id
// No retry here as already implemented in the Go client
func (p *TopicPublisher) PublishJSON(ctx context.Context, v interface{}, attributes map[string]string) (id string, err error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}
	id, err = p.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("topic.Publish %s: %w", p.topic.ID(), err)
	}
	return id, nil
}

// Close flushes pending messages and closes the client
func (p *TopicPublisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
