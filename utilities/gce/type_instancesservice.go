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

package gce

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BrunoReboul/budgetguard/utilities/erm"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

// InstancesService lists and stops compute instances
type InstancesService struct {
	computeService *compute.Service
	// WaitForOperation makes Stop block until the zone operation is DONE
	WaitForOperation bool
	// TransientWait is the pause before retrying a zone operation wait that failed with a 5xx
	TransientWait time.Duration
	// MaxTransientRetries bounds the zone operation wait retries
	MaxTransientRetries int
}

// NewInstancesService creates the compute client
// Without options, credentials are the application default ones scoped to compute
func NewInstancesService(ctx context.Context, opts ...option.ClientOption) (*InstancesService, error) {
	if len(opts) == 0 {
		tokenSource, err := google.DefaultTokenSource(ctx, compute.ComputeScope)
		if err != nil {
			return nil, fmt.Errorf("google.DefaultTokenSource: %w", err)
		}
		opts = append(opts, option.WithTokenSource(tokenSource))
	}
	computeService, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("compute.NewService: %w", err)
	}
	return &InstancesService{
		computeService:      computeService,
		TransientWait:       5 * time.Second,
		MaxTransientRetries: 5,
	}, nil
}

// ListLabeled returns the instances of projectID/zone carrying labelKey, in the API order, all pages included
func (s *InstancesService) ListLabeled(ctx context.Context, projectID string, zone string, labelKey string) (instances []Instance, err error) {
	instances = []Instance{}
	// pages function expect just the name of the callback function. Not an invocation of the function
	err = s.computeService.Instances.List(projectID, zone).
		Filter(LabelFilter(labelKey)).
		Pages(ctx, func(page *compute.InstanceList) error {
			for _, item := range page.Items {
				instances = append(instances, Instance{
					Name:   item.Name,
					Status: item.Status,
					Labels: item.Labels,
				})
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("computeService.Instances.List project %s zone %s: %w", projectID, zone, err)
	}
	return instances, nil
}

// Stop issues a stop on one instance and returns the zone operation name
// The stop call is never retried
func (s *InstancesService) Stop(ctx context.Context, projectID string, zone string, name string) (operationName string, err error) {
	operation, err := s.computeService.Instances.Stop(projectID, zone, name).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("computeService.Instances.Stop project %s zone %s instance %s: %w", projectID, zone, name, err)
	}
	if !s.WaitForOperation {
		return operation.Name, nil
	}
	return operation.Name, s.waitZoneOperation(ctx, projectID, zone, operation)
}

func (s *InstancesService) waitZoneOperation(ctx context.Context, projectID string, zone string, operation *compute.Operation) error {
	retries := 0
	for operation.Status != operationStatusDone {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("wait zone operation %s: %w", operation.Name, err)
		}
		// Wait returns at the latest after 2 minutes, DONE or not
		waited, err := s.computeService.ZoneOperations.Wait(projectID, zone, operation.Name).Context(ctx).Do()
		if err != nil {
			if retries >= s.MaxTransientRetries || erm.IsNotTransientElseWait(err, s.TransientWait) {
				return fmt.Errorf("computeService.ZoneOperations.Wait %s after %d retries: %w", operation.Name, retries, err)
			}
			retries++
			continue // RETRY
		}
		operation = waited
	}
	if operation.Error != nil && len(operation.Error.Errors) > 0 {
		var messages []string
		for _, operationError := range operation.Error.Errors {
			messages = append(messages, fmt.Sprintf("%s %s", operationError.Code, operationError.Message))
		}
		return fmt.Errorf("zone operation %s finished with errors: %s", operation.Name, strings.Join(messages, "; "))
	}
	return nil
}
