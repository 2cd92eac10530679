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
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BrunoReboul/budgetguard/utilities/gce"
	"github.com/BrunoReboul/budgetguard/utilities/gcf"
	"github.com/BrunoReboul/budgetguard/utilities/gps"
	"github.com/BrunoReboul/budgetguard/utilities/logging"
	"github.com/BrunoReboul/budgetguard/utilities/str"
	"github.com/google/uuid"

	"cloud.google.com/go/functions/metadata"
	"github.com/cloudevents/sdk-go/v2/event"
)

// instancesAPI is satisfied by *gce.InstancesService
type instancesAPI interface {
	ListLabeled(ctx context.Context, projectID string, zone string, labelKey string) ([]gce.Instance, error)
	Stop(ctx context.Context, projectID string, zone string, name string) (operationName string, err error)
}

// reportPublisher is satisfied by *gps.TopicPublisher
type reportPublisher interface {
	PublishJSON(ctx context.Context, v interface{}, attributes map[string]string) (id string, err error)
	Close() error
}

// Global structure for global variables to optimize the cloud function performances
// Read only once Initialize returns, invocations may run concurrently
type Global struct {
	environment         string
	failurePolicy       string
	initFailed          bool
	initID              string
	instanceName        string
	instancesService    instancesAPI
	labelKeyName        string
	microserviceName    string
	projectID           string
	reportPublisher     reportPublisher
	reportTopicName     string
	retryTimeOutSeconds int64
	zone                string
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
// On error the global is flagged and every EntryPoint call fails until the next cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.initFailed = true
	global.initID = fmt.Sprintf("%v", uuid.New())

	instanceDeployment, found, err := LoadInstanceDeployment("", os.LookupEnv)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: serviceName,
			Severity:         logging.SeverityCritical,
			Message:          "init_failed",
			Description:      err.Error(),
			InitID:           global.initID,
		})
		return err
	}
	global.configure(instanceDeployment)

	entry := global.newEntry(logging.SeverityNotice, "coldstart")
	entry.Description = fmt.Sprintf("settings file found %v, %s", found, instanceDeployment.Settings.Service.GCF.Description)
	log.Println(entry)

	instancesService, err := gce.NewInstancesService(ctx)
	if err != nil {
		entry := global.newEntry(logging.SeverityCritical, "init_failed")
		entry.Description = err.Error()
		log.Println(entry)
		return err
	}
	instancesService.WaitForOperation = instanceDeployment.Settings.Instance.GCE.WaitForStopOperation
	global.instancesService = instancesService

	if global.reportTopicName != "" {
		topicPublisher, err := gps.NewTopicPublisher(ctx, instanceDeployment.Core.SolutionSettings.Hosting.ProjectID, global.reportTopicName)
		if err != nil {
			entry := global.newEntry(logging.SeverityCritical, "init_failed")
			entry.Description = err.Error()
			log.Println(entry)
			return err
		}
		global.reportPublisher = topicPublisher
	}
	global.initFailed = false
	return nil
}

// configure copies the effective settings into the global
func (global *Global) configure(instanceDeployment *InstanceDeployment) {
	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName
	global.projectID = instanceDeployment.Settings.Instance.GCE.ProjectID
	global.zone = instanceDeployment.Settings.Instance.GCE.Zone
	global.labelKeyName = instanceDeployment.Core.SolutionSettings.Monitoring.LabelKeyNames.AutoShutdown
	global.failurePolicy = instanceDeployment.Settings.Instance.FailurePolicy
	global.reportTopicName = instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.BudgetGuardReport
	global.retryTimeOutSeconds = instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds
}

// EntryPoint is the function to be executed for each cloud function occurence, background function flavor
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	metadata, err := metadata.FromContext(ctxEvent)
	if err != nil {
		// Assume an error on the function invoker and try again.
		entry := global.newEntry(logging.SeverityCritical, "redo_on_transient")
		entry.Description = fmt.Sprintf("pubsub_id no available metadata.FromContext: %v", err)
		log.Println(entry)
		return err
	}
	return global.handle(ctxEvent, PubSubMessage, metadata.EventID, metadata.Timestamp)
}

// EntryPointCloudEvent is the function to be executed for each cloud function occurence, CloudEvent flavor
func EntryPointCloudEvent(ctxEvent context.Context, e event.Event, global *Global) error {
	var messagePublishedData gps.MessagePublishedData
	err := e.DataAs(&messagePublishedData)
	if err != nil {
		entry := invocation{Global: global, pubSubID: e.ID()}.newEntry(logging.SeverityCritical, "noretry")
		entry.Description = fmt.Sprintf("e.DataAs(&messagePublishedData) %v", err)
		log.Println(entry)
		return &DecodeError{Step: DecodeStepEnvelope, Err: err}
	}
	return global.handle(ctxEvent, messagePublishedData.Message, e.ID(), e.Time())
}

// invocation is the state of one event
type invocation struct {
	*Global
	pubSubID string
}

func (global *Global) handle(ctx context.Context, message gps.PubSubMessage, eventID string, eventTimestamp time.Time) error {
	return invocation{Global: global, pubSubID: eventID}.handle(ctx, message, eventTimestamp)
}

func (inv invocation) handle(ctx context.Context, message gps.PubSubMessage, eventTimestamp time.Time) error {
	if inv.initFailed {
		entry := inv.newEntry(logging.SeverityCritical, "init_failed")
		entry.Description = "cold start initialization failed, see init_failed entry with the same init_id"
		log.Println(entry)
		return fmt.Errorf("init failed %s", inv.initID)
	}

	now := time.Now()
	ok, age := gcf.InitialRetryCheck(eventTimestamp, inv.retryTimeOutSeconds, now)
	entry := inv.newEntry(logging.SeverityNotice, "start")
	entry.Now = &now
	if !eventTimestamp.IsZero() {
		entry.TriggeringPubsubTimestamp = &eventTimestamp
		entry.TriggeringPubsubAgeSeconds = age.Seconds()
	}
	log.Println(entry)
	if !ok {
		entry.Severity = logging.SeverityCritical
		entry.Message = "noretry"
		entry.Description = "Pubsub message too old"
		log.Println(entry)
		return nil
	}

	notification, err := DecodeNotification(message.Data)
	if err != nil {
		entry := inv.newEntry(logging.SeverityCritical, "noretry")
		entry.Description = err.Error()
		log.Println(entry)
		return err
	}

	entry = inv.newEntry(logging.SeverityInfo, fmt.Sprintf("cost %v budget %v", notification.CostAmount, notification.BudgetAmount))
	entry.BudgetDisplayName = notification.BudgetDisplayName
	entry.CostAmount = &notification.CostAmount
	entry.BudgetAmount = &notification.BudgetAmount
	entry.CurrencyCode = notification.CurrencyCode
	entry.Description = str.FlattenMapStringString(message.Attributes)
	log.Println(entry)

	if notification.IsUnderBudget() {
		entry.Message = "under budget, no action"
		entry.Description = ""
		log.Println(entry)
		return nil
	}

	entry.Severity = logging.SeverityNotice
	entry.Message = fmt.Sprintf("budget reached, stopping instances labeled %s", inv.labelKeyName)
	entry.Description = ""
	entry.ProjectID = inv.projectID
	entry.Zone = inv.zone
	log.Println(entry)

	report, err := inv.stopLabeledInstances(ctx, notification)
	inv.publishReport(ctx, report)

	end := time.Now()
	entry = inv.newEntry(logging.SeverityNotice, "finish")
	entry.Description = fmt.Sprintf("stopped %d skipped %d failed %d",
		report.Count(ActionStopped),
		report.Count(ActionSkipped),
		report.Count(ActionFailed))
	entry.ProjectID = inv.projectID
	entry.Zone = inv.zone
	entry.Now = &end
	entry.LatencySeconds = end.Sub(now).Seconds()
	if err != nil {
		entry.Severity = logging.SeverityCritical
		entry.Message = "redo_on_transient"
		entry.Description = fmt.Sprintf("%s, %v", entry.Description, err)
	}
	log.Println(entry)
	return err
}

// newEntry returns a log entry with the fields common to every entry of the instance
func (global *Global) newEntry(severity string, message string) logging.Entry {
	return logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         severity,
		Message:          message,
		InitID:           global.initID,
	}
}

func (inv invocation) newEntry(severity string, message string) logging.Entry {
	entry := inv.Global.newEntry(severity, message)
	entry.TriggeringPubsubID = inv.pubSubID
	return entry
}

// Close releases the report publisher, if any
func (global *Global) Close() error {
	if global.reportPublisher == nil {
		return nil
	}
	return global.reportPublisher.Close()
}
