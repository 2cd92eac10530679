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

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/BrunoReboul/budgetguard/services/stopinstances"
	"github.com/BrunoReboul/budgetguard/utilities/ffo"
	"github.com/BrunoReboul/budgetguard/utilities/gcftemplate"
	"github.com/BrunoReboul/budgetguard/utilities/gps"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

// loadEnvFile an explicit file must exist, the default .env is optional
func loadEnvFile(path string) error {
	if path == "" {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("godotenv.Load %s: %w", path, err)
	}
	return nil
}

func serve(c *cli.Context) (err error) {
	if err = loadEnvFile(c.String("env-file")); err != nil {
		return err
	}
	var global stopinstances.Global
	if err = stopinstances.Initialize(c.Context, &global); err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, global.Close())
	}()
	switch c.String("signature") {
	case gcftemplate.FunctionTypeCloudEventPubSub:
		err = funcframework.RegisterCloudEventFunctionContext(c.Context, "/", func(ctxEvent context.Context, e event.Event) error {
			return stopinstances.EntryPointCloudEvent(ctxEvent, e, &global)
		})
	case gcftemplate.FunctionTypeBackgroundPubSub:
		err = funcframework.RegisterEventFunctionContext(c.Context, "/", func(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
			return stopinstances.EntryPoint(ctxEvent, PubSubMessage, &global)
		})
	default:
		return fmt.Errorf("unsupported signature %s", c.String("signature"))
	}
	if err != nil {
		return fmt.Errorf("funcframework.Register: %w", err)
	}
	log.Printf("budgetguard %s function listening on port %s", c.String("signature"), c.String("port"))
	return funcframework.Start(c.String("port"))
}

func dumpSettings(c *cli.Context) error {
	if err := loadEnvFile(c.String("env-file")); err != nil {
		return err
	}
	instanceDeployment, found, err := stopinstances.LoadInstanceDeployment(c.String("settings"), os.LookupEnv)
	if err != nil {
		return err
	}
	if err = ffo.MarshalYAMLWrite(c.String("output"), instanceDeployment); err != nil {
		return fmt.Errorf("ffo.MarshalYAMLWrite %s: %w", c.String("output"), err)
	}
	log.Printf("settings file found %v, effective settings written to %s", found, c.String("output"))
	return nil
}

func writeSource(c *cli.Context) error {
	code, err := gcftemplate.RenderFunctionGo(c.String("type"), c.String("service"), c.String("entry-point"))
	if err != nil {
		return err
	}
	if err = os.WriteFile(c.String("output"), []byte(code), 0644); err != nil {
		return err
	}
	log.Printf("%s written", c.String("output"))
	return nil
}
