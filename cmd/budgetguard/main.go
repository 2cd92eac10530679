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

// Command budgetguard runs the stop instances function locally and generates its deployable source
package main

import (
	"log"
	"os"

	"github.com/BrunoReboul/budgetguard/utilities/gcftemplate"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newApp() *cli.App {
	envFileFlag := &cli.StringFlag{
		Name:  "env-file",
		Usage: "dotenv file loaded before reading settings, existing environment variables win",
	}
	return &cli.App{
		Name:  "budgetguard",
		Usage: "stop labeled compute instances when a billing budget is reached",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the function locally with the functions framework",
				Flags: []cli.Flag{
					envFileFlag,
					&cli.StringFlag{
						Name:    "port",
						Value:   "8080",
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:  "signature",
						Value: gcftemplate.FunctionTypeCloudEventPubSub,
						Usage: "cloudEventPubSub or backgroundPubSub",
					},
				},
				Action: serve,
			},
			{
				Name:  "settings",
				Usage: "dump the effective settings: defaults, settings file, environment",
				Flags: []cli.Flag{
					envFileFlag,
					&cli.StringFlag{
						Name:  "settings",
						Usage: "settings file, default is the one packaged with the function source",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: "settings.dump.yaml",
					},
				},
				Action: dumpSettings,
			},
			{
				Name:  "source",
				Usage: "write the function.go of the deployable package",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Value: gcftemplate.FunctionTypeCloudEventPubSub,
						Usage: "cloudEventPubSub or backgroundPubSub",
					},
					&cli.StringFlag{
						Name:  "service",
						Value: "stopinstances",
					},
					&cli.StringFlag{
						Name:  "entry-point",
						Value: "StopInstances",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: "stopinstances/function.go",
					},
				},
				Action: writeSource,
			},
		},
	}
}
