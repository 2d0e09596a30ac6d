// Copyright 2024 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/urfave/cli"

	"github.com/aigentincubator/sales-ctonet/app"
	dconfig "github.com/aigentincubator/sales-ctonet/config"
)

const (
	EnvPrefix = "CATALOG"
)

func main() {
	if err := doMain(os.Args); err != nil {
		os.Exit(1)
	}
}

func doMain(args []string) error {
	var configPath string

	app := cli.NewApp()
	app.Name = "catalog"
	app.Usage = "Hardware catalog browser"
	app.Version = CreateVersionString()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name: "config",
			Usage: "Configuration `FILE`." +
				" Supports JSON, TOML, YAML and HCL formatted configs.",
			Destination: &configPath,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "server",
			Usage:  "Load the dataset and serve the catalog API",
			Action: cmdServer,
		},
		{
			Name:   "check-dataset",
			Usage:  "Load and validate the dataset, then print a summary",
			Action: cmdCheckDataset,
		},
		{
			Name:   "migrate",
			Usage:  "Create the indexes of the mongo dataset collection",
			Action: cmdMigrate,
		},
		{
			Name:  "version",
			Usage: "Show version information",
			Action: func(args *cli.Context) error {
				fmt.Fprintln(args.App.Writer, CreateVersionString())
				return nil
			},
		},
	}
	app.Action = cmdServer
	app.Before = func(args *cli.Context) error {
		config.Config.SetEnvPrefix(EnvPrefix)
		config.Config.AutomaticEnv()
		config.Config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

		err := config.FromConfigFile(configPath, dconfig.Defaults, dconfig.Validators...)
		if err != nil {
			return cli.NewExitError(
				fmt.Sprintf("error loading configuration: %s", err),
				1)
		}

		log.Setup(config.Config.GetBool(dconfig.SettingDebugLog))
		return nil
	}

	return app.Run(args)
}

func cmdServer(args *cli.Context) error {
	l := log.NewEmpty()
	ctx := log.WithContext(context.Background(), l)

	if err := RunServer(ctx); err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	return nil
}

func cmdCheckDataset(args *cli.Context) error {
	l := log.NewEmpty()
	ctx := log.WithContext(context.Background(), l)

	catalogApp, closer, err := LoadCatalog(ctx, config.Config)
	if err != nil {
		return cli.NewExitError(err.Error(), 3)
	}
	defer closer()

	printSummary(args.App.Writer, catalogApp)
	return nil
}

func cmdMigrate(args *cli.Context) error {
	l := log.NewEmpty()
	ctx := log.WithContext(context.Background(), l)

	if err := Migrate(ctx, config.Config); err != nil {
		return cli.NewExitError(err.Error(), 4)
	}
	return nil
}

func printSummary(w io.Writer, c *app.Catalog) {
	s := c.Store()
	fmt.Fprintf(w, "revision: %s\n", s.Revision())
	fmt.Fprintf(w, "records: %d\n", s.Len())
	for _, category := range c.ListCategories(context.Background()) {
		fmt.Fprintf(w, "  %s: %d\n", category.Name, category.Count)
	}
}
