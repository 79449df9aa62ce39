package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/core-typedef/internal/compiler"
	"github.com/griffnb/core-typedef/internal/console"
	"github.com/griffnb/core-typedef/internal/gen"
	"github.com/griffnb/core-typedef/internal/schema"
)

const (
	inputFlag            = "input"
	packageFlag          = "package"
	propertyStrategyFlag = "propertyStrategy"
	outputFlag           = "output"
	outputTypesFlag      = "outputTypes"
	maxDepthFlag         = "maxDepth"
	quietFlag            = "quiet"
	debugFlag            = "debug"
)

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.StringFlag{
		Name:     inputFlag,
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "OpenAPI or Swagger documents to compile, comma separated",
	},
	&cli.StringFlag{
		Name:    packageFlag,
		Aliases: []string{"p"},
		Usage:   "Root package of the generated types, defaults to each document's x-package",
	},
	&cli.StringFlag{
		Name:  propertyStrategyFlag,
		Value: schema.CamelCase,
		Usage: "Property Naming Strategy like " + schema.SnakeCase + "," + schema.CamelCase + "," + schema.PascalCase,
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./model",
		Usage:   "Output directory for all the generated files (<input>.model.json, <input>.model.yaml)",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json,yaml",
		Usage:   "Output types of generated files like json,yaml",
	},
	&cli.IntFlag{
		Name:  maxDepthFlag,
		Value: compiler.DefaultMaxDepth,
		Usage: "Maximum inline schema nesting depth",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
}

func generateAction(ctx *cli.Context) error {
	strategy := ctx.String(propertyStrategyFlag)

	if !schema.IsValidNamingStrategy(strategy) {
		return fmt.Errorf("not supported %s propertyStrategy", strategy)
	}

	outputTypes := strings.Split(ctx.String(outputTypesFlag), ",")
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}
	logger := configureLogging(console.Logger, ctx.Bool(quietFlag), ctx.IsSet(debugFlag))

	return gen.New().Build(&gen.Config{
		Inputs:             ctx.String(inputFlag),
		RootPackage:        ctx.String(packageFlag),
		OutputDir:          ctx.String(outputFlag),
		OutputTypes:        outputTypes,
		PropNamingStrategy: strategy,
		MaxDepth:           ctx.Int(maxDepthFlag),
		Debugger:           logger,
	})
}

// configureLogging applies --quiet and --debug to c and returns the progress
// logger handed to gen. Quiet silences c as well, warnings included.
func configureLogging(c *console.Console, quiet, debug bool) gen.Debugger {
	if debug {
		c.DebugLevel = 1
	}
	if quiet {
		c.SetOutput(io.Discard)
		return log.New(io.Discard, "", log.LstdFlags)
	}
	return c
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "core-typedef"
	app.Version = gen.Version
	app.Usage = "Compile OpenAPI and Swagger schemas into a language neutral type model."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate type models",
			Action:  generateAction,
			Flags:   generateFlags,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
