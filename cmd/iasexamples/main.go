// Command iasexamples synthesizes the example deployments for the ias
// library. Select an example with --example; each one mirrors a step up in
// how much of the options record is supplied by the caller.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Example  int    `short:"e" default:"1" help:"Example to synthesize (1-4)."`
	LogLevel string `default:"info" help:"Log level (debug, info, warn, error)."`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("iasexamples"),
		kong.Description("Synthesize the ias example deployments."),
	)

	ctx.FatalIfErrorf(run(app))
}

func run(app App) error {
	log, err := newLogger(app.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	defer jsii.Close()

	switch app.Example {
	case 1:
		return exampleDefaultStack(log)
	case 2:
		return exampleConfigDefaults(log)
	case 3:
		return exampleTaggedStack(log)
	case 4:
		return exampleTwoStacks(log)
	default:
		return errors.Newf("unknown example %d, pick 1-4", app.Example)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	return cfg.Build()
}
