package iascdkmodel

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lindbackhq/ias/iascdk/iascdkconfig"
	"github.com/lindbackhq/ias/iascdk/iascdkutil"
)

// cdkEnv holds the variables the CDK CLI exports for the target account and
// region of the current credentials.
type cdkEnv struct {
	Account string `env:"CDK_DEFAULT_ACCOUNT"`
	Region  string `env:"CDK_DEFAULT_REGION"`
}

// EnvironmentDefaults fills missing environment settings from the
// CDK_DEFAULT_ACCOUNT and CDK_DEFAULT_REGION variables. Explicitly set
// account or region values win over the variables.
func EnvironmentDefaults(opts Options, log *zap.Logger) (Options, error) {
	var cdk cdkEnv
	if err := env.Parse(&cdk); err != nil {
		return opts, errors.Wrap(err, "reading CDK environment variables")
	}

	newOpts := opts.Clone()
	if newOpts.Environment.Account == "" {
		newOpts.Environment.Account = cdk.Account
	}
	if newOpts.Environment.Region == "" {
		newOpts.Environment.Region = cdk.Region
	}

	log.Debug("applied environment defaults",
		zap.String("name", newOpts.Environment.Name),
		zap.String("account", newOpts.Environment.Account),
		zap.String("region", newOpts.Environment.Region))

	return newOpts, nil
}

// DefaultStack adds a single "default" stack named after the deployment when
// no stacks have been specified.
func DefaultStack(opts Options, log *zap.Logger) (Options, error) {
	newOpts := opts.Clone()
	if len(newOpts.Stacks) > 0 {
		return newOpts, nil
	}

	newOpts.Stacks = []StackOptions{{
		ID:   iascdkutil.DefaultStackID,
		Name: newOpts.DeploymentName,
	}}

	log.Debug("added default stack", zap.String("name", newOpts.DeploymentName))
	return newOpts, nil
}

// StackNames applies the naming policy of iascdkutil.StackName to every stack
// that does not have an explicit name set.
func StackNames(opts Options, log *zap.Logger) (Options, error) {
	newOpts := opts.Clone()
	for i, stack := range newOpts.Stacks {
		if stack.Name != "" {
			continue
		}
		newOpts.Stacks[i].Name = iascdkutil.StackName(
			newOpts.DeploymentName, stack.ID, newOpts.Environment.Name)
	}

	log.Debug("resolved stack names", zap.Int("stacks", len(newOpts.Stacks)))
	return newOpts, nil
}

// ConfigFiles merges layered TOML configuration into the options context.
// File paths are derived from the deployment and environment names per
// iascdkconfig.Layers; missing files are skipped and settings from later
// layers override earlier ones.
func ConfigFiles(opts Options, log *zap.Logger) (Options, error) {
	paths := iascdkconfig.Layers(opts.DeploymentName, opts.Environment.Name)

	merged, err := iascdkconfig.Load(opts.Context, paths...)
	if err != nil {
		return opts, err
	}

	newOpts := opts.Clone()
	newOpts.Context = merged

	log.Debug("loaded configuration layers",
		zap.Strings("paths", paths),
		zap.Int("keys", len(merged)))

	return newOpts, nil
}

// Defaults is the standard processor chain: environment settings from the CDK
// variables, a default stack when none are given, and derived stack names.
var Defaults = Chain(EnvironmentDefaults, DefaultStack, StackNames)

// ConfigDefaults extends Defaults with layered TOML configuration loading.
var ConfigDefaults = Chain(Defaults, ConfigFiles)
