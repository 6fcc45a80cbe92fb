package iascdkmodel

import (
	"maps"
	"slices"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lindbackhq/ias/iascdk/iascdkutil"
)

// NamedEnvironment pairs the resolved CDK environment with its name. The
// name is empty for deployments that do not name their environment.
type NamedEnvironment struct {
	Name string
	Env  awscdk.Environment
}

// Model is the materialized deployment model: the CDK app root, one stack
// handle per descriptor, and the resolved environment.
type Model struct {
	DeploymentName string
	App            awscdk.App
	Stacks         map[string]awscdk.Stack
	Environment    NamedEnvironment
}

// InitModel builds the deployment model from the given options.
//
// The processors run in order before anything is created; when none are given
// the Defaults chain is applied. The processed options are validated, a CDK
// app is created with the options context, and one stack per descriptor is
// created in the resolved environment with the configured tags applied.
// Declared stack dependencies are wired once all stacks exist, so declaration
// order does not matter; unknown or self dependencies are errors.
func InitModel(log *zap.Logger, opts Options, procs ...Processor) (*Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(procs) == 0 {
		procs = []Processor{Defaults}
	}

	var err error
	for _, proc := range procs {
		opts, err = proc(opts, log)
		if err != nil {
			return nil, err
		}
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	log.Debug("initialising model",
		zap.String("deployment", opts.DeploymentName),
		zap.Int("stacks", len(opts.Stacks)))

	var appProps *awscdk.AppProps
	if opts.Context != nil {
		appProps = &awscdk.AppProps{Context: &opts.Context}
	}
	app := awscdk.NewApp(appProps)

	// Model info must be stored before the app gets children; CDK rejects
	// context changes on constructs that already have them.
	iascdkutil.StoreModelInfo(app, &iascdkutil.ModelInfo{
		DeploymentName:  opts.DeploymentName,
		EnvironmentName: opts.Environment.Name,
	})

	env := awscdk.Environment{}
	if opts.Environment.Account != "" {
		env.Account = jsii.String(opts.Environment.Account)
	}
	if opts.Environment.Region != "" {
		env.Region = jsii.String(opts.Environment.Region)
	}

	stacks := make(map[string]awscdk.Stack, len(opts.Stacks))
	for _, stackOpts := range opts.Stacks {
		if _, dup := stacks[stackOpts.ID]; dup {
			return nil, errors.Newf("duplicate stack id %q", stackOpts.ID)
		}

		name := stackOpts.Name
		if name == "" {
			name = stackOpts.ID
		}

		stack := awscdk.NewStack(app, jsii.String(stackOpts.ID), &awscdk.StackProps{
			StackName: jsii.String(name),
			Env:       &env,
		})
		applyStackTags(stack, opts.Tags)
		stacks[stackOpts.ID] = stack
	}

	for _, stackOpts := range opts.Stacks {
		for _, dep := range stackOpts.DependsOn {
			if dep == stackOpts.ID {
				return nil, errors.Newf("stack %q depends on itself", stackOpts.ID)
			}
			target, ok := stacks[dep]
			if !ok {
				return nil, errors.Newf("stack %q depends on unknown stack %q", stackOpts.ID, dep)
			}
			stacks[stackOpts.ID].AddDependency(target,
				jsii.Sprintf("%s must deploy before %s", dep, stackOpts.ID))
		}
	}

	return &Model{
		DeploymentName: opts.DeploymentName,
		App:            app,
		Stacks:         stacks,
		Environment: NamedEnvironment{
			Name: opts.Environment.Name,
			Env:  env,
		},
	}, nil
}

// Generate synthesizes the CloudFormation templates and assets for the model.
func Generate(model *Model) {
	model.App.Synth(nil)
}

func applyStackTags(stack awscdk.Stack, tags map[string]string) {
	stackTags := awscdk.Tags_Of(stack)
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		stackTags.Add(jsii.String(key), jsii.String(tags[key]), nil)
	}
}
