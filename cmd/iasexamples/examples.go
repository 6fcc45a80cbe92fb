package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"go.uber.org/zap"

	"github.com/lindbackhq/ias/iascdk/iascdkmodel"
	"github.com/lindbackhq/ias/iascdk/iascdknotify"
)

// addNotify attaches the SNS topic and subscribed SQS queue to a stack. The
// topic name comes from the "<stack id>.topic_name" config entry when set.
func addNotify(stack awscdk.Stack) {
	iascdknotify.New(stack, "Notify", iascdknotify.Props{})
}

// exampleDefaultStack initialises the model with just a deployment name.
//
// A default stack is created, its id is "default" and its name is the
// deployment name. An SNS topic and an SQS queue that subscribes to that
// topic are created in it.
func exampleDefaultStack(log *zap.Logger) error {
	model, err := iascdkmodel.InitModel(log, iascdkmodel.Options{
		DeploymentName: "examples",
	})
	if err != nil {
		return err
	}

	addNotify(model.Stacks["default"])
	iascdkmodel.Generate(model)
	return nil
}

// exampleConfigDefaults is exampleDefaultStack with layered configuration:
// the topic name is set from a config entry in the file "examples.toml".
func exampleConfigDefaults(log *zap.Logger) error {
	model, err := iascdkmodel.InitModel(log, iascdkmodel.Options{
		DeploymentName: "examples",
	}, iascdkmodel.ConfigDefaults)
	if err != nil {
		return err
	}

	addNotify(model.Stacks["default"])
	iascdkmodel.Generate(model)
	return nil
}

// exampleTaggedStack initialises the model with a deployment name, a stack,
// and stack tags.
//
// The stack has id "main" and is named "examples-main". Resources in the
// stack get the tag 'Environment' with value 'dev'. The topic name is set
// from a config entry in the file "examples.toml".
func exampleTaggedStack(log *zap.Logger) error {
	model, err := iascdkmodel.InitModel(log, iascdkmodel.Options{
		DeploymentName: "examples",
		Stacks:         []iascdkmodel.StackOptions{{ID: "main"}},
		Tags:           map[string]string{"Environment": "dev"},
	}, iascdkmodel.ConfigDefaults)
	if err != nil {
		return err
	}

	addNotify(model.Stacks["main"])
	iascdkmodel.Generate(model)
	return nil
}

// exampleTwoStacks initialises the model with a deployment name, two stacks,
// and stack tags.
//
// Stacks "main" and "other" are named "examples-main" and "examples-other".
// Each stack gets its own topic/queue pair, with topic names from
// "examples.toml".
func exampleTwoStacks(log *zap.Logger) error {
	model, err := iascdkmodel.InitModel(log, iascdkmodel.Options{
		DeploymentName: "examples",
		Stacks: []iascdkmodel.StackOptions{
			{ID: "main"},
			{ID: "other"},
		},
		Tags: map[string]string{"Environment": "dev"},
	}, iascdkmodel.ConfigDefaults)
	if err != nil {
		return err
	}

	addNotify(model.Stacks["main"])
	addNotify(model.Stacks["other"])
	iascdkmodel.Generate(model)
	return nil
}
