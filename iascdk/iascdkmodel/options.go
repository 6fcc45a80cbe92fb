package iascdkmodel

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lindbackhq/ias/iascdk/iascdkconfig"
)

// Options configure model initialisation. Only DeploymentName is required;
// option processors fill in the rest before the model is built.
type Options struct {
	// DeploymentName names the deployment the model describes.
	DeploymentName string `validate:"required"`

	// Stacks lists the stacks to create. When empty, the DefaultStack
	// processor adds a single "default" stack named after the deployment.
	Stacks []StackOptions `validate:"dive"`

	// Environment selects the account/region pair the stacks target.
	Environment EnvironmentOptions

	// Context seeds the CDK app context. The ConfigFiles processor merges
	// layered TOML configuration into it.
	Context map[string]any

	// Tags are applied to every stack in the model.
	Tags map[string]string
}

// StackOptions describe a single stack: its CDK identifier, an optional
// explicit CloudFormation stack name, and optional deployment ordering.
type StackOptions struct {
	ID        string `validate:"required"`
	Name      string
	DependsOn []string
}

// EnvironmentOptions name the target environment and pin its account and
// region. Empty fields stay unresolved until a processor fills them in.
type EnvironmentOptions struct {
	Name    string
	Account string
	Region  string
}

// Processor transforms options before the model is built. Processors are
// pure: they operate on a copy and return the updated options, leaving the
// input untouched.
type Processor func(opts Options, log *zap.Logger) (Options, error)

// Chain composes processors into a single one, applied left to right.
func Chain(procs ...Processor) Processor {
	return func(opts Options, log *zap.Logger) (Options, error) {
		var err error
		for _, proc := range procs {
			opts, err = proc(opts, log)
			if err != nil {
				return opts, err
			}
		}
		return opts, nil
	}
}

// Clone returns a deep copy of the options. Processors start from it so the
// caller's options are never mutated.
func (o Options) Clone() Options {
	clone := o
	if o.Stacks != nil {
		clone.Stacks = make([]StackOptions, len(o.Stacks))
		for i, stack := range o.Stacks {
			stack.DependsOn = slices.Clone(stack.DependsOn)
			clone.Stacks[i] = stack
		}
	}
	clone.Context = iascdkconfig.Clone(o.Context)
	clone.Tags = maps.Clone(o.Tags)
	return clone
}

func (o Options) validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(o); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			msgs := make([]string, 0, len(validationErrs))
			for _, e := range validationErrs {
				msgs = append(msgs, formatValidationError(e))
			}
			return errors.Errorf("invalid model options:\n  - %s", strings.Join(msgs, "\n  - "))
		}
		return errors.Wrap(err, "validating model options")
	}

	return nil
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Namespace())
	default:
		return fmt.Sprintf("%s failed validation %q", e.Namespace(), e.Tag())
	}
}
