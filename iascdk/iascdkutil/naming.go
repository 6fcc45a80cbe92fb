package iascdkutil

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/iancoleman/strcase"
)

// DefaultStackID is the CDK identifier given to the stack that is created
// when a deployment does not specify any stacks of its own.
const DefaultStackID = "default"

// StackName derives the CloudFormation stack name from the deployment name,
// the stack ID, and the environment name. This is the canonical naming policy
// applied by the StackNames option processor.
//
// The default stack takes the deployment name itself. Without a deployment
// name the stack ID stands alone. Otherwise the name is the deployment name
// and stack ID joined with a dash, with the environment name appended when
// the environment is named.
func StackName(deployment, id, environment string) string {
	switch {
	case id == DefaultStackID && deployment != "":
		return deployment
	case deployment == "":
		return id
	case environment == "":
		return fmt.Sprintf("%s-%s", deployment, id)
	default:
		return fmt.Sprintf("%s-%s-%s", deployment, id, environment)
	}
}

// Casing specifies how to format the identifier string.
type Casing int

const (
	// CasingCamel formats as CamelCase (e.g., "ExamplesDevEventsQueue").
	CasingCamel Casing = iota
	// CasingLowerCamel formats as lowerCamelCase (e.g., "examplesDevEventsQueue").
	CasingLowerCamel
	// CasingSnake formats as snake_case (e.g., "examples_dev_events_queue").
	CasingSnake
	// CasingScreamingSnake formats as SCREAMING_SNAKE_CASE (e.g., "EXAMPLES_DEV_EVENTS_QUEUE").
	CasingScreamingSnake
	// CasingKebab formats as kebab-case (e.g., "examples-dev-events-queue").
	CasingKebab
	// CasingScreamingKebab formats as SCREAMING-KEBAB-CASE (e.g., "EXAMPLES-DEV-EVENTS-QUEUE").
	CasingScreamingKebab
)

// ResourceName generates a resource identifier prefixed with the deployment
// name and the environment name. The label is a free-form string that the
// caller provides.
//
// The format is: "{deployment}-{environment}-{label}" converted to the
// specified casing. For unnamed environments, the format is
// "{deployment}-{label}".
func ResourceName(scope constructs.Construct, label string, casing Casing) string {
	info := ModelInfoFromScope(scope)

	var base string
	if info.EnvironmentName != "" {
		base = fmt.Sprintf("%s-%s-%s", info.DeploymentName, info.EnvironmentName, label)
	} else {
		base = fmt.Sprintf("%s-%s", info.DeploymentName, label)
	}

	return applyCasing(base, casing)
}

func applyCasing(s string, casing Casing) string {
	switch casing {
	case CasingCamel:
		return strcase.ToCamel(s)
	case CasingLowerCamel:
		return strcase.ToLowerCamel(s)
	case CasingSnake:
		return strcase.ToSnake(s)
	case CasingScreamingSnake:
		return strcase.ToScreamingSnake(s)
	case CasingKebab:
		return strcase.ToKebab(s)
	case CasingScreamingKebab:
		return strcase.ToScreamingKebab(s)
	default:
		return strcase.ToCamel(s)
	}
}
