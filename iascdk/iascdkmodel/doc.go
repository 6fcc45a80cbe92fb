// Package iascdkmodel turns deployment options into a materialized CDK model.
//
// The package is built around a few concepts:
//
//   - A model describing the infrastructure: a deployment name, the CDK app,
//     a collection of stacks, and the resolved environment.
//   - Option processors: pure functions that layer defaults or external
//     configuration over the options before the model is built.
//   - Function-based resource creation, as opposed to inheritance-based
//     creation: downstream code attaches resources to the pre-built stack
//     handles instead of subclassing a framework base class.
//
// # Quick start
//
//	func main() {
//	    defer jsii.Close()
//
//	    model, err := iascdkmodel.InitModel(log, iascdkmodel.Options{
//	        DeploymentName: "examples",
//	    })
//	    if err != nil {
//	        // handle
//	    }
//
//	    stack := model.Stacks["default"]
//	    // attach resources to stack
//
//	    iascdkmodel.Generate(model)
//	}
//
// When no processors are given, [InitModel] applies the [Defaults] chain: the
// target account and region come from the CDK_DEFAULT_ACCOUNT and
// CDK_DEFAULT_REGION variables, a "default" stack named after the deployment
// is added when no stacks are specified, and missing stack names are derived
// from the deployment and environment names. [ConfigDefaults] additionally
// merges layered TOML configuration into the app context.
package iascdkmodel
