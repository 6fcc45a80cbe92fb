package iascdkutil

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// ModelInfo carries the deployment and environment names resolved during
// model initialisation.
type ModelInfo struct {
	DeploymentName  string
	EnvironmentName string
}

// modelInfoContextKey is the well-known key used to store ModelInfo in the
// construct tree.
const modelInfoContextKey = "__iascdk_model_info"

// StoreModelInfo stores the model info in the scope's context so it can be
// retrieved anywhere in the construct tree via ModelInfoFromScope. It must be
// called before any children are added to the scope.
func StoreModelInfo(scope constructs.Construct, info *ModelInfo) {
	scope.Node().SetContext(jsii.String(modelInfoContextKey), info)
}

// ModelInfoFromScope retrieves the model info from the construct tree.
// It panics if the info was not stored (i.e., InitModel was not used).
func ModelInfoFromScope(scope constructs.Construct) *ModelInfo {
	val := scope.Node().TryGetContext(jsii.String(modelInfoContextKey))
	if val == nil {
		panic("iascdkutil.ModelInfo not found in construct tree - was InitModel or StoreModelInfo called?")
	}
	info, ok := val.(*ModelInfo)
	if !ok {
		panic(fmt.Sprintf("iascdkutil.ModelInfo has unexpected type %T", val))
	}
	return info
}
