// Package iascdkutil provides naming and context utilities shared by the ias
// construct packages.
//
// # Model info in the construct tree
//
// [iascdkmodel.InitModel] stores a [ModelInfo] record in the app's context so
// that construct packages deep in the tree can resolve the deployment and
// environment names without the model being threaded through every call:
//
//	info := iascdkutil.ModelInfoFromScope(scope)
//	name := iascdkutil.ResourceName(scope, "events-queue", iascdkutil.CasingKebab)
//
// # Context data
//
// [ContextValue] descends into nested context tables, which is how layered
// TOML configuration loaded into the app context is read back out:
//
//	timeout := iascdkutil.ContextValue(stack, "main", "visibility_timeout")
package iascdkutil
