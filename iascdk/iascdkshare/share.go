// Package iascdkshare shares values between the stacks of a deployment
// through AWS Systems Manager Parameter Store.
//
// The producing stack stores a value under a deployment-scoped parameter
// path; consuming stacks look it up at deploy time, without creating
// cross-stack CloudFormation references that would couple their lifecycles.
package iascdkshare

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsssm"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/lindbackhq/ias/iascdk/iascdkutil"
)

// ParameterName generates a hierarchical SSM parameter path.
// Returns a path like /{deployment}/{namespace}/{name}.
func ParameterName(scope constructs.Construct, namespace string, name string) *string {
	info := iascdkutil.ModelInfoFromScope(scope)
	return jsii.Sprintf("/%s/%s/%s", info.DeploymentName, namespace, name)
}

// Store creates an SSM string parameter holding the given value so that
// other stacks in the deployment can look it up.
func Store(scope constructs.Construct, id string, namespace string, name string, value *string) {
	awsssm.NewStringParameter(scope, jsii.String(id),
		&awsssm.StringParameterProps{
			ParameterName: ParameterName(scope, namespace, name),
			StringValue:   value,
		})
}

// Lookup reads a parameter stored by another stack in the same deployment.
func Lookup(scope constructs.Construct, namespace string, name string) *string {
	return awsssm.StringParameter_ValueForStringParameter(scope,
		ParameterName(scope, namespace, name), nil)
}
