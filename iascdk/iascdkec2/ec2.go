// Package iascdkec2 provides a small EC2 instance construct parameterised by
// a T-shirt style instance size within the burstable t3 class.
package iascdkec2

import (
	"maps"
	"slices"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// InstanceSize selects the instance size within the t3 class.
type InstanceSize string

const (
	SizeMicro   InstanceSize = "micro"
	SizeSmall   InstanceSize = "small"
	SizeMedium  InstanceSize = "medium"
	SizeLarge   InstanceSize = "large"
	SizeXlarge  InstanceSize = "xlarge"
	Size2xlarge InstanceSize = "2xlarge"
	Size4xlarge InstanceSize = "4xlarge"
	Size8xlarge InstanceSize = "8xlarge"
)

var instanceSizes = map[InstanceSize]awsec2.InstanceSize{
	SizeMicro:   awsec2.InstanceSize_MICRO,
	SizeSmall:   awsec2.InstanceSize_SMALL,
	SizeMedium:  awsec2.InstanceSize_MEDIUM,
	SizeLarge:   awsec2.InstanceSize_LARGE,
	SizeXlarge:  awsec2.InstanceSize_XLARGE,
	Size2xlarge: awsec2.InstanceSize_XLARGE2,
	Size4xlarge: awsec2.InstanceSize_XLARGE4,
	Size8xlarge: awsec2.InstanceSize_XLARGE8,
}

// Props configures the instance.
type Props struct {
	// Description of what the instance is for, applied as a tag.
	Description string

	// Size of the instance within the t3 class. Required.
	Size InstanceSize

	// Vpc the instance is placed in. Required.
	Vpc awsec2.IVpc

	// Name sets the instance name. When nil, CloudFormation picks one.
	Name *string

	// Tags applied to the instance.
	Tags map[string]string
}

// New creates an EC2 instance running the latest Amazon Linux 2023 image.
// It panics on an unknown size or a missing VPC.
func New(scope constructs.Construct, id string, props Props) awsec2.Instance {
	size, ok := instanceSizes[props.Size]
	if !ok {
		panic("unknown instance size: " + string(props.Size))
	}
	if props.Vpc == nil {
		panic("a VPC is required to place the instance in")
	}

	instance := awsec2.NewInstance(scope, jsii.String(id), &awsec2.InstanceProps{
		Vpc:          props.Vpc,
		InstanceType: awsec2.InstanceType_Of(awsec2.InstanceClass_BURSTABLE3, size),
		MachineImage: awsec2.MachineImage_LatestAmazonLinux2023(nil),
		InstanceName: props.Name,
	})

	tags := awscdk.Tags_Of(instance)
	if props.Description != "" {
		tags.Add(jsii.String("Description"), jsii.String(props.Description), nil)
	}
	for _, key := range slices.Sorted(maps.Keys(props.Tags)) {
		tags.Add(jsii.String(key), jsii.String(props.Tags[key]), nil)
	}

	return instance
}
