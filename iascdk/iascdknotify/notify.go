// Package iascdknotify provides an SNS topic with an SQS queue subscribed to
// it, the fan-out pair used throughout the example deployments.
//
// The topic name can be set explicitly or resolved from deployment
// configuration: when Props.TopicName is nil the construct reads the context
// path [<config group>, "topic_name"], where the config group is the
// enclosing stack's construct ID. With layered TOML configuration this means
// a stack with ID "main" picks up:
//
//	[main]
//	topic_name = "examples-topic"
package iascdknotify

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssnssubscriptions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/lindbackhq/ias/iascdk/iascdkutil"
)

// Notify provides access to the topic/queue pair.
type Notify interface {
	// Topic returns the SNS topic.
	Topic() awssns.Topic

	// Queue returns the SQS queue subscribed to the topic.
	Queue() awssqs.Queue
}

// Props configures the Notify construct.
type Props struct {
	// TopicName overrides the topic name. When nil, the name is resolved
	// from context under [<stack construct ID>, "topic_name"]; when that is
	// missing too, CloudFormation generates a name.
	TopicName *string

	// VisibilityTimeout of the queue. Defaults to 300 seconds.
	VisibilityTimeout awscdk.Duration
}

type notify struct {
	topic awssns.Topic
	queue awssqs.Queue
}

// New creates the topic, the queue, and the subscription in the given scope.
func New(scope constructs.Construct, id string, props Props) Notify {
	scope = constructs.NewConstruct(scope, jsii.String(id))
	con := &notify{}

	timeout := props.VisibilityTimeout
	if timeout == nil {
		timeout = awscdk.Duration_Seconds(jsii.Number(300))
	}
	con.queue = awssqs.NewQueue(scope, jsii.String("Queue"), &awssqs.QueueProps{
		VisibilityTimeout: timeout,
	})

	topicName := props.TopicName
	if topicName == nil {
		group := *awscdk.Stack_Of(scope).Node().Id()
		if name, ok := iascdkutil.ContextString(scope, group, "topic_name"); ok {
			topicName = jsii.String(name)
		}
	}
	con.topic = awssns.NewTopic(scope, jsii.String("Topic"), &awssns.TopicProps{
		TopicName: topicName,
	})
	con.topic.AddSubscription(awssnssubscriptions.NewSqsSubscription(con.queue, nil))

	return con
}

func (n *notify) Topic() awssns.Topic {
	return n.topic
}

func (n *notify) Queue() awssqs.Queue {
	return n.queue
}
