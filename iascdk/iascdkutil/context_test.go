//nolint:paralleltest // jsii runtime doesn't support parallel tests
package iascdkutil_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/lindbackhq/ias/iascdk/iascdkutil"
)

func newContextApp() awscdk.App {
	ctx := map[string]any{
		"flat": "value",
		"main": map[string]any{
			"topic_name": "examples-topic",
			"nested": map[string]any{
				"count": 3,
			},
		},
	}
	return awscdk.NewApp(&awscdk.AppProps{Context: &ctx})
}

func TestContextValue(t *testing.T) {
	defer jsii.Close()

	app := newContextApp()
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	tests := []struct {
		name string
		keys []string
		want any
	}{
		{"flat key", []string{"flat"}, "value"},
		{"nested key", []string{"main", "topic_name"}, "examples-topic"},
		{"missing top-level key", []string{"other"}, nil},
		{"missing nested key", []string{"main", "other"}, nil},
		{"path through non-table", []string{"flat", "deeper"}, nil},
		{"no keys", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := iascdkutil.ContextValue(stack, tt.keys...)
			if got != tt.want {
				t.Errorf("ContextValue(%v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestContextString(t *testing.T) {
	defer jsii.Close()

	app := newContextApp()
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	got, ok := iascdkutil.ContextString(stack, "main", "topic_name")
	if !ok || got != "examples-topic" {
		t.Errorf("ContextString() = %q, %v, want %q, true", got, ok, "examples-topic")
	}

	if _, ok := iascdkutil.ContextString(stack, "main", "nested", "count"); ok {
		t.Error("ContextString() should report ok=false for non-string values")
	}
}

func TestNamespace(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	ns := iascdkutil.Namespace(stack, "Storage")
	if ns == nil {
		t.Fatal("Namespace() should not be nil")
	}
	if got := *ns.Node().Id(); got != "Storage" {
		t.Errorf("namespace id = %q, want %q", got, "Storage")
	}
	if *ns.Node().Scope().Node().Id() != "TestStack" {
		t.Error("namespace should be a child of the stack")
	}
}
