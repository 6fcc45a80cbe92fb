//nolint:paralleltest // jsii runtime doesn't support parallel tests
package iascdkec2_test

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/jsii-runtime-go"

	"github.com/lindbackhq/ias/iascdk/iascdkec2"
)

func TestNew_CreatesInstance(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)
	vpc := awsec2.NewVpc(stack, jsii.String("Vpc"), nil)

	instance := iascdkec2.New(stack, "Web", iascdkec2.Props{
		Description: "frontend web server",
		Size:        iascdkec2.SizeMicro,
		Vpc:         vpc,
		Tags:        map[string]string{"Role": "web"},
	})
	if instance == nil {
		t.Fatal("New() should not return nil")
	}

	props := findInstance(t, app)
	if props["InstanceType"] != "t3.micro" {
		t.Errorf("InstanceType = %v, want %q", props["InstanceType"], "t3.micro")
	}

	tags, ok := props["Tags"].([]any)
	if !ok {
		t.Fatalf("instance Tags = %v, want a tag list", props["Tags"])
	}
	wantTags := map[string]string{
		"Description": "frontend web server",
		"Role":        "web",
	}
	for key, want := range wantTags {
		found := false
		for _, tag := range tags {
			entry, ok := tag.(map[string]any)
			if ok && entry["Key"] == key && entry["Value"] == want {
				found = true
			}
		}
		if !found {
			t.Errorf("instance tags %v should contain %s=%s", tags, key, want)
		}
	}
}

func TestNew_LargerSizes(t *testing.T) {
	defer jsii.Close()

	tests := []struct {
		size iascdkec2.InstanceSize
		want string
	}{
		{iascdkec2.SizeSmall, "t3.small"},
		{iascdkec2.SizeLarge, "t3.large"},
		{iascdkec2.Size2xlarge, "t3.2xlarge"},
		{iascdkec2.Size8xlarge, "t3.8xlarge"},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			app := awscdk.NewApp(nil)
			stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)
			vpc := awsec2.NewVpc(stack, jsii.String("Vpc"), nil)

			iascdkec2.New(stack, "Web", iascdkec2.Props{
				Size: tt.size,
				Vpc:  vpc,
			})

			props := findInstance(t, app)
			if props["InstanceType"] != tt.want {
				t.Errorf("InstanceType = %v, want %q", props["InstanceType"], tt.want)
			}
		})
	}
}

func TestNew_PanicsOnUnknownSize(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)
	vpc := awsec2.NewVpc(stack, jsii.String("Vpc"), nil)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for unknown size")
		}
	}()

	iascdkec2.New(stack, "Web", iascdkec2.Props{Size: "gigantic", Vpc: vpc})
}

func TestNew_PanicsWithoutVpc(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for missing VPC")
		}
	}()

	iascdkec2.New(stack, "Web", iascdkec2.Props{Size: iascdkec2.SizeMicro})
}

func findInstance(t *testing.T, app awscdk.App) map[string]any {
	t.Helper()

	template := app.Synth(nil).GetStackByName(jsii.String("TestStack")).Template()

	raw, err := json.Marshal(template)
	if err != nil {
		t.Fatalf("marshalling template: %v", err)
	}
	var tmpl map[string]any
	if err := json.Unmarshal(raw, &tmpl); err != nil {
		t.Fatalf("unmarshalling template: %v", err)
	}

	resources, ok := tmpl["Resources"].(map[string]any)
	if !ok {
		t.Fatal("template should have Resources")
	}
	for _, res := range resources {
		entry, ok := res.(map[string]any)
		if ok && entry["Type"] == "AWS::EC2::Instance" {
			props, _ := entry["Properties"].(map[string]any)
			return props
		}
	}

	t.Fatal("no AWS::EC2::Instance in template")
	return nil
}
