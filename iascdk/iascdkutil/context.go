package iascdkutil

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// ContextValue resolves a context value for a construct. The first key reads
// the context entry directly; any additional keys descend into nested tables.
// It returns nil when any step of the path is missing.
func ContextValue(scope constructs.Construct, keys ...string) any {
	if len(keys) == 0 {
		return nil
	}

	val := scope.Node().TryGetContext(jsii.String(keys[0]))
	for _, key := range keys[1:] {
		table, ok := val.(map[string]any)
		if !ok {
			return nil
		}
		val = table[key]
	}

	return val
}

// ContextString is like ContextValue but returns the value as a string, with
// ok reporting whether the path resolved to one.
func ContextString(scope constructs.Construct, keys ...string) (string, bool) {
	s, ok := ContextValue(scope, keys...).(string)
	return s, ok
}

// Namespace adds a plain construct to a stack for grouping related resources.
func Namespace(scope constructs.Construct, name string) constructs.Construct {
	return constructs.NewConstruct(scope, jsii.String(name))
}
