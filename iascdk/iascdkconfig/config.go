// Package iascdkconfig loads layered TOML configuration for a deployment.
//
// Configuration is resolved from up to three files, applied in order:
//
//	{environment}.toml
//	{deployment}.toml
//	{deployment}-{environment}.toml
//
// Later layers override earlier ones and nested tables merge recursively.
// Files that do not exist are skipped; parse failures propagate as errors.
package iascdkconfig

import (
	"io/fs"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Layers returns the configuration file paths for a deployment/environment
// pair, in merge order. Layers whose name components are empty are dropped.
func Layers(deployment, environment string) []string {
	var paths []string
	if environment != "" {
		paths = append(paths, environment+".toml")
	}
	if deployment != "" {
		paths = append(paths, deployment+".toml")
	}
	if deployment != "" && environment != "" {
		paths = append(paths, deployment+"-"+environment+".toml")
	}
	return paths
}

// Load reads the given TOML files in order and merges them over base. Later
// files override earlier ones. Files that do not exist are skipped. The base
// map is never modified.
func Load(base map[string]any, paths ...string) (map[string]any, error) {
	result := Clone(base)
	if result == nil {
		result = map[string]any{}
	}

	for _, path := range paths {
		var layer map[string]any
		if _, err := toml.DecodeFile(path, &layer); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		if err := mergo.Merge(&result, layer, mergo.WithOverride); err != nil {
			return nil, errors.Wrapf(err, "merging %s", path)
		}
	}

	return result, nil
}

// Clone returns a deep copy of a configuration map. Nested tables and arrays
// are copied recursively; other values are copied as-is.
func Clone(cfg map[string]any) map[string]any {
	if cfg == nil {
		return nil
	}
	out := make(map[string]any, len(cfg))
	for key, val := range cfg {
		out[key] = cloneValue(val)
	}
	return out
}

func cloneValue(val any) any {
	switch val := val.(type) {
	case map[string]any:
		return Clone(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return val
	}
}
