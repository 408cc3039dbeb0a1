package domain

import (
	"dario.cat/mergo"
)

// MergeVariables folds overrides on top of base and returns a new map.
// Overrides win on conflicting keys, nested maps merge recursively. The
// top level of base is copied before merging; callers wanting full
// isolation pass a freshly built base, which is what the runner does.
func MergeVariables(base, overrides map[string]interface{}) (map[string]interface{}, error) {
	merged := make(map[string]interface{}, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}

	if len(overrides) == 0 {
		return merged, nil
	}

	if err := mergo.Merge(&merged, overrides, mergo.WithOverride); err != nil {
		return nil, err
	}

	return merged, nil
}
