package model

// Schema names a JSON Schema used to validate an artifact document.
type Schema struct {
	Name       string
	Definition map[string]any
}

var versionProperty = map[string]any{
	"type":        "string",
	"pattern":     `^[0-9]+\.[0-9]+\.[0-9]+$`,
	"description": "Artifact format version (semver, without a leading v)",
}

var numberArray = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"type": "number"},
}

// ScalerSchema describes an exported standard scaler.
var ScalerSchema = &Schema{
	Name: "standard-scaler",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"format_version": versionProperty,
			"kind":           map[string]any{"const": KindStandardScaler},
			"n_features":     map[string]any{"type": "integer", "minimum": 1},
			"mean":           numberArray,
			"scale":          numberArray,
			"feature_names": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"format_version", "kind", "n_features", "mean", "scale"},
		"additionalProperties": false,
	},
}

// ClassifierSchema describes an exported linear binary classifier.
var ClassifierSchema = &Schema{
	Name: "linear-classifier",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"format_version": versionProperty,
			"kind": map[string]any{
				"type": "string",
				"enum": []any{KindLogisticRegression, KindLinearSVC},
			},
			"n_features": map[string]any{"type": "integer", "minimum": 1},
			"coef":       numberArray,
			"intercept":  map[string]any{"type": "number"},
		},
		"required":             []any{"format_version", "kind", "n_features", "coef", "intercept"},
		"additionalProperties": false,
	},
}
