package model

import (
	"fmt"
	"math"
)

// KindStandardScaler identifies a mean/scale standardizer.
const KindStandardScaler = "standard_scaler"

// StandardScaler applies (x - mean) / scale per feature.
type StandardScaler struct {
	FormatVersion string    `json:"format_version"`
	Kind          string    `json:"kind"`
	NFeatures     int       `json:"n_features"`
	Mean          []float64 `json:"mean"`
	Scale         []float64 `json:"scale"`
	FeatureNames  []string  `json:"feature_names,omitempty"`
}

func (s *StandardScaler) check() error {
	if len(s.Mean) != s.NFeatures {
		return fmt.Errorf("mean has %d values, n_features is %d", len(s.Mean), s.NFeatures)
	}
	if len(s.Scale) != s.NFeatures {
		return fmt.Errorf("scale has %d values, n_features is %d", len(s.Scale), s.NFeatures)
	}
	if len(s.FeatureNames) > 0 && len(s.FeatureNames) != s.NFeatures {
		return fmt.Errorf("feature_names has %d entries, n_features is %d", len(s.FeatureNames), s.NFeatures)
	}
	return nil
}

// Transform returns a new standardized vector. A zero scale is treated as 1,
// matching how the scaler was fitted on constant features.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != s.NFeatures {
		return nil, fmt.Errorf("scaler expects %d features, got %d", s.NFeatures, len(x))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("feature %d is not finite", i)
		}
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}
