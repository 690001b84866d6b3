package model

import (
	"fmt"
	"math"
)

// Supported classifier kinds. Both predict with the sign of the linear
// decision function.
const (
	KindLogisticRegression = "logistic_regression"
	KindLinearSVC          = "linear_svc"
)

// LinearClassifier is a binary linear model: label 1 when coef·x + intercept > 0.
type LinearClassifier struct {
	FormatVersion string    `json:"format_version"`
	Kind          string    `json:"kind"`
	NFeatures     int       `json:"n_features"`
	Coef          []float64 `json:"coef"`
	Intercept     float64   `json:"intercept"`
}

func (c *LinearClassifier) check() error {
	if len(c.Coef) != c.NFeatures {
		return fmt.Errorf("coef has %d values, n_features is %d", len(c.Coef), c.NFeatures)
	}
	return nil
}

// DecisionFunction returns the signed distance of x from the boundary.
func (c *LinearClassifier) DecisionFunction(x []float64) (float64, error) {
	if len(x) != c.NFeatures {
		return 0, fmt.Errorf("classifier expects %d features, got %d", c.NFeatures, len(x))
	}
	z := c.Intercept
	for i, v := range x {
		z += c.Coef[i] * v
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, fmt.Errorf("decision value is not finite")
	}
	return z, nil
}

// Predict returns 1 or 0.
func (c *LinearClassifier) Predict(x []float64) (int, error) {
	z, err := c.DecisionFunction(x)
	if err != nil {
		return 0, err
	}
	if z > 0 {
		return 1, nil
	}
	return 0, nil
}
