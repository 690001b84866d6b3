package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Artifact names used in LoadError.
const (
	ArtifactScaler     = "scaler"
	ArtifactClassifier = "classifier"
)

// ErrUnsupportedVersion indicates an artifact written for another format major.
var ErrUnsupportedVersion = errors.New("unsupported artifact format version")

// LoadError reports a missing, corrupt or incompatible artifact.
// It is fatal at startup.
type LoadError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load %s: %v", e.Artifact, e.Err)
	}
	return fmt.Sprintf("load %s from %s: %v", e.Artifact, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Bundle is the pair of collaborators the predictor needs.
type Bundle struct {
	Scaler     *StandardScaler
	Classifier *LinearClassifier
}

// Load reads both artifacts and checks they agree on the feature count.
func Load(scalerPath, classifierPath string, nFeatures int) (*Bundle, error) {
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, err
	}
	classifier, err := LoadClassifier(classifierPath)
	if err != nil {
		return nil, err
	}

	if scaler.NFeatures != nFeatures {
		return nil, &LoadError{
			Artifact: ArtifactScaler,
			Path:     scalerPath,
			Err:      fmt.Errorf("n_features is %d, this screening produces %d", scaler.NFeatures, nFeatures),
		}
	}
	if classifier.NFeatures != nFeatures {
		return nil, &LoadError{
			Artifact: ArtifactClassifier,
			Path:     classifierPath,
			Err:      fmt.Errorf("n_features is %d, this screening produces %d", classifier.NFeatures, nFeatures),
		}
	}

	return &Bundle{Scaler: scaler, Classifier: classifier}, nil
}

// LoadScaler reads and validates a scaler artifact.
func LoadScaler(path string) (*StandardScaler, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactScaler, Path: path, Err: err}
	}
	s, err := ParseScaler(raw)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return s, nil
}

// LoadClassifier reads and validates a classifier artifact.
func LoadClassifier(path string) (*LinearClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactClassifier, Path: path, Err: err}
	}
	c, err := ParseClassifier(raw)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return c, nil
}

// ParseScaler decodes a scaler artifact document.
func ParseScaler(raw []byte) (*StandardScaler, error) {
	var s StandardScaler
	if err := decode(ScalerSchema, raw, &s); err != nil {
		return nil, &LoadError{Artifact: ArtifactScaler, Err: err}
	}
	if err := checkVersion(s.FormatVersion); err != nil {
		return nil, &LoadError{Artifact: ArtifactScaler, Err: err}
	}
	if err := s.check(); err != nil {
		return nil, &LoadError{Artifact: ArtifactScaler, Err: err}
	}
	return &s, nil
}

// ParseClassifier decodes a classifier artifact document.
func ParseClassifier(raw []byte) (*LinearClassifier, error) {
	var c LinearClassifier
	if err := decode(ClassifierSchema, raw, &c); err != nil {
		return nil, &LoadError{Artifact: ArtifactClassifier, Err: err}
	}
	if err := checkVersion(c.FormatVersion); err != nil {
		return nil, &LoadError{Artifact: ArtifactClassifier, Err: err}
	}
	if err := c.check(); err != nil {
		return nil, &LoadError{Artifact: ArtifactClassifier, Err: err}
	}
	return &c, nil
}

func decode(schema *Schema, raw []byte, v any) error {
	if err := validateDocument(schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
