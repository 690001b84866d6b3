package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeatures = 14

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoad_Valid(t *testing.T) {
	b, err := Load(testdata("scaler.json"), testdata("classifier.json"), testFeatures)
	require.NoError(t, err)
	assert.Equal(t, testFeatures, b.Scaler.NFeatures)
	assert.Equal(t, KindLogisticRegression, b.Classifier.Kind)
	assert.Len(t, b.Scaler.FeatureNames, testFeatures)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testdata("nope.json"), testdata("classifier.json"), testFeatures)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ArtifactScaler, le.Artifact)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Corrupt(t *testing.T) {
	_, err := Load(testdata("corrupt.json"), testdata("classifier.json"), testFeatures)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, testdata("corrupt.json"), le.Path)
}

func TestLoad_UnsupportedMajor(t *testing.T) {
	_, err := Load(testdata("scaler.json"), testdata("classifier_v2.json"), testFeatures)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ArtifactClassifier, le.Artifact)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestLoad_FeatureCountMismatch(t *testing.T) {
	_, err := Load(testdata("scaler.json"), testdata("classifier.json"), 12)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ArtifactScaler, le.Artifact)
}

func TestParseScaler_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"wrong kind", `{"format_version":"1.0.0","kind":"minmax","n_features":1,"mean":[0],"scale":[1]}`},
		{"missing scale", `{"format_version":"1.0.0","kind":"standard_scaler","n_features":1,"mean":[0]}`},
		{"string in mean", `{"format_version":"1.0.0","kind":"standard_scaler","n_features":1,"mean":["a"],"scale":[1]}`},
		{"extra field", `{"format_version":"1.0.0","kind":"standard_scaler","n_features":1,"mean":[0],"scale":[1],"with_std":true}`},
		{"bad version", `{"format_version":"one","kind":"standard_scaler","n_features":1,"mean":[0],"scale":[1]}`},
		{"length mismatch", `{"format_version":"1.0.0","kind":"standard_scaler","n_features":2,"mean":[0],"scale":[1]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScaler([]byte(tt.doc))
			var le *LoadError
			require.True(t, errors.As(err, &le), "got %v", err)
			assert.Equal(t, ArtifactScaler, le.Artifact)
		})
	}
}

func TestParseClassifier_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", `{"format_version":"1.0.0","kind":"random_forest","n_features":1,"coef":[1],"intercept":0}`},
		{"missing intercept", `{"format_version":"1.0.0","kind":"linear_svc","n_features":1,"coef":[1]}`},
		{"coef mismatch", `{"format_version":"1.0.0","kind":"linear_svc","n_features":3,"coef":[1],"intercept":0}`},
		{"not json", `pickle`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClassifier([]byte(tt.doc))
			var le *LoadError
			require.True(t, errors.As(err, &le), "got %v", err)
			assert.Equal(t, ArtifactClassifier, le.Artifact)
		})
	}
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, checkVersion("1.0.0"))
	assert.NoError(t, checkVersion("1.9.3"))
	assert.ErrorIs(t, checkVersion("0.9.0"), ErrUnsupportedVersion)
	assert.ErrorIs(t, checkVersion("2.0.0"), ErrUnsupportedVersion)
	assert.ErrorIs(t, checkVersion(""), ErrUnsupportedVersion)
}
