package catalog_test

import (
	"testing"

	"asset-cache/core/batch"
	"asset-cache/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_BatchPolicy(t *testing.T) {
	p, err := catalog.Config{Policy: "sequential"}.BatchPolicy()
	require.NoError(t, err)
	assert.Equal(t, batch.Sequential, p)

	_, err = catalog.Config{Policy: "parallel"}.BatchPolicy()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     catalog.Config
		wantErr bool
	}{
		{"Concurrent", catalog.Config{Policy: "concurrent", Concurrency: 4}, false},
		{"Sequential", catalog.Config{Policy: "sequential"}, false},
		{"UnknownPolicy", catalog.Config{Policy: "parallel"}, true},
		{"NegativeConcurrency", catalog.Config{Policy: "concurrent", Concurrency: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
