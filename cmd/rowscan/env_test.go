package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureThreadEnv(t *testing.T) {
	for _, name := range threadEnvVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	t.Setenv("MKL_NUM_THREADS", "4")

	require.NoError(t, configureThreadEnv())

	assert.Equal(t, "1", os.Getenv("OMP_NUM_THREADS"))
	assert.Equal(t, "1", os.Getenv("OPENBLAS_NUM_THREADS"))
	assert.Equal(t, "4", os.Getenv("MKL_NUM_THREADS"))
	assert.Equal(t, "1", os.Getenv("NUMEXPR_NUM_THREADS"))
}
