package main

import (
	"fmt"
	"os"
)

// threadEnvVars limit native numeric libraries, when linked in, to one
// thread each so parallel sheet workers do not oversubscribe the CPUs.
var threadEnvVars = []string{
	"OMP_NUM_THREADS",
	"OPENBLAS_NUM_THREADS",
	"MKL_NUM_THREADS",
	"NUMEXPR_NUM_THREADS",
}

// configureThreadEnv sets every unset thread variable to 1. Values already
// present in the environment are kept.
func configureThreadEnv() error {
	for _, name := range threadEnvVars {
		if _, ok := os.LookupEnv(name); ok {
			continue
		}
		if err := os.Setenv(name, "1"); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}
