package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// envBindings maps flag names to the environment variables that supply their
// value when the flag is not given on the command line.
var envBindings = map[string]string{
	"catalog":    "ASSETPATH_CATALOG",
	"base-url":   "ASSETPATH_BASE_URL",
	"log-level":  "ASSETPATH_LOG_LEVEL",
	"log-format": "ASSETPATH_LOG_FORMAT",
	"addr":       "ASSETPATH_ADDR",
}

// bindEnv copies environment values into flags the user did not set.
func bindEnv(flags *pflag.FlagSet) error {
	for name, env := range envBindings {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		value, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}
