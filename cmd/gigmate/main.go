// Package main provides the entry point for the GigMate marketplace CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/api"
	"github.com/danialhaz/gigmate/internal/config"
	"github.com/danialhaz/gigmate/internal/output"
)

var rootCmd = &cobra.Command{
	Use:   "gigmate",
	Short: "GigMate marketplace client",
	Long:  "GigMate searches candidates and gigs on the GigMate marketplace, manages applications, chat, wallet and profile from the terminal.",
}

var (
	rootConfigPath string
	rootBaseURL    string
	rootToken      string
	rootColorMode  string
	rootDemoMode   bool
	rootStrict     bool
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootBaseURL, "base-url", "", "Marketplace API base URL")
	rootCmd.PersistentFlags().StringVar(&rootToken, "token", "", "Bearer token (overrides "+config.EnvToken+")")
	rootCmd.PersistentFlags().StringVar(&rootColorMode, "color", "auto", "Color output: auto, always, or never")
	rootCmd.PersistentFlags().BoolVar(&rootDemoMode, "demo", false, "Serve canned fixture data instead of calling the API")
	rootCmd.PersistentFlags().BoolVar(&rootStrict, "strict-schemas", false, "Reject responses that fail schema validation")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// builtinDefaults are the last link of the settings chain: flags win over
// environment, environment over config file, config file over these.
func builtinDefaults() config.Config {
	return config.Config{
		BaseURL:        "https://api.gigmate.my",
		PageSize:       20,
		TimeoutSeconds: 20,
		Currency:       "MYR",
	}
}

// loadSettings resolves the effective configuration from flags, environment,
// and the optional config file.
func loadSettings() (config.Config, error) {
	flagCfg := config.Config{
		BaseURL:       rootBaseURL,
		Token:         rootToken,
		DemoMode:      rootDemoMode,
		StrictSchemas: rootStrict,
		Verbose:       rootVerbose,
	}

	merged := flagCfg.MergeWithDefaults(config.FromEnv())

	if rootConfigPath != "" {
		fileCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
		merged.DemoMode = merged.DemoMode || fileCfg.DemoMode
		merged.StrictSchemas = merged.StrictSchemas || fileCfg.StrictSchemas
		merged.Verbose = merged.Verbose || fileCfg.Verbose
	}
	merged.DemoMode = merged.DemoMode || config.FromEnv().DemoMode

	merged = merged.MergeWithDefaults(builtinDefaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newPrinter builds the terminal printer from the --color flag.
func newPrinter() (*output.Printer, error) {
	mode, err := output.ParseColorMode(rootColorMode)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(output.ResolveColors(mode)), nil
}

// newClient builds the live API client from the resolved settings.
func newClient(cfg config.Config) (*api.Client, error) {
	return api.NewClient(api.Options{
		BaseURL:           cfg.BaseURL,
		Token:             cfg.Token,
		Timeout:           time.Duration(cfg.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.RequestsPerSecond,
		StrictSchemas:     cfg.StrictSchemas,
	})
}
