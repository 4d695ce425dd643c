package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "KEYSMITH"

// newRootCmd builds the command tree. Each call gets its own viper instance
// so flag and env bindings never leak between invocations.
func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "keysmith",
		Short: "Score, generate and inspect passwords",
		Long: `keysmith evaluates password strength with a rule-based scorer and a
heuristic entropy estimate, and generates random passwords and passphrases
from a cryptographically secure source.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), verbose)
			return initConfig(v, cfgFile)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.keysmith.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newCheckCmd(),
		newGenerateCmd(v),
		newPassphraseCmd(v),
	)
	return rootCmd
}

// initConfig loads configuration from the config file and environment.
// A missing default config file is not an error; a missing explicit one is.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Debug("no home directory, skipping config file", "error", err)
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".keysmith")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	slog.Debug("using config file", "file", v.ConfigFileUsed())
	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
