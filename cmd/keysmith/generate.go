package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vaultpass/keysmith/internal/crypto"
	"github.com/vaultpass/keysmith/internal/strength"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	defaults := crypto.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Long: `Generate a random password containing at least one character from every
enabled class. Defaults can be set in the config file under "generate" or via
KEYSMITH_GENERATE_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := crypto.GeneratorOptions{
				Length:    v.GetInt("generate.length"),
				Uppercase: v.GetBool("generate.upper"),
				Lowercase: v.GetBool("generate.lower"),
				Numbers:   v.GetBool("generate.numbers"),
				Symbols:   v.GetBool("generate.symbols"),
			}

			count := v.GetInt("generate.count")
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			for range count {
				password, err := crypto.Generate(opts)
				if err != nil {
					return err
				}
				result := strength.Score(password)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d/%d %s\n", password, result.Score, strength.MaxScore, result.Label())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntP("length", "l", defaults.Length, fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	flags.Bool("upper", defaults.Uppercase, "include uppercase letters")
	flags.Bool("lower", defaults.Lowercase, "include lowercase letters")
	flags.Bool("numbers", defaults.Numbers, "include digits")
	flags.Bool("symbols", defaults.Symbols, "include punctuation")
	flags.IntP("count", "n", 1, "number of passwords to generate")

	for _, name := range []string{"length", "upper", "lower", "numbers", "symbols", "count"} {
		_ = v.BindPFlag("generate."+name, flags.Lookup(name))
	}
	return cmd
}
