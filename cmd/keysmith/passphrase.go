package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vaultpass/keysmith/internal/crypto"
	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/service"
	"github.com/vaultpass/keysmith/internal/wordlist"
)

func newPassphraseCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate a passphrase from a wordlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := v.GetString("wordlist")
			slog.Debug("loading wordlist", "path", path)

			words := v.GetInt("passphrase.words")
			if words < 1 {
				return crypto.ErrWordCount
			}

			svc := service.NewGeneratorService(wordlist.FileSource{Path: path})
			resp, err := svc.Passphrase(model.PassphraseRequest{Words: words})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Passphrase)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntP("words", "w", crypto.DefaultWords, fmt.Sprintf("number of words (1-%d)", crypto.MaxWords))
	flags.String("wordlist", "wordlist.txt", "newline-delimited word file")

	_ = v.BindPFlag("passphrase.words", flags.Lookup("words"))
	_ = v.BindPFlag("wordlist", flags.Lookup("wordlist"))
	return cmd
}
