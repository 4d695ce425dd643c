package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/service"
)

func newCheckCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Score a password and suggest improvements",
		Long: `Score a password from 0 to 6 and estimate its entropy.
When no argument is given the password is read from the first line of stdin,
which keeps it out of shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				password = line
			}

			report, err := service.NewStrengthService().Analyze(model.AnalyzeRequest{Password: password})
			if err != nil {
				return err
			}
			slog.Debug("password analysed", "score", report.Score, "zxcvbn_score", report.Advice.Score)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	return cmd
}

// readLine returns the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printReport(w io.Writer, r model.AnalysisResponse) {
	fmt.Fprintf(w, "Score:    %d/%d (%s)\n", r.Score, r.MaxScore, r.Label)
	if r.Entropy != nil {
		fmt.Fprintf(w, "Entropy:  %.2f (%s)\n", r.Entropy.Value, r.Entropy.Description)
	} else {
		fmt.Fprintln(w, "Entropy:  n/a")
	}
	fmt.Fprintf(w, "zxcvbn:   %d/4, cracked in %s\n", r.Advice.Score, r.Advice.CrackTime)
	for _, hint := range r.Feedback {
		fmt.Fprintf(w, "  - %s\n", hint)
	}
}
