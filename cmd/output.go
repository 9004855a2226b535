package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeRendered(cmd *cobra.Command, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeRemoved(cmd *cobra.Command, noun string, id string, result application.RemoveResult) error {
	if result.AlreadyGone {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s was already deleted\n", noun, id)
		return err
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", noun, id)
	return err
}
