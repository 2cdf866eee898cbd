package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/limaJavier/sectionplanner/internal/export"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [section ids...]",
	Short: "Prints every conflict-free combination of the selected sections as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

var exportCmd = &cobra.Command{
	Use:   "export [section ids...]",
	Short: "Writes every conflict-free combination of the selected sections into an xlsx workbook",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

func init() {
	addSelectionFlags(generateCmd)
	generateCmd.Flags().String("out", "", "File where the JSON will be written; the standard output is used when empty")

	addSelectionFlags(exportCmd)
	exportCmd.Flags().String("out", "combinations.xlsx", "Workbook path")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	plan, err := generatePlan(cmd, args)
	if err != nil {
		return err
	}

	responseJson, err := json.MarshalIndent(plan.Response(), "", "  ")
	if err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}

	outFile, _ := cmd.Flags().GetString("out")
	if outFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(responseJson))
		return nil
	}
	if err := os.WriteFile(outFile, responseJson, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	plan, err := generatePlan(cmd, args)
	if err != nil {
		return err
	}

	outFile, _ := cmd.Flags().GetString("out")
	if err := export.WriteFile(plan.Response(), outFile); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}

	log.Info().Str("file", outFile).Int("combinations", len(plan.Combinations)).Msg("workbook written")
	return nil
}
