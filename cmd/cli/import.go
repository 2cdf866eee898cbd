package main

import (
	"fmt"

	"github.com/limaJavier/sectionplanner/pkg/catalog"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [catalog file]",
	Short: "Loads a catalog JSON file into the configured database",
	Long: `Courses and sections are upserted by id. The sessions of every imported
section replace the ones stored before.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	catalogue, err := catalog.FromJson(args[0])
	if err != nil {
		return err
	}

	repository, err := openRepository()
	if err != nil {
		return err
	}
	defer repository.Close()

	summary, err := repository.Import(contextOf(cmd), catalogue)
	if err != nil {
		return fmt.Errorf("cannot import catalog: %w", err)
	}

	log.Info().
		Int("courses", summary.Courses).
		Int("sections", summary.Sections).
		Int("sessions", summary.Sessions).
		Msg("catalog imported")
	return nil
}
