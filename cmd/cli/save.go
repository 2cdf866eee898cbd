package main

import (
	"fmt"

	"github.com/limaJavier/sectionplanner/internal/config"
	"github.com/limaJavier/sectionplanner/internal/store"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [section ids...]",
	Short: "Generates the combinations of the selection and stores one of them as a named schedule",
	Long: `The combination is picked by its position in the generated list (--index) or,
when tokens are deterministic, by its token (--token).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSave,
}

func init() {
	addSelectionFlags(saveCmd)
	saveCmd.Flags().Uint64("user", 0, "Owner of the schedule")
	saveCmd.Flags().String("name", "", "Schedule name")
	saveCmd.Flags().String("description", "", "Schedule description")
	saveCmd.Flags().Bool("favorite", false, "Marks the schedule as favorite")
	saveCmd.Flags().Uint64("index", 1, "1-based position of the combination to store")
	saveCmd.Flags().String("token", "", "Token of the combination to store (deterministic tokens only)")
	saveCmd.MarkFlagRequired("user")
	saveCmd.MarkFlagRequired("name")
}

func runSave(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	if token != "" && cfg.Generator.Tokens != config.DeterministicTokens {
		return fmt.Errorf("--token requires deterministic tokens, random ones change on every run")
	}

	plan, err := generatePlan(cmd, args)
	if err != nil {
		return err
	}
	position, _ := cmd.Flags().GetUint64("index")
	combination, err := pickCombination(plan, position, token)
	if err != nil {
		return err
	}

	userId, _ := cmd.Flags().GetUint64("user")
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	favorite, _ := cmd.Flags().GetBool("favorite")

	repository, err := openRepository()
	if err != nil {
		return err
	}
	defer repository.Close()

	schedule, err := repository.SaveSchedule(contextOf(cmd), store.SaveRequest{
		UserId:      userId,
		Name:        name,
		Description: description,
		IsFavorite:  favorite,
		Combination: model.NewCombinationView(combination),
	})
	if err != nil {
		return err
	}

	log.Info().Uint64("schedule", schedule.ID).Str("combination", schedule.CombinationKey).Msg("schedule saved")
	fmt.Fprintln(cmd.OutOrStdout(), schedule.ShareToken)
	return nil
}
