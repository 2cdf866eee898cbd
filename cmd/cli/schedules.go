package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/limaJavier/sectionplanner/internal/store"
	"github.com/spf13/cobra"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Manages saved schedules",
}

var listSchedulesCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the schedules of a user, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runListSchedules,
}

var showScheduleCmd = &cobra.Command{
	Use:   "show [share token]",
	Short: "Shows a schedule given its share token",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowSchedule,
}

var deleteScheduleCmd = &cobra.Command{
	Use:   "delete [schedule id]",
	Short: "Deletes a schedule of a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteSchedule,
}

func init() {
	listSchedulesCmd.Flags().Uint64("user", 0, "Owner of the schedules")
	listSchedulesCmd.MarkFlagRequired("user")
	deleteScheduleCmd.Flags().Uint64("user", 0, "Owner of the schedule")
	deleteScheduleCmd.MarkFlagRequired("user")

	schedulesCmd.AddCommand(listSchedulesCmd)
	schedulesCmd.AddCommand(showScheduleCmd)
	schedulesCmd.AddCommand(deleteScheduleCmd)
}

func runListSchedules(cmd *cobra.Command, args []string) error {
	repository, err := openRepository()
	if err != nil {
		return err
	}
	defer repository.Close()

	userId, _ := cmd.Flags().GetUint64("user")
	schedules, err := repository.ListSchedules(contextOf(cmd), userId)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCOMBINATION\tCREDITS\tFAVORITE\tSHARE TOKEN")
	for _, schedule := range schedules {
		printSchedule(writer, schedule)
	}
	return writer.Flush()
}

func runShowSchedule(cmd *cobra.Command, args []string) error {
	repository, err := openRepository()
	if err != nil {
		return err
	}
	defer repository.Close()

	schedule, err := repository.FindByShareToken(contextOf(cmd), args[0])
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	printSchedule(writer, schedule)
	fmt.Fprintln(writer, "\nCOURSE\tSECTION\tSESSION")
	for _, session := range schedule.Sessions {
		fmt.Fprintf(writer, "%v\t%v\t%v\n", session.CourseCode, session.SectionID, session.SessionID)
	}
	return writer.Flush()
}

func runDeleteSchedule(cmd *cobra.Command, args []string) error {
	scheduleId, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid schedule id \"%v\"", args[0])
	}

	repository, err := openRepository()
	if err != nil {
		return err
	}
	defer repository.Close()

	userId, _ := cmd.Flags().GetUint64("user")
	if err := repository.DeleteSchedule(contextOf(cmd), userId, scheduleId); err != nil {
		return err
	}

	log.Info().Uint64("schedule", scheduleId).Msg("schedule deleted")
	return nil
}

func printSchedule(writer *tabwriter.Writer, schedule store.Schedule) {
	fmt.Fprintf(writer, "%v\t%v\t%v\t%v\t%v\t%v\n",
		schedule.ID, schedule.Name, schedule.CombinationKey, schedule.TotalCredits, schedule.IsFavorite, schedule.ShareToken)
}
