package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"timetable-server/exporter"
	"timetable-server/models"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a group timetable to an ICS file",
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, _ := cmd.Flags().GetString("group")
		output, _ := cmd.Flags().GetString("output")

		container, err := newContainer()
		if err != nil {
			return err
		}
		groupID, name := resolveGroup(container, groupID, "")

		t, err := container.TimetableService.BuildTimetable(context.Background(), models.Group{ID: groupID, Name: name})
		if err != nil {
			return fmt.Errorf("failed to build timetable: %w", err)
		}

		if err := writeFile(output, func(w io.Writer) error { return exporter.GenerateICS(t, w) }); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d weeks for group %s to %s\n", len(t.Weeks), name, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("group", "g", "", "Portal group ID (defaults to the first configured group)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
