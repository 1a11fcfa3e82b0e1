package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"timetable-server/models"
	"timetable-server/util"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fetch a group timetable once and render it as HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, _ := cmd.Flags().GetString("group")
		name, _ := cmd.Flags().GetString("name")
		output, _ := cmd.Flags().GetString("output")
		dumpPath, _ := cmd.Flags().GetString("dump")
		chartPath, _ := cmd.Flags().GetString("chart")

		container, err := newContainer()
		if err != nil {
			return err
		}
		groupID, name = resolveGroup(container, groupID, name)

		t, err := container.TimetableService.BuildTimetable(context.Background(), models.Group{ID: groupID, Name: name})
		if err != nil {
			return err
		}

		if dumpPath != "" {
			if err := util.WriteTimetableDump(dumpPath, t); err != nil {
				return err
			}
		}

		if chartPath != "" {
			if err := writeFile(chartPath, func(w io.Writer) error { return util.PlotLessonLoad(w, t) }); err != nil {
				return err
			}
		}

		render := func(w io.Writer) error { return container.Renderer.Render(w, t.GroupName, t.Weeks) }
		if output == "" || output == "-" {
			return render(cmd.OutOrStdout())
		}
		if err := writeFile(output, render); err != nil {
			return err
		}
		util.PrintTimetablePartially(t)
		return nil
	},
}

func writeFile(path string, write func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	return write(file)
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("group", "g", "", "Portal group ID (defaults to the first configured group)")
	renderCmd.Flags().StringP("name", "n", "", "Group name shown in the page (defaults to the configured name)")
	renderCmd.Flags().StringP("output", "o", "-", "Output HTML file, - for stdout")
	renderCmd.Flags().String("dump", "", "Also write the grouped weeks as JSON to this file")
	renderCmd.Flags().String("chart", "", "Also write the lessons-per-day chart to this HTML file")
}
