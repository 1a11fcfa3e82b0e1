package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timetable-server/config"
	"timetable-server/di"
)

var rootCmd = &cobra.Command{
	Use:   "timetable-server",
	Short: "Fetch student group timetables and render them by week",
	Long: `timetable-server fetches the lesson list of a student group from the university
portal, groups it into days and Monday-based weeks, and renders it as HTML,
JSON or an .ics calendar, either once from the command line or over HTTP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newContainer() (*di.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return di.NewContainer(cfg)
}

// resolveGroup picks the group from flags, falling back to the first configured group.
func resolveGroup(c *di.Container, groupID, name string) (string, string) {
	if groupID == "" {
		groupID = c.Config.Groups[0].ID
	}
	if name == "" {
		name = c.Config.GroupName(groupID)
	}
	return groupID, name
}
