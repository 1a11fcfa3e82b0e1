package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve timetables over HTTP and refresh them periodically",
	RunE: func(cmd *cobra.Command, args []string) error {
		refreshOnStart, _ := cmd.Flags().GetBool("refresh-on-start")

		container, err := newContainer()
		if err != nil {
			return err
		}

		if refreshOnStart {
			log.Println("[Serve] Refreshing timetables before start")
			if err := container.TimetableRefresherService.RefreshAll(context.Background()); err != nil {
				log.Printf("[Serve] Initial refresh finished with errors: %v", err)
			}
		}

		if err := container.TimetableRefresherService.Start(container.Config.RefreshSchedule); err != nil {
			return err
		}
		defer container.TimetableRefresherService.Stop()

		return container.TimetableHttpServer.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("refresh-on-start", true, "Build every configured timetable before serving")
}
