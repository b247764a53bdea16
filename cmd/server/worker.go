package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crawlhq/crawl-api/internal/config"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the tick worker",
	Long:  `Start only the background tick worker, for deployments that scale it separately from the API.`,
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer svcs.Close()

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	svcs.tickWorker.Run(ctx)
	return nil
}
