// Package main is the entry point for the crawl API server
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crawl-api",
	Short: "Crawl API Server",
	Long:  `Crawl API resolves asynchronous dungeon crawls: parties submit free-text commands and the server resolves them in shared ticks.`,
}

func main() {
	// Missing .env is fine; real deployments configure the environment
	// directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
