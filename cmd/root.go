package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vitrin",
	Short: "Web frontend for the product recommendation service",
	Long: `Vitrin collects a free-text product wish, forwards it to the external
recommendation service and renders the returned product cards. All the
heavy lifting (search, ranking, descriptions) happens in that service;
vitrin is only the shop window.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	// Load .env file (optional, for local development)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
