package cmd

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"mspro-labs/vitrin/internal/config"
	"mspro-labs/vitrin/internal/recommender"
	"mspro-labs/vitrin/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Web UI server",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() {
	// 1. Setup
	appCfg, err := config.GetAppConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	uiCfg, err := config.LoadUIConfig(appCfg.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load UI config: %v", err)
	}

	// 2. Wire the recommendation client and the handlers
	client := recommender.New(uiCfg.RecommenderURL, uiCfg.RequestTimeout())
	srv, err := web.NewServer(uiCfg, client)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}

	// 3. Start Server
	log.Printf("🌐 Web UI started at http://localhost%s (service: %s)", appCfg.Addr, uiCfg.RecommenderURL)
	server := &http.Server{
		Addr:        appCfg.Addr,
		Handler:     srv.Handler(),
		ReadTimeout: 5 * time.Second,
		// No WriteTimeout: the recommendation call can take as long as the
		// service needs (LLM descriptions are slow) and is itself unbounded
		// unless request_timeout_seconds says otherwise.
	}
	log.Fatal(server.ListenAndServe())
}
