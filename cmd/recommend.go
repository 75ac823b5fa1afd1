package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"mspro-labs/vitrin/internal/cards"
	"mspro-labs/vitrin/internal/config"
	"mspro-labs/vitrin/internal/recommender"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [wish]",
	Short: "Ask the recommendation service from the terminal",
	Long: `Sends a free-text product wish to the recommendation service and prints
the returned cards.
Examples:
  vitrin recommend "kablosuz kulaklık"
  vitrin recommend "5000 TL altı oyuncu laptopu"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleRecommend(args)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}

func handleRecommend(args []string) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		log.Fatal("Usage: vitrin recommend \"your wish\"")
	}

	// 1. Setup
	appCfg, err := config.GetAppConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	uiCfg, err := config.LoadUIConfig(appCfg.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load UI config: %v", err)
	}

	// 2. One request, one answer
	client := recommender.New(uiCfg.RecommenderURL, uiCfg.RequestTimeout())
	rec, err := client.Recommend(context.Background(), query)
	if err != nil {
		log.Fatalf("Recommendation failed: %v", err)
	}

	// 3. Print cards
	projector := cards.NewProjector(uiCfg.Locale, uiCfg.PlaceholderImage)
	views := projector.Project(rec.Cards)

	fmt.Printf("\n🔍 Results for: \"%s\"\n\n", query)
	if rec.Summary != "" {
		fmt.Printf("%s\n\n", rec.Summary)
	}
	if len(views) == 0 {
		fmt.Println("No products found.")
		return
	}
	for i, v := range views {
		fmt.Printf("#%d %s — %s (%.1f★, %d reviews)\n", i+1, v.Title, v.Price, v.Rating, v.RatingCount)
		if v.Description != "" {
			fmt.Printf("   %s\n", truncate(v.Description, 150))
		}
		if v.Link != "" {
			fmt.Printf("   %s\n", v.Link)
		}
		fmt.Println()
	}
}

// truncate cuts on a rune boundary; descriptions are Turkish, so a byte
// slice could split a multi-byte character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
