package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/llamaup/llamaup/internal/pricing"
)

var fetchPrices = pricing.FetchOrDefault

// Cost handles the cost command: estimate the monthly price of the
// configured server. Live prices are used when HCLOUD_TOKEN is set,
// otherwise the estimate falls back to built-in defaults.
func Cost(ctx context.Context, configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	token := os.Getenv("HCLOUD_TOKEN")
	prices := fetchPrices(ctx, token, cfg.Location)

	estimate := pricing.NewCalculatorWithPrices(prices).Calculate(cfg)
	formatter := pricing.NewFormatter()

	if jsonOutput {
		fmt.Println(formatter.FormatJSON(estimate))
		return nil
	}

	fmt.Print(formatter.Format(estimate))
	return nil
}
