// Package pricing estimates the monthly cost of a llamaup server.
package pricing

import (
	"fmt"

	"github.com/llamaup/llamaup/internal/config"
)

// VATRate is the German VAT rate (19%).
const VATRate = 0.19

// Calculator calculates instance costs based on Hetzner pricing.
type Calculator struct {
	prices *Prices
}

// Prices contains Hetzner pricing data (net EUR per month).
type Prices struct {
	// Servers maps server type to monthly price.
	Servers map[string]float64

	// PrimaryIPv4 is the monthly cost for a primary IPv4 address.
	PrimaryIPv4 float64
}

// Estimate contains the calculated cost estimate.
type Estimate struct {
	// Items is the list of line items.
	Items []LineItem

	// Subtotal is the sum of all items (before VAT).
	Subtotal float64

	// VAT is the VAT amount (19% for Germany).
	VAT float64

	// Total is the total including VAT.
	Total float64

	// Config metadata
	InstanceName string
	ServerType   string
	Location     string
	Model        string

	// Unknown is set when the server type had no known price. The
	// estimate then only covers the primary IP.
	Unknown bool
}

// LineItem represents a single cost line item.
type LineItem struct {
	Description string  `json:"description"`
	UnitType    string  `json:"unit_type"`
	Monthly     float64 `json:"monthly"`
}

// String returns a formatted string representation of the line item.
func (l LineItem) String() string {
	return fmt.Sprintf("%s (%s): €%.2f/mo", l.Description, l.UnitType, l.Monthly)
}

// AnnualCost returns the estimated annual cost.
func (e *Estimate) AnnualCost() float64 {
	return e.Total * 12
}

// HourlyCost approximates the per-hour cost from the monthly total.
func (e *Estimate) HourlyCost() float64 {
	return e.Total / 730
}

// NewCalculator creates a new calculator with default pricing.
// Note: In production, use NewCalculatorWithPrices with live Hetzner pricing.
func NewCalculator() *Calculator {
	return &Calculator{
		prices: DefaultPrices(),
	}
}

// NewCalculatorWithPrices creates a new calculator with specific pricing.
func NewCalculatorWithPrices(prices *Prices) *Calculator {
	return &Calculator{
		prices: prices,
	}
}

// Calculate calculates the cost estimate for an instance configuration.
func (c *Calculator) Calculate(cfg *config.Config) *Estimate {
	estimate := &Estimate{
		InstanceName: cfg.Name,
		ServerType:   cfg.ServerType,
		Location:     cfg.Location,
		Model:        cfg.Model,
		Items:        make([]LineItem, 0, 2),
	}

	serverPrice, known := c.prices.Servers[cfg.ServerType]
	estimate.Unknown = !known

	estimate.Items = append(estimate.Items, LineItem{
		Description: "GPU server",
		UnitType:    cfg.ServerType,
		Monthly:     serverPrice,
	})

	estimate.Items = append(estimate.Items, LineItem{
		Description: "Primary IPv4",
		UnitType:    "ipv4",
		Monthly:     c.prices.PrimaryIPv4,
	})

	estimate.Subtotal = serverPrice + c.prices.PrimaryIPv4
	estimate.VAT = estimate.Subtotal * VATRate
	estimate.Total = estimate.Subtotal + estimate.VAT

	return estimate
}

// DefaultPrices returns hardcoded Hetzner GPU pricing (as of mid 2025).
// These are net prices in EUR before VAT and drift over time; prefer
// live prices from FetchOrDefault when a token is available.
func DefaultPrices() *Prices {
	return &Prices{
		Servers: map[string]float64{
			// GEX series - dedicated GPU
			"gex44":  169.00,
			"gex130": 774.79,
		},
		PrimaryIPv4: 0.50,
	}
}
