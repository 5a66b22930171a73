package pricing

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formatter formats cost estimates for display.
type Formatter struct{}

// NewFormatter creates a new formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format returns a detailed, formatted cost estimate for terminal display.
func (f *Formatter) Format(e *Estimate) string {
	var sb strings.Builder

	width := 57

	sb.WriteString(boxTop(width))
	sb.WriteString(boxLine("llamaup Cost Estimate", width))
	sb.WriteString(boxLine(fmt.Sprintf("Server: %s", e.InstanceName), width))
	sb.WriteString(boxSep(width))

	sb.WriteString(boxLine(fmt.Sprintf("Type: %s", strings.ToUpper(e.ServerType)), width))
	sb.WriteString(boxLine(fmt.Sprintf("Location: %s", e.Location), width))
	if e.Model != "" {
		sb.WriteString(boxLine(fmt.Sprintf("Model: %s", e.Model), width))
	}
	sb.WriteString(boxSep(width))

	sb.WriteString(boxEmpty(width))
	for _, item := range e.Items {
		line := fmt.Sprintf("%-16s %-8s %10.2f/mo",
			item.Description, strings.ToUpper(item.UnitType), item.Monthly)
		sb.WriteString(boxLine(line, width))
	}

	sb.WriteString(boxDash(width))
	sb.WriteString(boxLine(fmt.Sprintf("%-26s %10.2f/mo", "Subtotal", e.Subtotal), width))
	sb.WriteString(boxLine(fmt.Sprintf("%-26s %10.2f/mo", "VAT (19% DE)", e.VAT), width))
	sb.WriteString(boxDash(width))
	sb.WriteString(boxLine(fmt.Sprintf("%-26s %10.2f/mo", "Total", e.Total), width))
	sb.WriteString(boxEmpty(width))
	sb.WriteString(boxLine(fmt.Sprintf("Annual estimate: %.2f", e.AnnualCost()), width))
	sb.WriteString(boxLine(fmt.Sprintf("Approx. hourly:  %.2f", e.HourlyCost()), width))
	sb.WriteString(boxEmpty(width))
	sb.WriteString(boxBottom(width))

	sb.WriteString("\n  Prices from Hetzner API (EUR)\n")

	if e.Unknown {
		sb.WriteString(fmt.Sprintf("\n  Warning: no known price for server type %q;\n  estimate covers the primary IP only.\n", e.ServerType))
	}

	return sb.String()
}

// FormatCompact returns a single-line cost summary.
func (f *Formatter) FormatCompact(e *Estimate) string {
	return fmt.Sprintf("%s (%s): %.2f/mo (%.2f/yr incl. VAT)",
		e.InstanceName, e.ServerType, e.Total, e.AnnualCost())
}

// FormatJSON returns the estimate as JSON.
func (f *Formatter) FormatJSON(e *Estimate) string {
	type jsonEstimate struct {
		InstanceName string     `json:"instance_name"`
		ServerType   string     `json:"server_type"`
		Location     string     `json:"location"`
		Model        string     `json:"model,omitempty"`
		Items        []LineItem `json:"items"`
		Subtotal     float64    `json:"subtotal"`
		VAT          float64    `json:"vat"`
		Total        float64    `json:"total"`
		Annual       float64    `json:"annual"`
	}

	je := jsonEstimate{
		InstanceName: e.InstanceName,
		ServerType:   e.ServerType,
		Location:     e.Location,
		Model:        e.Model,
		Items:        e.Items,
		Subtotal:     e.Subtotal,
		VAT:          e.VAT,
		Total:        e.Total,
		Annual:       e.AnnualCost(),
	}

	data, _ := json.MarshalIndent(je, "", "  ")
	return string(data)
}

// Helper functions for box drawing

func boxTop(width int) string {
	return fmt.Sprintf("┌%s┐\n", strings.Repeat("─", width-2))
}

func boxBottom(width int) string {
	return fmt.Sprintf("└%s┘\n", strings.Repeat("─", width-2))
}

func boxSep(width int) string {
	return fmt.Sprintf("├%s┤\n", strings.Repeat("─", width-2))
}

func boxDash(width int) string {
	return fmt.Sprintf("│ %s │\n", strings.Repeat("─", width-4))
}

func boxLine(text string, width int) string {
	padding := width - 4 - len(text)
	if padding < 0 {
		padding = 0
		text = text[:width-4]
	}
	return fmt.Sprintf("│ %s%s │\n", text, strings.Repeat(" ", padding))
}

func boxEmpty(width int) string {
	return fmt.Sprintf("│%s│\n", strings.Repeat(" ", width-2))
}
