package pricing

import (
	"math"
	"testing"

	"github.com/llamaup/llamaup/internal/config"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestCalculateKnownServerType(t *testing.T) {
	calc := NewCalculatorWithPrices(&Prices{
		Servers:     map[string]float64{"gex44": 100.0},
		PrimaryIPv4: 0.50,
	})

	cfg := &config.Config{
		Name:       "gpu-box",
		ServerType: "gex44",
		Location:   "fsn1",
		Model:      "llama3.1:8b",
	}

	e := calc.Calculate(cfg)

	if e.Unknown {
		t.Error("expected known server type")
	}
	if len(e.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(e.Items))
	}
	if !approxEqual(e.Subtotal, 100.50) {
		t.Errorf("subtotal = %.4f, want 100.50", e.Subtotal)
	}
	if !approxEqual(e.VAT, 100.50*VATRate) {
		t.Errorf("vat = %.4f, want %.4f", e.VAT, 100.50*VATRate)
	}
	if !approxEqual(e.Total, 100.50*1.19) {
		t.Errorf("total = %.4f, want %.4f", e.Total, 100.50*1.19)
	}
	if !approxEqual(e.AnnualCost(), e.Total*12) {
		t.Errorf("annual = %.4f, want %.4f", e.AnnualCost(), e.Total*12)
	}
	if e.InstanceName != "gpu-box" || e.ServerType != "gex44" || e.Location != "fsn1" {
		t.Errorf("metadata not carried: %+v", e)
	}
}

func TestCalculateUnknownServerType(t *testing.T) {
	calc := NewCalculatorWithPrices(&Prices{
		Servers:     map[string]float64{},
		PrimaryIPv4: 0.50,
	})

	e := calc.Calculate(&config.Config{Name: "x", ServerType: "gex999"})

	if !e.Unknown {
		t.Error("expected Unknown to be set")
	}
	if !approxEqual(e.Subtotal, 0.50) {
		t.Errorf("subtotal = %.4f, want 0.50", e.Subtotal)
	}
}

func TestDefaultPricesCoverGPUTypes(t *testing.T) {
	prices := DefaultPrices()

	for _, st := range []string{"gex44", "gex130"} {
		if prices.Servers[st] <= 0 {
			t.Errorf("no default price for %s", st)
		}
	}
	if prices.PrimaryIPv4 <= 0 {
		t.Error("no default primary IPv4 price")
	}
}

func TestHourlyCost(t *testing.T) {
	e := &Estimate{Total: 730}
	if !approxEqual(e.HourlyCost(), 1.0) {
		t.Errorf("hourly = %.4f, want 1.0", e.HourlyCost())
	}
}
