// Package pricing computes rental costs for a server configuration. It is a
// pure function of its inputs: the quote endpoint and order creation share it
// so a quoted price is always the price an order is persisted with.
package pricing

import (
	"math"

	"cloudshop/internal/model"
)

// Rates are the per-unit monthly prices for each resource dimension
type Rates struct {
	CPU       float64 // per core
	Memory    float64 // per GB
	Disk      float64 // per GB
	Bandwidth float64 // per Mbps
	Port      float64 // per port
}

// DefaultRates are the storefront's fixed per-unit monthly prices
var DefaultRates = Rates{
	CPU:       10,
	Memory:    5,
	Disk:      0.1,
	Bandwidth: 0.5,
	Port:      2,
}

// Breakdown is the per-dimension monthly cost split
type Breakdown struct {
	CPUCost       float64 `json:"cpuCost"`
	MemoryCost    float64 `json:"memoryCost"`
	DiskCost      float64 `json:"diskCost"`
	BandwidthCost float64 `json:"bandwidthCost"`
	PortCost      float64 `json:"portCost"`
}

// Quote is the full cost computation result, all figures rounded to 2 decimals
type Quote struct {
	MonthlyCost float64   `json:"monthlyCost"`
	TotalCost   float64   `json:"totalCost"`
	Details     Breakdown `json:"details"`
}

// Calculate prices a configuration over a rental duration using the given rates
func Calculate(cfg model.ServerConfig, months int, rates Rates) Quote {
	d := Breakdown{
		CPUCost:       round2(float64(cfg.CPU) * rates.CPU),
		MemoryCost:    round2(float64(cfg.Memory) * rates.Memory),
		DiskCost:      round2(float64(cfg.Disk) * rates.Disk),
		BandwidthCost: round2(float64(cfg.Bandwidth) * rates.Bandwidth),
		PortCost:      round2(float64(cfg.Ports) * rates.Port),
	}
	monthly := round2(d.CPUCost + d.MemoryCost + d.DiskCost + d.BandwidthCost + d.PortCost)
	return Quote{
		MonthlyCost: monthly,
		TotalCost:   round2(monthly * float64(months)),
		Details:     d,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
