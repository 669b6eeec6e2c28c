package pricing

import (
	"testing"

	"cloudshop/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_StandardConfiguration(t *testing.T) {
	cfg := model.ServerConfig{CPU: 2, Memory: 4, Disk: 100, Bandwidth: 200, Ports: 5}

	quote := Calculate(cfg, 12, DefaultRates)

	assert.Equal(t, 20.0, quote.Details.CPUCost)
	assert.Equal(t, 20.0, quote.Details.MemoryCost)
	assert.Equal(t, 10.0, quote.Details.DiskCost)
	assert.Equal(t, 100.0, quote.Details.BandwidthCost)
	assert.Equal(t, 10.0, quote.Details.PortCost)
	assert.Equal(t, 160.0, quote.MonthlyCost)
	assert.Equal(t, 1920.0, quote.TotalCost)
}

func TestCalculate_TotalIsMonthlyTimesMonths(t *testing.T) {
	configs := []struct {
		cfg    model.ServerConfig
		months int
	}{
		{model.ServerConfig{CPU: 1, Memory: 2, Disk: 50, Bandwidth: 100, Ports: 3}, 1},
		{model.ServerConfig{CPU: 4, Memory: 16, Disk: 500, Bandwidth: 500, Ports: 10}, 6},
		{model.ServerConfig{CPU: 8, Memory: 32, Disk: 1000, Bandwidth: 1000, Ports: 20}, 36},
	}

	for _, tc := range configs {
		quote := Calculate(tc.cfg, tc.months, DefaultRates)

		sum := quote.Details.CPUCost + quote.Details.MemoryCost + quote.Details.DiskCost +
			quote.Details.BandwidthCost + quote.Details.PortCost
		assert.InDelta(t, sum, quote.MonthlyCost, 0.001)
		assert.InDelta(t, quote.MonthlyCost*float64(tc.months), quote.TotalCost, 0.001)
	}
}

func TestCalculate_RoundsToTwoDecimals(t *testing.T) {
	// 3 GB disk at 0.1/GB would be 0.30000000000000004 in naive float math
	cfg := model.ServerConfig{CPU: 0, Memory: 0, Disk: 3, Bandwidth: 0, Ports: 0}

	quote := Calculate(cfg, 7, DefaultRates)

	assert.Equal(t, 0.3, quote.Details.DiskCost)
	assert.Equal(t, 0.3, quote.MonthlyCost)
	assert.Equal(t, 2.1, quote.TotalCost)
}

func TestCalculate_ZeroConfigIsFree(t *testing.T) {
	quote := Calculate(model.ServerConfig{}, 12, DefaultRates)

	assert.Equal(t, 0.0, quote.MonthlyCost)
	assert.Equal(t, 0.0, quote.TotalCost)
}
