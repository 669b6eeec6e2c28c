// Package catalog holds the fixed server tier table.
package catalog

import "cloudshop/internal/model"

var tiers = []model.ServerTier{
	{ID: 1, Name: "Starter", Description: "For small sites and lightweight workloads", CPU: 1, Memory: 2, Disk: 50, Bandwidth: 100, Ports: 3},
	{ID: 2, Name: "Standard", Description: "For mid-sized business sites and applications", CPU: 2, Memory: 4, Disk: 100, Bandwidth: 200, Ports: 5},
	{ID: 3, Name: "Performance", Description: "For large applications and high-concurrency workloads", CPU: 4, Memory: 16, Disk: 500, Bandwidth: 500, Ports: 10},
	{ID: 4, Name: "Enterprise", Description: "For enterprise applications and database workloads", CPU: 8, Memory: 32, Disk: 1000, Bandwidth: 1000, Ports: 20},
}

// Tiers returns the full catalog
func Tiers() []model.ServerTier {
	return tiers
}

// ByID returns the tier with the given id, or false when absent
func ByID(id int) (model.ServerTier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return model.ServerTier{}, false
}
