// ABOUTME: Weekly summary statistics over the activity collection.
// ABOUTME: Computed fresh on every call; list sizes make caching pointless.
package ledger

import "github.com/mtendies/ledger/internal/models"

// WeekStats summarizes one week of logged activities.
type WeekStats struct {
	WeekOf       string         `json:"weekOf"`
	Total        int            `json:"total"`
	ByType       map[string]int `json:"byType"`
	BySubType    map[string]int `json:"bySubType"`
	RunMiles     float64        `json:"runMiles"`
	LatestWeight *float64       `json:"latestWeight,omitempty"`
}

// WeekSummary computes counts per type and workout sub-type, total run
// mileage, and the latest weight value (first weight entry in the
// most-recent-first collection order).
func WeekSummary(weekKey string, weekActivities []*models.Activity) WeekStats {
	stats := WeekStats{
		WeekOf:    weekKey,
		ByType:    map[string]int{},
		BySubType: map[string]int{},
	}

	for _, a := range weekActivities {
		stats.Total++
		stats.ByType[string(a.Type)]++
		if a.Type == models.TypeWorkout && a.SubType != "" {
			stats.BySubType[string(a.SubType)]++
		}
		if a.Type == models.TypeWorkout && a.SubType == models.SubRun && a.Data.Distance != nil {
			stats.RunMiles += *a.Data.Distance
		}
		if a.Type == models.TypeWeight && a.Data.Weight != nil && stats.LatestWeight == nil {
			stats.LatestWeight = a.Data.Weight
		}
	}
	return stats
}
