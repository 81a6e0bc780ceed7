// Package achievements evaluates the milestone catalog against aggregate
// statistics derived from a baby's activity log. Definitions are pure data;
// all evaluation logic lives in the engine and is keyed by definition ID, so
// IDs are stable join keys for persisted unlock state and must never change.
package achievements

import "time"

// Category groups related achievements.
type Category string

const (
	CategoryFoundation Category = "foundation"
	CategoryVolume     Category = "volume"
	CategoryStreaks    Category = "streaks"
	CategoryActivities Category = "activities"
	CategoryEfficiency Category = "efficiency"
	CategoryRecords    Category = "records"
	CategoryTime       Category = "time"
	CategorySpecial    Category = "special"
	CategoryPersonal   Category = "personal"
	CategoryParent     Category = "parent"
	CategoryDaily      Category = "daily"
)

// Rarity ranks how hard an achievement is to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Definition is one catalog-authored achievement. Target is the aggregate
// value that earns it; boolean-gated achievements use a target of 1.
type Definition struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Rarity      Rarity   `json:"rarity"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Target      float64  `json:"target"`
}

// Result is an evaluated achievement. Progress is 0-100 after the display
// clamp; Earned flips exactly when the underlying aggregate meets or exceeds
// Target. Results are recomputed from scratch on every evaluation; the
// persistence layer owns the "first unlocked" ratchet.
type Result struct {
	Definition
	Earned     bool       `json:"earned"`
	Progress   float64    `json:"progress"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// DailyResult is an evaluated same-day achievement. CompletedDate carries
// the local midnight of the day it was earned, or nil when unearned; the
// persistence layer uses it to avoid double-awarding within one day while
// letting the badge re-earn on later days.
type DailyResult struct {
	Definition
	Earned        bool       `json:"earned"`
	Progress      float64    `json:"progress"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}
