package achievements

// Chain is an ordered difficulty ladder of achievement IDs within one theme.
// The progression filter uses chains to surface only the next step of each
// ladder instead of the whole catalog at once.
type Chain struct {
	Name string
	IDs  []string
}

func ladderIDs(defs []Definition) []string {
	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	return ids
}

// Chains lists every progression ladder. Achievements in no chain are
// standalone.
var Chains = []Chain{
	{Name: "activities", IDs: ladderIDs(activityCountDefs)},
	{Name: "volume", IDs: ladderIDs(volumeDefs)},
	{Name: "diapers", IDs: ladderIDs(diaperCountDefs)},
	{Name: "feeding_streak", IDs: ladderIDs(feedingStreakDefs)},
	{Name: "diaper_streak", IDs: ladderIDs(diaperStreakDefs)},
	{Name: "sleep_streak", IDs: ladderIDs(sleepStreakDefs)},
	{Name: "perfect_streak", IDs: ladderIDs(perfectStreakDefs)},
	{Name: "bath", IDs: ladderIDs(bathDefs)},
	{Name: "vitamin_d", IDs: ladderIDs(vitaminDDefs)},
	{Name: "stroller_walk", IDs: ladderIDs(strollerWalkDefs)},
	{Name: "tummy_time", IDs: ladderIDs(tummyTimeDefs)},
	{Name: "solids", IDs: ladderIDs(solidsDefs)},
	{Name: "pumping", IDs: ladderIDs(pumpingDefs)},
	{Name: "doctor_visit", IDs: ladderIDs(doctorVisitDefs)},
	{Name: "nail_trimming", IDs: ladderIDs(nailTrimmingDefs)},
	{Name: "contrast_time", IDs: ladderIDs(contrastTimeDefs)},
	{Name: "night_sleeps", IDs: ladderIDs(nightSleepDefs)},
	{Name: "day_naps", IDs: ladderIDs(dayNapDefs)},
	{Name: "quick_logs", IDs: ladderIDs(quickLogDefs)},
	{Name: "noted", IDs: ladderIDs(notedDefs)},
	{Name: "tracking_streak", IDs: ladderIDs(trackingStreakDefs)},
	{Name: "days_tracked", IDs: ladderIDs(daysTrackedDefs)},
	{Name: "parent_days", IDs: ladderIDs(parentDayDefs)},
	{Name: "late_nights", IDs: ladderIDs(lateNightDefs)},
	{Name: "wakeful_nights", IDs: ladderIDs(wakefulNightDefs)},
}

type chainSlot struct {
	chain string
	index int
}

// chainIndex is the precomputed reverse lookup from achievement ID to its
// chain and position, built once at init instead of scanning the chain table
// on every filter call.
var chainIndex = buildChainIndex()

func buildChainIndex() map[string]chainSlot {
	index := make(map[string]chainSlot)
	for _, c := range Chains {
		for i, id := range c.IDs {
			index[id] = chainSlot{chain: c.Name, index: i}
		}
	}
	return index
}
