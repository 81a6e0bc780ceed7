package achievements

// The catalog is authored as plain data tables, one per category. Evaluation
// pairs each table with its aggregate metric in engine.go; keeping the two
// apart lets the catalog be tested for integrity on its own.

func def(id string, cat Category, rarity Rarity, name, desc, icon string, target float64) Definition {
	return Definition{ID: id, Category: cat, Rarity: rarity, Name: name, Description: desc, Icon: icon, Target: target}
}

var foundationDefs = []Definition{
	def("first_activity", CategoryFoundation, RarityCommon, "First Steps", "Log your very first activity", "🌟", 1),
	def("first_feeding", CategoryFoundation, RarityCommon, "First Meal", "Log your first feeding", "🍼", 1),
	def("first_sleep", CategoryFoundation, RarityCommon, "First Dream", "Log your first sleep session", "😴", 1),
	def("first_diaper", CategoryFoundation, RarityCommon, "First Change", "Log your first diaper change", "🧷", 1),
	def("first_week", CategoryFoundation, RarityCommon, "One Week In", "Keep tracking for a full week", "📅", 7),
	def("first_month", CategoryFoundation, RarityRare, "One Month In", "Keep tracking for a full month", "🗓️", 30),
}

var activityCountDefs = []Definition{
	def("activities_10", CategoryVolume, RarityCommon, "Getting Started", "Log 10 activities", "✏️", 10),
	def("activities_25", CategoryVolume, RarityCommon, "Finding a Rhythm", "Log 25 activities", "📝", 25),
	def("activities_50", CategoryVolume, RarityCommon, "Committed", "Log 50 activities", "📒", 50),
	def("activities_100", CategoryVolume, RarityCommon, "Century Club", "Log 100 activities", "💯", 100),
	def("activities_250", CategoryVolume, RarityRare, "Dedicated", "Log 250 activities", "📚", 250),
	def("activities_500", CategoryVolume, RarityRare, "Relentless", "Log 500 activities", "🏅", 500),
	def("activities_1000", CategoryVolume, RarityEpic, "Thousand Club", "Log 1,000 activities", "🏆", 1000),
	def("activities_2500", CategoryVolume, RarityEpic, "Logging Legend", "Log 2,500 activities", "👑", 2500),
	def("activities_5000", CategoryVolume, RarityLegendary, "Unstoppable", "Log 5,000 activities", "🚀", 5000),
	def("activities_10000", CategoryVolume, RarityLegendary, "Ten Thousand Strong", "Log 10,000 activities", "🌌", 10000),
}

var volumeDefs = []Definition{
	def("volume_1l", CategoryVolume, RarityCommon, "First Liter", "Feed a total of 1 liter", "🥛", 1000),
	def("volume_5l", CategoryVolume, RarityCommon, "Five Liters", "Feed a total of 5 liters", "🍶", 5000),
	def("volume_10l", CategoryVolume, RarityRare, "Ten Liters", "Feed a total of 10 liters", "🫙", 10000),
	def("volume_25l", CategoryVolume, RarityRare, "Twenty-Five Liters", "Feed a total of 25 liters", "🛢️", 25000),
	def("volume_50l", CategoryVolume, RarityEpic, "Fifty Liters", "Feed a total of 50 liters", "⛲", 50000),
	def("volume_100l", CategoryVolume, RarityLegendary, "Milk Tanker", "Feed a total of 100 liters", "🚛", 100000),
}

var diaperCountDefs = []Definition{
	def("diapers_50", CategoryVolume, RarityCommon, "Fifty Changes", "Change 50 diapers", "🧻", 50),
	def("diapers_100", CategoryVolume, RarityCommon, "Hundred Changes", "Change 100 diapers", "🧴", 100),
	def("diapers_250", CategoryVolume, RarityRare, "Change Machine", "Change 250 diapers", "♻️", 250),
	def("diapers_500", CategoryVolume, RarityRare, "Diaper Veteran", "Change 500 diapers", "🎖️", 500),
	def("diapers_1000", CategoryVolume, RarityEpic, "Thousand Changes", "Change 1,000 diapers", "🥇", 1000),
	def("diapers_2500", CategoryVolume, RarityLegendary, "Diaper Dynasty", "Change 2,500 diapers", "🏰", 2500),
}

// streakLadder builds the per-behavior staircases; every behavior shares the
// same 3/7/14/30 thresholds.
func streakLadder(idPrefix, label, icon string) []Definition {
	return []Definition{
		def(idPrefix+"_streak_3", CategoryStreaks, RarityCommon, label+" Streak: 3 Days", "Log "+label+" activities 3 days in a row", icon, 3),
		def(idPrefix+"_streak_7", CategoryStreaks, RarityRare, label+" Streak: 1 Week", "Log "+label+" activities 7 days in a row", icon, 7),
		def(idPrefix+"_streak_14", CategoryStreaks, RarityEpic, label+" Streak: 2 Weeks", "Log "+label+" activities 14 days in a row", icon, 14),
		def(idPrefix+"_streak_30", CategoryStreaks, RarityLegendary, label+" Streak: 1 Month", "Log "+label+" activities 30 days in a row", icon, 30),
	}
}

var (
	feedingStreakDefs = streakLadder("feeding", "Feeding", "🍼")
	diaperStreakDefs  = streakLadder("diaper", "Diaper", "🧷")
	sleepStreakDefs   = streakLadder("sleep", "Sleep", "😴")
	perfectStreakDefs = streakLadder("perfect", "Perfect Day", "✨")
)

// kindLadder builds the activity-specific staircases; every tracked kind
// shares the same 5/10/25/50/100 thresholds.
func kindLadder(idPrefix, label, icon string) []Definition {
	return []Definition{
		def(idPrefix+"_5", CategoryActivities, RarityCommon, label+" x5", "Log 5 "+label+" activities", icon, 5),
		def(idPrefix+"_10", CategoryActivities, RarityCommon, label+" x10", "Log 10 "+label+" activities", icon, 10),
		def(idPrefix+"_25", CategoryActivities, RarityRare, label+" x25", "Log 25 "+label+" activities", icon, 25),
		def(idPrefix+"_50", CategoryActivities, RarityEpic, label+" x50", "Log 50 "+label+" activities", icon, 50),
		def(idPrefix+"_100", CategoryActivities, RarityLegendary, label+" x100", "Log 100 "+label+" activities", icon, 100),
	}
}

var (
	bathDefs         = kindLadder("bath", "Bath", "🛁")
	vitaminDDefs     = kindLadder("vitamin_d", "Vitamin D", "💊")
	strollerWalkDefs = kindLadder("stroller_walk", "Stroller Walk", "🚶")
	tummyTimeDefs    = kindLadder("tummy_time", "Tummy Time", "🤸")
	solidsDefs       = kindLadder("solids", "Solid Food", "🥄")
	pumpingDefs      = kindLadder("pumping", "Pumping", "🫗")
	doctorVisitDefs  = kindLadder("doctor_visit", "Doctor Visit", "🩺")
	nailTrimmingDefs = kindLadder("nail_trimming", "Nail Trimming", "✂️")
	contrastTimeDefs = kindLadder("contrast_time", "Contrast Time", "🎴")
)

var nightSleepDefs = []Definition{
	def("night_sleeps_10", CategoryEfficiency, RarityCommon, "Night Shift", "Log 10 night sleep sessions", "🌙", 10),
	def("night_sleeps_50", CategoryEfficiency, RarityRare, "Night Regular", "Log 50 night sleep sessions", "🌙", 50),
	def("night_sleeps_100", CategoryEfficiency, RarityEpic, "Night Master", "Log 100 night sleep sessions", "🌙", 100),
}

var dayNapDefs = []Definition{
	def("day_naps_10", CategoryEfficiency, RarityCommon, "Nap Rookie", "Log 10 daytime naps", "☀️", 10),
	def("day_naps_50", CategoryEfficiency, RarityRare, "Nap Regular", "Log 50 daytime naps", "☀️", 50),
	def("day_naps_100", CategoryEfficiency, RarityEpic, "Nap Master", "Log 100 daytime naps", "☀️", 100),
}

var quickLogDefs = []Definition{
	def("quick_logs_10", CategoryEfficiency, RarityCommon, "Quick Draw", "Log 10 activities within 5 minutes of happening", "⚡", 10),
	def("quick_logs_50", CategoryEfficiency, RarityRare, "Fast Fingers", "Log 50 activities within 5 minutes of happening", "⚡", 50),
	def("quick_logs_100", CategoryEfficiency, RarityEpic, "Real-Time Recorder", "Log 100 activities within 5 minutes of happening", "⚡", 100),
	def("quick_logs_250", CategoryEfficiency, RarityLegendary, "Lightning Logger", "Log 250 activities within 5 minutes of happening", "⚡", 250),
}

var notedDefs = []Definition{
	def("noted_10", CategoryEfficiency, RarityCommon, "Note Taker", "Add notes to 10 activities", "🗒️", 10),
	def("noted_50", CategoryEfficiency, RarityRare, "Diarist", "Add notes to 50 activities", "🗒️", 50),
	def("noted_100", CategoryEfficiency, RarityEpic, "Biographer", "Add notes to 100 activities", "🗒️", 100),
}

var recordDefs = []Definition{
	def("longest_sleep_6h", CategoryRecords, RarityEpic, "Marathon Sleeper", "One sleep session of 6 hours or more", "🛌", 360),
	def("feedings_in_day_10", CategoryRecords, RarityRare, "Feeding Frenzy", "10 feedings in a single day", "🍽️", 10),
	def("activities_in_day_20", CategoryRecords, RarityEpic, "Busiest Day", "20 activities in a single day", "🌪️", 20),
	def("sleep_hours_1000", CategoryRecords, RarityLegendary, "Thousand Hours", "1,000 total hours of tracked sleep", "💤", 1000),
}

var trackingStreakDefs = []Definition{
	def("tracking_streak_3", CategoryTime, RarityCommon, "Three in a Row", "Track something 3 days in a row", "🔥", 3),
	def("tracking_streak_7", CategoryTime, RarityCommon, "Full Week", "Track something 7 days in a row", "🔥", 7),
	def("tracking_streak_14", CategoryTime, RarityRare, "Fortnight", "Track something 14 days in a row", "🔥", 14),
	def("tracking_streak_30", CategoryTime, RarityRare, "Thirty Days", "Track something 30 days in a row", "🔥", 30),
	def("tracking_streak_60", CategoryTime, RarityEpic, "Sixty Days", "Track something 60 days in a row", "🔥", 60),
	def("tracking_streak_100", CategoryTime, RarityLegendary, "Hundred Days", "Track something 100 days in a row", "🔥", 100),
}

// Total-days milestones flip straight to earned once crossed; they are never
// surfaced as in-progress.
var daysTrackedDefs = []Definition{
	def("days_tracked_30", CategoryTime, RarityRare, "Monthly Habit", "Track activities on 30 different days", "📆", 30),
	def("days_tracked_100", CategoryTime, RarityEpic, "Hundred Day Club", "Track activities on 100 different days", "📆", 100),
	def("days_tracked_180", CategoryTime, RarityEpic, "Half-Year Habit", "Track activities on 180 different days", "📆", 180),
	def("days_tracked_365", CategoryTime, RarityLegendary, "Year-Round Tracker", "Track activities on 365 different days", "📆", 365),
}

var specialDefs = []Definition{
	def("night_owl", CategorySpecial, RarityRare, "Night Owl", "Log an activity between midnight and 6 AM", "🦉", 1),
	def("early_bird", CategorySpecial, RarityRare, "Early Bird", "Log an activity between 5 AM and 7 AM", "🐦", 1),
	def("weekend_warrior_50", CategorySpecial, RarityEpic, "Weekend Warrior", "Log 50 weekend activities", "🎪", 50),
	def("multitasker_10", CategorySpecial, RarityEpic, "Multitasker", "10 hours with 3 or more different activity types", "🎛️", 10),
}

// Personal milestones gate on both the baby's age and the days tracked, so
// they only ever appear when a birth date is on file.
var personalDefs = []Definition{
	def("personal_7", CategoryPersonal, RarityCommon, "One Week Old", "Baby is one week old with a week of tracking", "🎈", 7),
	def("personal_14", CategoryPersonal, RarityCommon, "Two Weeks Old", "Baby is two weeks old with two weeks of tracking", "🎈", 14),
	def("personal_28", CategoryPersonal, RarityCommon, "Four Weeks Old", "Baby is four weeks old with four weeks of tracking", "🎈", 28),
	def("personal_30", CategoryPersonal, RarityRare, "One Month Old", "Baby is one month old with a month of tracking", "🎂", 30),
	def("personal_60", CategoryPersonal, RarityRare, "Two Months Old", "Baby is two months old with two months of tracking", "🎂", 60),
	def("personal_90", CategoryPersonal, RarityRare, "Three Months Old", "Baby is three months old with three months of tracking", "🎂", 90),
	def("personal_100", CategoryPersonal, RarityEpic, "100 Days Old", "Baby is 100 days old with 100 days of tracking", "💯", 100),
	def("personal_180", CategoryPersonal, RarityEpic, "Half a Year", "Baby is six months old with six months of tracking", "🎉", 180),
	def("personal_365", CategoryPersonal, RarityLegendary, "One Year Old", "Baby is one year old with a year of tracking", "🎆", 365),
}

var parentDayDefs = []Definition{
	def("parent_days_7", CategoryParent, RarityCommon, "One Week Strong", "7 days since your first log", "💪", 7),
	def("parent_days_30", CategoryParent, RarityRare, "One Month Strong", "30 days since your first log", "💪", 30),
	def("parent_days_100", CategoryParent, RarityEpic, "Hundred Days Strong", "100 days since your first log", "💪", 100),
	def("parent_days_365", CategoryParent, RarityLegendary, "One Year Strong", "365 days since your first log", "💪", 365),
}

var lateNightDefs = []Definition{
	def("late_nights_10", CategoryParent, RarityCommon, "Burning the Midnight Oil", "10 nights with late-night activity", "🕯️", 10),
	def("late_nights_50", CategoryParent, RarityRare, "Night Watch", "50 nights with late-night activity", "🕯️", 50),
	def("late_nights_100", CategoryParent, RarityEpic, "Guardian of the Night", "100 nights with late-night activity", "🕯️", 100),
}

var wakefulNightDefs = []Definition{
	def("wakeful_nights_10", CategoryParent, RarityRare, "Frequent Flyer", "10 nights with multiple wake-ups", "🌃", 10),
	def("wakeful_nights_50", CategoryParent, RarityEpic, "Sleepless Soldier", "50 nights with multiple wake-ups", "🌃", 50),
}

var parentFirstDefs = []Definition{
	def("first_diaper_change", CategoryParent, RarityCommon, "Baptism by Diaper", "Your first diaper change", "🧷", 1),
	def("first_feeding_given", CategoryParent, RarityCommon, "First Feed", "Your first feeding", "🍼", 1),
	def("first_night_wakeup", CategoryParent, RarityCommon, "Welcome to Nights", "Your first night wake-up", "🌙", 1),
	def("first_week_survived", CategoryParent, RarityCommon, "Week One Survived", "A full week of caregiving", "🗓️", 7),
	def("first_month_survived", CategoryParent, RarityRare, "Month One Survived", "A full month of caregiving", "📅", 30),
}

// AllDefinitions returns every catalog definition across the ten categories.
// The order matches evaluation order.
func AllDefinitions() []Definition {
	groups := [][]Definition{
		foundationDefs,
		activityCountDefs, volumeDefs, diaperCountDefs,
		feedingStreakDefs, diaperStreakDefs, sleepStreakDefs, perfectStreakDefs,
		bathDefs, vitaminDDefs, strollerWalkDefs, tummyTimeDefs, solidsDefs,
		pumpingDefs, doctorVisitDefs, nailTrimmingDefs, contrastTimeDefs,
		nightSleepDefs, dayNapDefs, quickLogDefs, notedDefs,
		recordDefs,
		trackingStreakDefs, daysTrackedDefs,
		specialDefs,
		personalDefs,
		parentDayDefs, lateNightDefs, wakefulNightDefs, parentFirstDefs,
	}
	var out []Definition
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
