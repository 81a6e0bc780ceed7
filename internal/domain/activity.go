// Package domain defines the caregiving records the insights engine consumes.
package domain

import "time"

// Kind identifies the type of a logged caregiving activity. It is an open
// enum: unknown values pass through untouched and are simply never matched
// by the kind-specific aggregations.
type Kind string

const (
	KindFeeding      Kind = "feeding"
	KindBottle       Kind = "bottle"
	KindNursing      Kind = "nursing"
	KindSleep        Kind = "sleep"
	KindDiaper       Kind = "diaper"
	KindWet          Kind = "wet"
	KindDirty        Kind = "dirty"
	KindBoth         Kind = "both"
	KindPumping      Kind = "pumping"
	KindBath         Kind = "bath"
	KindVitaminD     Kind = "vitamin_d"
	KindNailTrimming Kind = "nail_trimming"
	KindStrollerWalk Kind = "stroller_walk"
	KindTummyTime    Kind = "tummy_time"
	KindSolids       Kind = "solids"
	KindDoctorVisit  Kind = "doctor_visit"
	KindContrastTime Kind = "contrast_time"
)

// Activity is one immutable logged caregiving event. Zero values on the
// optional fields (EndTime, DurationMin, AmountML, Notes, CreatedAt) mean
// "not recorded" and are excluded from the relevant aggregates.
type Activity struct {
	ID          string
	BabyID      string
	Kind        Kind
	StartTime   time.Time
	EndTime     time.Time
	DurationMin int
	AmountML    float64
	Notes       string
	Details     map[string]string
	CreatedAt   time.Time
}

// Baby is the profile the personal-milestone achievements key off. A zero
// BirthDate means the birth date was never supplied.
type Baby struct {
	ID        string
	Name      string
	BirthDate time.Time
}

// IsFeeding reports whether the kind counts as a feeding behavior.
func (k Kind) IsFeeding() bool {
	return k == KindFeeding || k == KindBottle || k == KindNursing
}

// IsDiaper reports whether the kind counts as a diaper change.
func (k Kind) IsDiaper() bool {
	return k == KindDiaper || k == KindWet || k == KindDirty || k == KindBoth
}

// IsSleep reports whether the kind counts as a sleep session.
func (k Kind) IsSleep() bool {
	return k == KindSleep
}

// DiaperStyle classifies a diaper activity as wet, dirty, or both. Generic
// diaper records carry the style in their details payload; anything missing
// or unrecognized classifies as "" and is excluded from style counts.
func (a Activity) DiaperStyle() Kind {
	switch a.Kind {
	case KindWet, KindDirty, KindBoth:
		return a.Kind
	case KindDiaper:
		switch Kind(a.Details["type"]) {
		case KindWet:
			return KindWet
		case KindDirty:
			return KindDirty
		case KindBoth:
			return KindBoth
		}
	}
	return ""
}
