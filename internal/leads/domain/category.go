package domain

// Category is the Hot/Warm/Cold tier derived from a lead score.
type Category string

const (
	CategoryHot  Category = "Hot"
	CategoryWarm Category = "Warm"
	CategoryCold Category = "Cold"
)

// Score boundaries shared by scoring, analytics and the assistant.
// Nothing else in the codebase may restate them.
const (
	HotThreshold  = 80
	WarmThreshold = 55
	MaxScore      = 100
)

// CategoryForScore maps a score onto its tier.
func CategoryForScore(score int) Category {
	switch {
	case score >= HotThreshold:
		return CategoryHot
	case score >= WarmThreshold:
		return CategoryWarm
	default:
		return CategoryCold
	}
}

// ParseCategory accepts the stored spelling of a category.
func ParseCategory(value string) (Category, bool) {
	switch Category(value) {
	case CategoryHot, CategoryWarm, CategoryCold:
		return Category(value), true
	}
	return "", false
}

// Tier orders categories for ranking: Hot 3, Warm 2, anything else 1.
func (c Category) Tier() int {
	switch c {
	case CategoryHot:
		return 3
	case CategoryWarm:
		return 2
	default:
		return 1
	}
}

// Urgency is the follow-up urgency attached to a category. Unknown
// categories fall back to Medium.
func (c Category) Urgency() string {
	switch c {
	case CategoryHot:
		return "High"
	case CategoryWarm:
		return "Medium"
	case CategoryCold:
		return "Low"
	default:
		return "Medium"
	}
}

func (c Category) String() string { return string(c) }
