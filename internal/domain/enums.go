package domain

type Season string

const (
	SeasonAutumn Season = "autumn"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
)

// ValidSeasons is the canonical set of accepted season strings.
var ValidSeasons = map[string]bool{
	"autumn": true, "spring": true, "summer": true,
}

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists weekdays in display order, Monday first.
var AllWeekdays = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// ValidWeekdays is the canonical set of accepted weekday strings.
var ValidWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// WeekdayIndex returns the position of w in the Monday-first week, or -1
// for an unknown weekday.
func WeekdayIndex(w Weekday) int {
	for i, d := range AllWeekdays {
		if d == w {
			return i
		}
	}
	return -1
}
