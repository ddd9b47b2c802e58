// Package ical renders a semester's weekly schedule as an RFC 5545 calendar.
// Each course meeting day becomes one VEVENT with a weekly repeat rule, so
// the export drops cleanly into Google Calendar or Apple Calendar.
package ical

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/timetable"
)

// teachingWeeks bounds the weekly repeat rule. Plans carry no term dates,
// so a typical term length stands in.
const teachingWeeks = 14

var seasonStarts = map[domain.Season]struct {
	month time.Month
	day   int
}{
	domain.SeasonAutumn: {time.September, 1},
	domain.SeasonSpring: {time.January, 15},
	domain.SeasonSummer: {time.June, 1},
}

var weekdayToTime = map[domain.Weekday]time.Weekday{
	domain.Monday:    time.Monday,
	domain.Tuesday:   time.Tuesday,
	domain.Wednesday: time.Wednesday,
	domain.Thursday:  time.Thursday,
	domain.Friday:    time.Friday,
	domain.Saturday:  time.Saturday,
	domain.Sunday:    time.Sunday,
}

// Export serializes the semester's schedulable meetings as an iCalendar
// document. Courses without a usable meeting window are skipped.
func Export(sem *domain.Semester) (string, error) {
	if sem == nil {
		return "", fmt.Errorf("no semester to export")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tassel//degree planner//EN")

	termStart := semesterStart(sem)
	now := time.Now().UTC()

	for _, c := range sem.Courses {
		window, ok := timetable.MeetingInterval(c)
		if !ok {
			continue
		}
		for _, day := range c.DaysOfWeek {
			wd, known := weekdayToTime[day]
			if !known {
				continue
			}
			first := firstOnOrAfter(termStart, wd)
			event := cal.AddEvent(fmt.Sprintf("%s-%s@tassel", c.ID, day))
			event.SetDtStampTime(now)
			event.SetStartAt(atMinutes(first, window.Start))
			event.SetEndAt(atMinutes(first, window.End))
			event.SetSummary(c.Name)
			if c.Location != "" {
				event.SetLocation(c.Location)
			}
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", teachingWeeks))
		}
	}

	return cal.Serialize(), nil
}

// semesterStart anchors the term to a conventional first day for its season.
func semesterStart(sem *domain.Semester) time.Time {
	anchor, ok := seasonStarts[sem.Season]
	if !ok {
		anchor = seasonStarts[domain.SeasonAutumn]
	}
	// UTC keeps serialized wall-clock times identical to the plan's.
	return time.Date(sem.Year, anchor.month, anchor.day, 0, 0, 0, 0, time.UTC)
}

// firstOnOrAfter walks forward from start to the first matching weekday.
func firstOnOrAfter(start time.Time, wd time.Weekday) time.Time {
	offset := (int(wd) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, offset)
}

// atMinutes places a minutes-since-midnight offset on the given date.
func atMinutes(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
