package ical

import (
	"strings"
	"testing"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/testutil"
)

func TestExport_OneEventPerMeetingDay(t *testing.T) {
	sem := testutil.NewTestSemester("Autumn")
	c := testutil.NewTestCourse("Mathematics I", 5.5,
		testutil.WithMeeting([]domain.Weekday{domain.Monday, domain.Wednesday}, "10:00", "11:30"))
	c.Location = "Hall A"
	sem.Courses = append(sem.Courses, c)

	out, err := Export(sem)
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 2)

	for _, evt := range cal.Events() {
		assert.Equal(t, "Mathematics I", evt.GetProperty(ics.ComponentPropertySummary).Value)
		assert.Equal(t, "Hall A", evt.GetProperty(ics.ComponentPropertyLocation).Value)
		rrule := evt.GetProperty(ics.ComponentPropertyRrule)
		require.NotNil(t, rrule)
		assert.Contains(t, rrule.Value, "FREQ=WEEKLY")
	}
}

func TestExport_SkipsCoursesWithoutMeetings(t *testing.T) {
	sem := testutil.NewTestSemester("Autumn")
	sem.Courses = append(sem.Courses,
		testutil.NewTestCourse("Thesis", 6),
		testutil.NewTestCourse("Broken", 5, testutil.WithMeeting([]domain.Weekday{domain.Friday}, "14:00", "13:00")))

	out, err := Export(sem)
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, cal.Events())
}

func TestExport_NilSemester(t *testing.T) {
	_, err := Export(nil)
	assert.Error(t, err)
}

func TestExport_EventTimesMatchMeetingWindow(t *testing.T) {
	sem := testutil.NewTestSemester("Autumn")
	sem.Courses = append(sem.Courses,
		testutil.NewTestCourse("Algorithms", 6,
			testutil.WithMeeting([]domain.Weekday{domain.Tuesday}, "09:15", "10:45")))

	out, err := Export(sem)
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)

	start, err := cal.Events()[0].GetStartAt()
	require.NoError(t, err)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 15, start.Minute())
}
