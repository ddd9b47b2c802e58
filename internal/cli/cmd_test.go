package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasselapp/tassel/internal/config"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/planner"
	"github.com/tasselapp/tassel/internal/service"
	"github.com/tasselapp/tassel/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := planner.NewStore()

	return &App{
		Store: store,
		Sync:  service.NewSyncService(store, database, testutil.NewTestUoW(database)),
		Cfg:   config.Config{GradeScaleMax: 4},
		// Non-interactive: forms and the TUI stay off in tests.
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedSemester(t *testing.T, app *App, name string) string {
	t.Helper()
	_, err := executeCmd(t, app, "semester", "add", "--name", name, "--year", "2025", "--season", "autumn")
	require.NoError(t, err)
	semesters := app.Store.Semesters()
	return semesters[len(semesters)-1].ID
}

func TestDegreeSetupAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "degree", "setup", "--name", "BSc Computer Science", "--credits", "180")
	require.NoError(t, err)
	assert.Contains(t, out, "Degree set: BSc Computer Science")

	out, err = executeCmd(t, app, "degree", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "BSc Computer Science")
	assert.Contains(t, out, "180")
}

func TestDegreeSetup_RejectsOutOfRangeCredits(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "degree", "setup", "--name", "BSc", "--credits", "30")
	require.Error(t, err)
	assert.Nil(t, app.Store.Degree(), "invalid setup leaves no degree behind")
}

func TestSemesterAdd_FirstBecomesActive(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "semester", "add", "--name", "First autumn", "--year", "2025", "--season", "autumn")
	require.NoError(t, err)
	assert.Contains(t, out, "now the active semester")

	out, err = executeCmd(t, app, "semester", "add", "--name", "Spring", "--year", "2026", "--season", "spring")
	require.NoError(t, err)
	assert.NotContains(t, out, "now the active semester")

	active := app.Store.ActiveSemester()
	require.NotNil(t, active)
	assert.Equal(t, "First autumn", active.Name)
}

func TestSemesterActivate_ByIDPrefix(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")
	springID := seedSemester(t, app, "Spring")

	out, err := executeCmd(t, app, "semester", "activate", springID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Active semester: Spring")
}

func TestSemesterResolve_ByName(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")

	id, err := resolveSemesterID(app, "autumn")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = resolveSemesterID(app, "nope")
	assert.Error(t, err)
}

func TestSemesterRemove(t *testing.T) {
	app := testApp(t)
	id := seedSemester(t, app, "Autumn")

	_, err := executeCmd(t, app, "semester", "remove", id)
	require.NoError(t, err)
	assert.Empty(t, app.Store.Semesters())
}

func TestCourseAddAndList(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")

	out, err := executeCmd(t, app, "course", "add",
		"--name", "Mathematics I", "--credits", "5.5",
		"--days", "mon,wed", "--start", "10:00", "--end", "11:30",
		"--location", "Hall A")
	require.NoError(t, err)
	assert.Contains(t, out, "Added course Mathematics I")

	out, err = executeCmd(t, app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Mathematics I")
	assert.Contains(t, out, "Mon Wed")
	assert.Contains(t, out, "Hall A")
}

func TestCourseAdd_NoActiveSemester(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active semester")
}

func TestCourseAdd_RejectsBadDay(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")

	_, err := executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "5", "--days", "blursday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown day")
}

func TestCourseAdd_WarnsOnInvertedTimes(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")

	out, err := executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "5",
		"--days", "mon", "--start", "14:00", "--end", "13:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Added course Math")
	assert.Contains(t, out, "will not appear on the schedule")
}

func TestCourseUpdate_SetAndClearGrade(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")
	_, err := executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "5")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "course", "update", "Math", "--grade", "3.7")
	require.NoError(t, err)
	sem := app.Store.ActiveSemester()
	require.NotNil(t, sem.Courses[0].Grade)
	assert.InDelta(t, 3.7, *sem.Courses[0].Grade, 1e-9)

	_, err = executeCmd(t, app, "course", "update", "Math", "--grade", "")
	require.NoError(t, err)
	assert.Nil(t, app.Store.ActiveSemester().Courses[0].Grade)
}

func TestCourseUpdate_RejectsGradeAboveScale(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")
	_, err := executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "5")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "course", "update", "Math", "--grade", "4.5")
	require.Error(t, err)
}

func TestScheduleConflicts(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")
	_, err := executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "5",
		"--days", "mon", "--start", "10:00", "--end", "12:00")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "course", "add", "--name", "Physics", "--credits", "5",
		"--days", "mon", "--start", "11:00", "--end", "13:00")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "schedule", "conflicts")
	require.NoError(t, err)
	assert.Contains(t, out, "1 conflict(s)")
	assert.Contains(t, out, "11:00-12:00")
}

func TestScheduleConflicts_AllSemesters(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")
	seedSemester(t, app, "Spring")

	// Overlapping pair in the inactive Spring semester.
	_, err := executeCmd(t, app, "course", "add", "--semester", "Spring",
		"--name", "Math", "--credits", "5",
		"--days", "mon", "--start", "10:00", "--end", "12:00")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "course", "add", "--semester", "Spring",
		"--name", "Physics", "--credits", "5",
		"--days", "mon", "--start", "11:00", "--end", "13:00")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "schedule", "conflicts")
	require.NoError(t, err)
	assert.Contains(t, out, "No schedule conflicts")

	out, err = executeCmd(t, app, "schedule", "conflicts", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "1 conflict(s)")
}

func TestScheduleShow_NoActiveSemester(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "schedule", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No active semester")
}

func TestScheduleIcs_WritesFile(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")
	_, err := executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "5",
		"--days", "mon", "--start", "10:00", "--end", "12:00")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schedule.ics")
	out, err := executeCmd(t, app, "schedule", "ics", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "SUMMARY:Math")
}

func TestUndoRedo(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")

	out, err := executeCmd(t, app, "undo")
	require.NoError(t, err)
	assert.Contains(t, out, "Undone")
	assert.Empty(t, app.Store.Semesters())

	out, err = executeCmd(t, app, "redo")
	require.NoError(t, err)
	assert.Contains(t, out, "Redone")
	assert.Len(t, app.Store.Semesters(), 1)

	out, err = executeCmd(t, app, "redo")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to redo")
}

func TestExportImportRoundTrip(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")
	_, err := executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "5.5", "--grade", "3.7")
	require.NoError(t, err)
	want := app.Store.Snapshot()

	path := filepath.Join(t.TempDir(), "plan.json")
	_, err = executeCmd(t, app, "export", "--out", path)
	require.NoError(t, err)

	other := testApp(t)
	out, err := executeCmd(t, other, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported plan with 1 semester(s)")
	assert.Equal(t, want, other.Store.Snapshot())
}

func TestImport_RejectsInvalidFile(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")
	before := app.Store.Snapshot()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format":"other"}`), 0o644))

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Equal(t, before, app.Store.Snapshot(), "failed import leaves the plan untouched")
}

func TestSaveAndLoad(t *testing.T) {
	app := testApp(t)
	seedSemester(t, app, "Autumn")

	out, err := executeCmd(t, app, "save")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved")

	require.NoError(t, app.Store.DeleteSemester(app.Store.Semesters()[0].ID))

	out, err = executeCmd(t, app, "load")
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded")
	assert.Len(t, app.Store.Semesters(), 1)
}

func TestNoteLifecycle(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "note", "add", "enroll", "by", "friday")
	require.NoError(t, err)
	assert.Contains(t, out, "Added note")

	out, err = executeCmd(t, app, "note", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "enroll by friday")

	var id string
	for noteID := range app.Store.Notes() {
		id = noteID
	}
	_, err = executeCmd(t, app, "note", "set", id[:8], "enrolled")
	require.NoError(t, err)
	assert.Equal(t, "enrolled", app.Store.Notes()[id])

	_, err = executeCmd(t, app, "note", "remove", id[:8])
	require.NoError(t, err)
	assert.Empty(t, app.Store.Notes())
}

func TestStatus(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "degree", "setup", "--name", "BSc CS", "--credits", "180")
	require.NoError(t, err)
	seedSemester(t, app, "Autumn")
	_, err = executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "90", "--grade", "4")
	require.Error(t, err, "credits above the per-course bound are rejected")

	_, err = executeCmd(t, app, "course", "add", "--name", "Math", "--credits", "6", "--grade", "4")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "BSc CS")
	assert.Contains(t, out, "GPA")
	assert.Contains(t, out, "Autumn 2025")
}

func TestParseDays_Ordering(t *testing.T) {
	days, err := parseDays("wed, mon")
	require.NoError(t, err)
	assert.Equal(t, []domain.Weekday{domain.Wednesday, domain.Monday}, days)

	days, err = parseDays("")
	require.NoError(t, err)
	assert.Nil(t, days)
}
