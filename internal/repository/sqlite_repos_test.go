package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/testutil"
)

func TestDegreeRepo_GetBeforeUpsert(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDegreeRepo(database)
	ctx := context.Background()

	d, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, d, "no degree saved yet")
}

func TestDegreeRepo_UpsertReplacesSingleton(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDegreeRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Degree{Name: "BSc CS", TotalCreditsRequired: 180}))
	require.NoError(t, repo.Upsert(ctx, &domain.Degree{Name: "BA Philosophy", TotalCreditsRequired: 120}))

	d, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "BA Philosophy", d.Name)
	assert.Equal(t, 120.0, d.TotalCreditsRequired)
}

func TestDegreeRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDegreeRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Degree{Name: "BSc", TotalCreditsRequired: 180}))
	require.NoError(t, repo.Delete(ctx))

	d, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestSemesterRepo_ListPreservesOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSemesterRepo(database)
	ctx := context.Background()

	second := testutil.NewTestSemester("Spring")
	first := testutil.NewTestSemester("Autumn")
	first.IsActive = true
	require.NoError(t, repo.Upsert(ctx, second, 1))
	require.NoError(t, repo.Upsert(ctx, first, 0))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Autumn", got[0].Name)
	assert.True(t, got[0].IsActive)
	assert.Equal(t, "Spring", got[1].Name)
}

func TestCourseRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(database)
	courseRepo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	sem := testutil.NewTestSemester("Autumn")
	require.NoError(t, semRepo.Upsert(ctx, sem, 0))

	c := testutil.NewTestCourse("Mathematics I", 5.5,
		testutil.WithGrade(4),
		testutil.WithMeeting([]domain.Weekday{domain.Monday, domain.Wednesday}, "10:00", "12:00"))
	c.Location = "Hall A"
	require.NoError(t, courseRepo.Upsert(ctx, sem.ID, c, 0))

	got, err := courseRepo.ListBySemester(ctx, sem.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, c, got[0])
}

func TestCourseRepo_NilGradeSurvives(t *testing.T) {
	database := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(database)
	courseRepo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	sem := testutil.NewTestSemester("Autumn")
	require.NoError(t, semRepo.Upsert(ctx, sem, 0))
	require.NoError(t, courseRepo.Upsert(ctx, sem.ID, testutil.NewTestCourse("Seminar", 1.5), 0))

	got, err := courseRepo.ListBySemester(ctx, sem.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Grade)
	assert.Nil(t, got[0].DaysOfWeek)
}

func TestCourseRepo_CascadeOnSemesterDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(database)
	courseRepo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	sem := testutil.NewTestSemester("Autumn")
	require.NoError(t, semRepo.Upsert(ctx, sem, 0))
	require.NoError(t, courseRepo.Upsert(ctx, sem.ID, testutil.NewTestCourse("Math", 5), 0))

	require.NoError(t, semRepo.Delete(ctx, sem.ID))

	got, err := courseRepo.ListBySemester(ctx, sem.ID)
	require.NoError(t, err)
	assert.Empty(t, got, "courses cascade with their semester")
}

func TestNoteRepo_MapAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteNoteRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "n1", "enroll by friday"))
	require.NoError(t, repo.Upsert(ctx, "n2", "buy textbook"))
	require.NoError(t, repo.Upsert(ctx, "n1", "enrolled"))

	notes, err := repo.Map(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"n1": "enrolled", "n2": "buy textbook"}, notes)

	require.NoError(t, repo.Delete(ctx, "n2"))
	require.NoError(t, repo.DeleteAll(ctx))
	notes, err = repo.Map(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
