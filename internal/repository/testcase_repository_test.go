package repository

import (
	"testing"

	"github.com/hoangnln/testtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCaseRepository_AllocatesSequentialCodes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestCaseRepository(db)
	project := createProject(t, db, "WEBSITE-REDESIGN", "Website Redesign")

	first := &model.TestCase{ProjectID: &project.ID, Title: "Login works"}
	require.NoError(t, repo.Create(first))
	require.NotNil(t, first.CaseCode)
	assert.Equal(t, "WEB-001", *first.CaseCode)

	second := &model.TestCase{ProjectID: &project.ID, Title: "Logout works"}
	require.NoError(t, repo.Create(second))
	require.NotNil(t, second.CaseCode)
	assert.Equal(t, "WEB-002", *second.CaseCode)
}

func TestTestCaseRepository_CodeSequencesArePerProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestCaseRepository(db)
	web := createProject(t, db, "WEBSITE-REDESIGN", "Website Redesign")
	mob := createProject(t, db, "MOB", "Mobile App")

	webCase := &model.TestCase{ProjectID: &web.ID, Title: "Web case"}
	require.NoError(t, repo.Create(webCase))
	assert.Equal(t, "WEB-001", *webCase.CaseCode)

	mobCase := &model.TestCase{ProjectID: &mob.ID, Title: "Mobile case"}
	require.NoError(t, repo.Create(mobCase))
	assert.Equal(t, "MOB-001", *mobCase.CaseCode)

	// Cases outside any project fall back to the TC prefix with their own sequence.
	orphan := &model.TestCase{Title: "Orphan case"}
	require.NoError(t, repo.Create(orphan))
	assert.Equal(t, "TC-001", *orphan.CaseCode)
}

func TestTestCaseRepository_SeedsCounterFromExistingCodes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestCaseRepository(db)
	project := createProject(t, db, "WEBSITE-REDESIGN", "Website Redesign")

	// A row that predates the counter table.
	legacy := &model.TestCase{ProjectID: &project.ID, Title: "Legacy case", CaseCode: strPtr("WEB-007")}
	require.NoError(t, db.Create(legacy).Error)

	next := &model.TestCase{ProjectID: &project.ID, Title: "New case"}
	require.NoError(t, repo.Create(next))
	assert.Equal(t, "WEB-008", *next.CaseCode)
}

func TestTestCaseRepository_MalformedExistingCodesDoNotBlockAllocation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestCaseRepository(db)
	project := createProject(t, db, "WEBSITE-REDESIGN", "Website Redesign")

	legacy := &model.TestCase{ProjectID: &project.ID, Title: "Weird code", CaseCode: strPtr("WEB-XYZ")}
	require.NoError(t, db.Create(legacy).Error)

	next := &model.TestCase{ProjectID: &project.ID, Title: "New case"}
	require.NoError(t, repo.Create(next))
	assert.Equal(t, "WEB-001", *next.CaseCode)
}

func TestTestCaseRepository_DoesNotReuseDeletedCodes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestCaseRepository(db)
	project := createProject(t, db, "WEBSITE-REDESIGN", "Website Redesign")

	first := &model.TestCase{ProjectID: &project.ID, Title: "First"}
	require.NoError(t, repo.Create(first))
	second := &model.TestCase{ProjectID: &project.ID, Title: "Second"}
	require.NoError(t, repo.Create(second))
	require.Equal(t, "WEB-002", *second.CaseCode)

	require.NoError(t, repo.Delete(second.ID))

	third := &model.TestCase{ProjectID: &project.ID, Title: "Third"}
	require.NoError(t, repo.Create(third))
	assert.Equal(t, "WEB-003", *third.CaseCode)
}

func TestTestCaseRepository_CodesGrowPastThreeDigits(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestCaseRepository(db)
	project := createProject(t, db, "WEBSITE-REDESIGN", "Website Redesign")

	require.NoError(t, db.Create(&model.CaseCodeCounter{Scope: project.ID, Next: 1000}).Error)

	tc := &model.TestCase{ProjectID: &project.ID, Title: "Thousandth"}
	require.NoError(t, repo.Create(tc))
	assert.Equal(t, "WEB-1000", *tc.CaseCode)
}

func TestTestCaseRepository_UpdateReplacesSteps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestCaseRepository(db)
	project := createProject(t, db, "WEBSITE-REDESIGN", "Website Redesign")

	tc := &model.TestCase{
		ProjectID: &project.ID,
		Title:     "Checkout flow",
		Steps: []model.TestStep{
			{StepNumber: 1, Action: "Open cart"},
			{StepNumber: 2, Action: "Click checkout"},
		},
	}
	require.NoError(t, repo.Create(tc))
	originalCode := *tc.CaseCode

	replacement := []model.TestStep{{StepNumber: 1, Action: "Open cart via header"}}
	tc.Title = "Checkout flow v2"
	require.NoError(t, repo.Update(tc, &replacement))

	reloaded, err := repo.FindByID(tc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout flow v2", reloaded.Title)
	require.Len(t, reloaded.Steps, 1)
	assert.Equal(t, "Open cart via header", reloaded.Steps[0].Action)
	require.NotNil(t, reloaded.CaseCode)
	assert.Equal(t, originalCode, *reloaded.CaseCode)

	// An empty non-nil slice clears the steps.
	empty := []model.TestStep{}
	require.NoError(t, repo.Update(reloaded, &empty))
	reloaded, err = repo.FindByID(tc.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Steps)

	// A nil slice leaves the steps untouched.
	again := []model.TestStep{{StepNumber: 1, Action: "Open cart"}}
	require.NoError(t, repo.Update(reloaded, &again))
	reloaded.Title = "Checkout flow v3"
	require.NoError(t, repo.Update(reloaded, nil))
	reloaded, err = repo.FindByID(tc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout flow v3", reloaded.Title)
	assert.Len(t, reloaded.Steps, 1)
}

func TestTestCaseRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestCaseRepository(db)
	project := createProject(t, db, "WEBSITE-REDESIGN", "Website Redesign")

	cases := []*model.TestCase{
		{ProjectID: &project.ID, Title: "A", Status: model.StatusTodo, Priority: model.PriorityHigh, Module: "auth"},
		{ProjectID: &project.ID, Title: "B", Status: model.StatusTodo, Priority: model.PriorityLow, Module: "auth"},
		{ProjectID: &project.ID, Title: "C", Status: model.StatusResolved, Priority: model.PriorityHigh, Module: "cart"},
	}
	for _, tc := range cases {
		require.NoError(t, repo.Create(tc))
	}

	total, byStatus, byPriority, byModule, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, byStatus[model.StatusTodo])
	assert.Equal(t, 1, byStatus[model.StatusResolved])
	assert.Equal(t, 2, byPriority[model.PriorityHigh])
	assert.Equal(t, 2, byModule["auth"])
	assert.Equal(t, 1, byModule["cart"])
}
