package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBugService(t *testing.T) (BugService, *gorm.DB) {
	db := setupTestDB(t)
	return NewBugService(repository.NewBugRepository(db)), db
}

func TestBugService_CreateDefaults(t *testing.T) {
	svc, db := newBugService(t)
	reporter := createTestUser(t, db, "alice", "pw-not-used", true)

	bug, err := svc.Create(dto.CreateBugRequest{Title: "Crash on save"}, reporter.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, bug.Severity)
	assert.Equal(t, model.PriorityMedium, bug.Priority)
	assert.Equal(t, model.BugStatusOpen, bug.Status)
	assert.Equal(t, model.BugTypeFunctional, bug.Type)
	assert.Equal(t, reporter.ID, bug.CreatedBy)
	assert.Nil(t, bug.ResolvedAt)
}

func TestBugService_StatusTransitionsStampTimestamps(t *testing.T) {
	svc, db := newBugService(t)
	reporter := createTestUser(t, db, "alice", "pw-not-used", true)

	bug, err := svc.Create(dto.CreateBugRequest{Title: "Crash on save"}, reporter.ID)
	require.NoError(t, err)

	resolved := model.BugStatusResolved
	updated, err := svc.Update(bug.ID, dto.UpdateBugRequest{Status: &resolved})
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedAt)
	firstResolvedAt := *updated.ResolvedAt

	// Reopening and resolving again keeps the first resolution timestamp.
	open := model.BugStatusOpen
	_, err = svc.Update(bug.ID, dto.UpdateBugRequest{Status: &open})
	require.NoError(t, err)
	updated, err = svc.Update(bug.ID, dto.UpdateBugRequest{Status: &resolved})
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedAt)
	assert.True(t, updated.ResolvedAt.Equal(firstResolvedAt))

	closed := model.BugStatusClosed
	updated, err = svc.Update(bug.ID, dto.UpdateBugRequest{Status: &closed})
	require.NoError(t, err)
	assert.NotNil(t, updated.ClosedAt)
}

func TestBugService_AddComment(t *testing.T) {
	svc, db := newBugService(t)
	reporter := createTestUser(t, db, "alice", "pw-not-used", true)

	bug, err := svc.Create(dto.CreateBugRequest{Title: "Crash on save"}, reporter.ID)
	require.NoError(t, err)

	comment, err := svc.AddComment(bug.ID, reporter.ID, dto.AddBugCommentRequest{Comment: "reproduced on staging"})
	require.NoError(t, err)
	assert.Equal(t, "reproduced on staging", comment.Comment)
	assert.Equal(t, "alice", comment.Username)

	reloaded, err := svc.Get(bug.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Comments, 1)
	assert.Equal(t, "alice", reloaded.Comments[0].Username)
}

func TestBugService_AddCommentUnknownBug(t *testing.T) {
	svc, db := newBugService(t)
	reporter := createTestUser(t, db, "alice", "pw-not-used", true)

	_, err := svc.AddComment(uuid.NewString(), reporter.ID, dto.AddBugCommentRequest{Comment: "lost"})
	assert.ErrorIs(t, err, ErrNotFound)
}
