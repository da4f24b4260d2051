package repository

import (
	"testing"

	"github.com/hoangnln/testtrack/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with all tables migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Module{},
		&model.Version{},
		&model.TestCase{},
		&model.TestStep{},
		&model.TestRun{},
		&model.TestStepResult{},
		&model.Bug{},
		&model.BugComment{},
		&model.CaseCodeCounter{},
	)
	require.NoError(t, err)

	return db
}

func createProject(t *testing.T, db *gorm.DB, code, name string) *model.Project {
	project := &model.Project{Code: code, Name: name, IsActive: true}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         model.RoleTester,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string { return &s }
