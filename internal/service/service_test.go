package service

import (
	"testing"

	"github.com/hoangnln/testtrack/config"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWT{
			Secret:     "unit-test-secret",
			AccessTTL:  3600,
			RefreshTTL: 604800,
		},
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, active bool) *model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleTester,
		IsActive:     active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, code string) *model.Project {
	project := &model.Project{Code: code, Name: code + " project", IsActive: true}
	require.NoError(t, db.Create(project).Error)
	return project
}
