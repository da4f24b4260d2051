package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hoangnln/testtrack/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fallbackPrefix is used for test cases that belong to no project.
const fallbackPrefix = "TC"

// codeAllocateAttempts bounds the insert-and-retry loop; the unique index on
// (project_id, case_code) turns a lost race into a retryable duplicate-key error.
const codeAllocateAttempts = 3

var caseCodeSuffix = regexp.MustCompile(`-(\d+)$`)

type TestCaseFilter struct {
	Status    string
	Priority  string
	Module    string
	Search    string
	ProjectID string
	Page      int
	Limit     int
}

type TestCaseRepository interface {
	// Create persists the case together with its steps and allocates its
	// case code; the code is never touched again after this call.
	Create(tc *model.TestCase) error
	FindByID(id string) (*model.TestCase, error)
	FindAll(filter TestCaseFilter) ([]model.TestCase, int64, error)
	// Update saves scalar fields; when steps is non-nil the existing steps are
	// deleted and replaced in the same transaction, even if the slice is empty.
	Update(tc *model.TestCase, steps *[]model.TestStep) error
	Delete(id string) error
	Stats() (total int, byStatus, byPriority, byModule map[string]int, err error)
}

type testCaseRepository struct {
	db *gorm.DB
}

func NewTestCaseRepository(db *gorm.DB) TestCaseRepository {
	return &testCaseRepository{db: db}
}

func (r *testCaseRepository) Create(tc *model.TestCase) error {
	var lastErr error
	for attempt := 0; attempt < codeAllocateAttempts; attempt++ {
		err := r.db.Transaction(func(tx *gorm.DB) error {
			code, err := nextCaseCode(tx, tc.ProjectID)
			if err != nil {
				return err
			}
			tc.CaseCode = &code
			return tx.Create(tc).Error
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		// Lost the race on the unique index; recompute and try again.
		tc.ID = ""
		tc.CaseCode = nil
		lastErr = err
	}
	return fmt.Errorf("case code allocation exhausted retries: %w", lastErr)
}

// nextCaseCode reserves the next sequence number for the case's scope and
// formats it as <prefix>-<number zero-padded to 3 digits>. The per-scope
// counter row is locked for the duration of the surrounding transaction, and
// only ever moves forward, so deleted codes are not reissued.
func nextCaseCode(tx *gorm.DB, projectID *string) (string, error) {
	prefix := fallbackPrefix
	scope := model.ScopeNone

	if projectID != nil {
		scope = *projectID
		var project model.Project
		if err := tx.Select("code").First(&project, "id = ?", *projectID).Error; err != nil {
			return "", fmt.Errorf("case code prefix lookup: %w", err)
		}
		if project.Code != "" {
			prefix = strings.ToUpper(project.Code)
			if len(prefix) > 3 {
				prefix = prefix[:3]
			}
		}
	}

	var counter model.CaseCodeCounter
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&counter, "scope = ?", scope).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First allocation in this scope: seed from the highest existing code
		// so sequences survive for rows that predate the counter table.
		counter = model.CaseCodeCounter{Scope: scope, Next: maxExistingSequence(tx, projectID) + 1}
		if err := tx.Create(&counter).Error; err != nil {
			return "", err
		}
	case err != nil:
		return "", err
	}

	seq := counter.Next
	if err := tx.Model(&model.CaseCodeCounter{}).
		Where("scope = ?", scope).
		Update("next", seq+1).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%03d", prefix, seq), nil
}

// maxExistingSequence scans the scope for the lexicographically greatest
// non-null case code and parses its trailing -<digits> suffix. Malformed
// codes count as sequence 0 rather than blocking allocation.
func maxExistingSequence(tx *gorm.DB, projectID *string) int {
	query := tx.Session(&gorm.Session{NewDB: true}).Model(&model.TestCase{}).
		Select("case_code").
		Where("case_code IS NOT NULL").
		Order("case_code DESC").
		Limit(1)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	} else {
		query = query.Where("project_id IS NULL")
	}

	var lastCode string
	if err := query.Scan(&lastCode).Error; err != nil || lastCode == "" {
		return 0
	}
	match := caseCodeSuffix.FindStringSubmatch(lastCode)
	if match == nil {
		return 0
	}
	seq, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return seq
}

func (r *testCaseRepository) FindByID(id string) (*model.TestCase, error) {
	var tc model.TestCase
	err := r.db.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("test_steps.step_number ASC")
	}).First(&tc, "id = ?", id).Error
	return &tc, err
}

func (r *testCaseRepository) FindAll(filter TestCaseFilter) ([]model.TestCase, int64, error) {
	query := r.db.Model(&model.TestCase{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Module != "" {
		query = query.Where("module = ?", filter.Module)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cases []model.TestCase
	err := query.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("test_steps.step_number ASC")
	}).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&cases).Error
	return cases, total, err
}

func (r *testCaseRepository) Update(tc *model.TestCase, steps *[]model.TestStep) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Steps", "case_code", "created_at").Save(tc).Error; err != nil {
			return err
		}
		if steps == nil {
			return nil
		}
		if err := tx.Where("test_case_id = ?", tc.ID).Delete(&model.TestStep{}).Error; err != nil {
			return err
		}
		for i := range *steps {
			(*steps)[i].TestCaseID = tc.ID
			if err := tx.Create(&(*steps)[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *testCaseRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_case_id = ?", id).Delete(&model.TestStep{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TestCase{}, "id = ?", id).Error
	})
}

func (r *testCaseRepository) Stats() (int, map[string]int, map[string]int, map[string]int, error) {
	var total int64
	if err := r.db.Model(&model.TestCase{}).Count(&total).Error; err != nil {
		return 0, nil, nil, nil, err
	}

	byStatus, err := r.groupCount("status")
	if err != nil {
		return 0, nil, nil, nil, err
	}
	byPriority, err := r.groupCount("priority")
	if err != nil {
		return 0, nil, nil, nil, err
	}
	byModule, err := r.groupCount("module")
	if err != nil {
		return 0, nil, nil, nil, err
	}
	return int(total), byStatus, byPriority, byModule, nil
}

func (r *testCaseRepository) groupCount(column string) (map[string]int, error) {
	var rows []struct {
		Key   string
		Count int
	}
	err := r.db.Model(&model.TestCase{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}
