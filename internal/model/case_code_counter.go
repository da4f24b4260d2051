package model

// CaseCodeCounter holds the next sequence number for one case-code scope
// (a project ID, or ScopeNone for cases that belong to no project).
//
// The counter only moves forward, so a code freed by deleting a test case is
// never handed out again. The first allocation in a scope seeds the counter
// from the highest existing code, which keeps sequences intact for rows that
// predate the counter table.
type CaseCodeCounter struct {
	Scope string `gorm:"primaryKey" json:"scope"`
	Next  int    `json:"next" gorm:"not null"`
}

// ScopeNone is the counter scope for test cases without a project.
const ScopeNone = "none"
