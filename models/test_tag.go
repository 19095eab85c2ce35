package models

// TestTag is the join table between tests and tags. It is registered with
// SetupJoinTable so association replaces go through this model.
type TestTag struct {
	TestID uint `json:"test_id" gorm:"primaryKey"`
	TagID  uint `json:"tag_id" gorm:"primaryKey"`
}
