package config

import (
	"fmt"

	"gorm.io/gorm"
)

// UserScope is the per-request unit of work. It pins one connection by
// running everything inside a single transaction and sets the
// row-level-security session variable for the owning user.
//
// Run is re-entrant: nested service calls (plan generation invoking
// rationalization invoking the intake lookup) share the outer
// transaction, and the scoping variable is only reset when the depth
// counter returns to zero. Resetting earlier would strip the outer
// call of its scope mid-flight.
type UserScope struct {
	db     *gorm.DB
	userID uint
	tx     *gorm.DB
	depth  int
	failed bool
}

func NewUserScope(db *gorm.DB, userID uint) *UserScope {
	return &UserScope{db: db, userID: userID}
}

func (s *UserScope) UserID() uint { return s.userID }

// Run executes fn inside the scoped transaction. The outermost Run
// commits on success and rolls back if any nested call returned an
// error. set_config/reset are Postgres-only and skipped elsewhere
// (sqlite test databases have no session variables).
func (s *UserScope) Run(fn func(tx *gorm.DB) error) error {
	if s.depth == 0 {
		tx := s.db.Begin()
		if tx.Error != nil {
			return tx.Error
		}
		if s.db.Dialector.Name() == "postgres" {
			if err := tx.Exec("select set_config('app.user_id', ?, false)", fmt.Sprint(s.userID)).Error; err != nil {
				tx.Rollback()
				return err
			}
		}
		s.tx = tx
		s.failed = false
	}
	s.depth++
	err := fn(s.tx)
	s.depth--
	if err != nil {
		s.failed = true
	}
	if s.depth == 0 {
		tx := s.tx
		s.tx = nil
		if s.db.Dialector.Name() == "postgres" {
			_ = tx.Exec("reset app.user_id").Error
		}
		if s.failed {
			tx.Rollback()
		} else if cerr := tx.Commit().Error; cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
