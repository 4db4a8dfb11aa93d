package db

import "context"

const queryActivateUser = `
UPDATE users SET is_active = TRUE WHERE id = $1`

// ActivateUser flips is_active on. The update is idempotent so a second
// verification of an already-active account is a no-op.
func (s *DB) ActivateUser(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "ActivateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryActivateUser, userID)
	return s.mapError(err)
}
