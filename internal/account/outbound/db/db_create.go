package db

import (
	"context"

	"github.com/shoplyhq/shoply/internal/account/entity"
)

const queryCreateUser = `
INSERT INTO users (id, email, user_name, first_name, last_name, phone_number, role,
                   is_active, is_staff, is_superuser, password)
VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, FALSE, FALSE, $8)`

// CreateUser inserts an inactive account. A unique violation on email maps
// to goerror.ErrConflict.
func (s *DB) CreateUser(ctx context.Context, user entity.NewUser, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateUser,
		user.ID, user.Email, user.UserName, user.FirstName, user.LastName,
		user.PhoneNumber, user.Role, hash,
	)
	return s.mapError(err)
}

const queryCreateOtpRecord = `
INSERT INTO otp_tokens (id, user_id, code, token, created_at, expires_at, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// CreateOtpRecord appends a code+token record. Prior records for the same
// user are left untouched.
func (s *DB) CreateOtpRecord(ctx context.Context, rec entity.OtpRecord) (err error) {
	ctx, span := s.startSpan(ctx, "CreateOtpRecord")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateOtpRecord,
		rec.ID, rec.UserID, rec.Code, rec.Token, rec.CreatedAt, rec.ExpiresAt, rec.Metadata,
	)
	return s.mapError(err)
}
