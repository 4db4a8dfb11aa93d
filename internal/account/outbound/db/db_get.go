package db

import (
	"context"

	"github.com/shoplyhq/shoply/internal/account/entity"
)

const queryGetUserByEmail = `
SELECT id, email, user_name, first_name, last_name, phone_number, role,
       is_active, is_staff, is_superuser, password, created_at
FROM users
WHERE email = $1`

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByEmail, email).Scan(
		&user.ID, &user.Email, &user.UserName, &user.FirstName, &user.LastName,
		&user.PhoneNumber, &user.Role, &user.IsActive, &user.IsStaff,
		&user.IsSuperuser, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

const queryGetUserByID = `
SELECT id, email, user_name, first_name, last_name, phone_number, role,
       is_active, is_staff, is_superuser, password, created_at
FROM users
WHERE id = $1`

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByID, id).Scan(
		&user.ID, &user.Email, &user.UserName, &user.FirstName, &user.LastName,
		&user.PhoneNumber, &user.Role, &user.IsActive, &user.IsStaff,
		&user.IsSuperuser, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

const queryGetOtpUserByToken = `
SELECT o.id, o.code, o.expires_at, u.id, u.email, u.first_name, u.is_active
FROM otp_tokens o
JOIN users u ON u.id = o.user_id
WHERE o.token = $1`

func (s *DB) GetOtpUserByToken(ctx context.Context, token string) (_ *entity.OtpUser, err error) {
	ctx, span := s.startSpan(ctx, "GetOtpUserByToken")
	defer func() { s.endSpan(span, err) }()

	var rec entity.OtpUser
	err = s.conn.QueryRow(ctx, queryGetOtpUserByToken, token).Scan(
		&rec.RecordID, &rec.Code, &rec.ExpiresAt,
		&rec.UserID, &rec.UserEmail, &rec.UserFirstName, &rec.UserIsActive,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &rec, nil
}
