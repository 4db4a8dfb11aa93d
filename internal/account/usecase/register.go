package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shoplyhq/shoply/internal/account/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

type RegisterInput struct {
	Email       string `validate:"required,email"`
	UserName    string `validate:"required,min=3,max=150"`
	FirstName   string `validate:"required,max=150"`
	LastName    string `validate:"required,max=150"`
	PhoneNumber string `validate:"omitempty,max=32"`
	Password    string `validate:"required,password"`
}

type RegisterOutput struct {
	User entity.User
}

// Register creates an inactive account and issues its first verification
// code. The verification email travels through the message broker; a publish
// failure is logged and the registration still succeeds, exactly like a mail
// outage must not roll back the signup.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.UserName = strings.TrimSpace(in.UserName)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewInvalidInput(nil, "email", "user account with this email address already exists.")
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:          s.uid.Generate(),
		Email:       in.Email,
		UserName:    in.UserName,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Role:        s.cfg.GetString("modules.account.default_role"),
	}

	if err := s.repoDB.CreateUser(ctx, newUser, string(hashedPassword)); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewInvalidInput(nil, "email", "user account with this email address already exists.")
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", newUser.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	record, err := s.issueOtp(ctx, newUser.ID)
	if err != nil {
		// The account exists; the user can still request a resend.
		slog.ErrorContext(ctx, "failed to issue verification code after signup", "user_id", newUser.ID, "error", err)
	} else if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
		UserID:    newUser.ID,
		Email:     newUser.Email,
		FirstName: newUser.FirstName,
		OtpCode:   record.Code,
		OtpToken:  record.Token,
		ExpiresIn: s.otpTTL(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user registered event", "user_id", newUser.ID, "error", err)
	}

	now := s.clock.Now()
	return &RegisterOutput{User: entity.User{
		ID:          newUser.ID,
		Email:       newUser.Email,
		UserName:    newUser.UserName,
		FirstName:   newUser.FirstName,
		LastName:    newUser.LastName,
		PhoneNumber: newUser.PhoneNumber,
		Role:        newUser.Role,
		IsActive:    false,
		CreatedAt:   now,
	}}, nil
}

// issueOtp generates a fresh code/token pair and appends the record. Prior
// records for the user are left untouched.
func (s *Usecase) issueOtp(ctx context.Context, userID int64) (*entity.OtpRecord, error) {
	code, err := s.otp.Code()
	if err != nil {
		return nil, err
	}

	token, err := s.otp.Token()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	record := entity.OtpRecord{
		ID:        s.uid.Generate(),
		UserID:    userID,
		Code:      code,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.otpTTL()),
	}

	if err := s.repoDB.CreateOtpRecord(ctx, record); err != nil {
		return nil, err
	}

	return &record, nil
}
