package usecase

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shoplyhq/shoply/internal/account/entity"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/jwt"
	"github.com/shoplyhq/shoply/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
modules:
  account:
    otp_ttl_minutes: 5
    default_role: customer
jwt:
  access_ttl_minutes: 5
  refresh_ttl_days: 1
  cookie:
    access_name: access
    refresh_name: refresh
    path: /
    secure: true
    http_only: true
    same_site: Lax
`

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqNumberID struct{ next int64 }

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type fixedStringID struct{ id string }

func (f fixedStringID) Generate() string { return f.id }

type fakeOTP struct {
	code  string
	token string
}

func (f fakeOTP) Code() (string, error)  { return f.code, nil }
func (f fakeOTP) Token() (string, error) { return f.token, nil }

type fakeHash struct{}

func (fakeHash) Hash(plaintext string) ([]byte, error) { return []byte("h:" + plaintext), nil }
func (fakeHash) Verify(hashed, plaintext string) bool  { return hashed == "h:"+plaintext }

type fakeDB struct {
	usersByEmail map[string]*entity.User
	usersByID    map[int64]*entity.User
	otpByToken   map[string]*entity.OtpUser
	records      []entity.OtpRecord
	activated    []int64

	createUserErr error
	createOtpErr  error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		usersByEmail: make(map[string]*entity.User),
		usersByID:    make(map[int64]*entity.User),
		otpByToken:   make(map[string]*entity.OtpUser),
	}
}

func (f *fakeDB) addUser(user entity.User) {
	u := user
	f.usersByEmail[u.Email] = &u
	f.usersByID[u.ID] = &u
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := f.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := f.usersByID[id]; ok {
		return u, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) GetOtpUserByToken(_ context.Context, token string) (*entity.OtpUser, error) {
	if rec, ok := f.otpByToken[token]; ok {
		return rec, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) CreateUser(_ context.Context, user entity.NewUser, hash string) error {
	if f.createUserErr != nil {
		return f.createUserErr
	}
	if _, ok := f.usersByEmail[user.Email]; ok {
		return goerror.ErrConflict
	}
	f.addUser(entity.User{
		ID:          user.ID,
		Email:       user.Email,
		UserName:    user.UserName,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Password:    hash,
	})
	return nil
}

func (f *fakeDB) CreateOtpRecord(_ context.Context, rec entity.OtpRecord) error {
	if f.createOtpErr != nil {
		return f.createOtpErr
	}
	f.records = append(f.records, rec)

	user := f.usersByID[rec.UserID]
	f.otpByToken[rec.Token] = &entity.OtpUser{
		RecordID:      rec.ID,
		Code:          rec.Code,
		ExpiresAt:     rec.ExpiresAt,
		UserID:        rec.UserID,
		UserEmail:     user.Email,
		UserFirstName: user.FirstName,
		UserIsActive:  user.IsActive,
	}
	return nil
}

func (f *fakeDB) ActivateUser(_ context.Context, userID int64) error {
	f.activated = append(f.activated, userID)
	if u, ok := f.usersByID[userID]; ok {
		u.IsActive = true
	}
	return nil
}

type fakeMessaging struct {
	events []UserRegisteredEvent
	err    error
}

func (f *fakeMessaging) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, msg)
	return nil
}

type sentOtp struct {
	to    string
	code  string
	token string
}

type fakeEmail struct {
	sent []sentOtp
	err  error
}

func (f *fakeEmail) SendOtp(_ context.Context, to, _, code, token string, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentOtp{to: to, code: code, token: token})
	return nil
}

type testEnv struct {
	uc    *Usecase
	db    *fakeDB
	mq    *fakeMessaging
	email *fakeEmail
	clock fixedClock
	jwt   jwt.JWT
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, testConfigYAML)
}

func newTestEnvWithConfig(t *testing.T, configYAML string) *testEnv {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(configYAML))
	require.NoError(t, err)

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	now := time.Now()
	tokener, err := jwt.NewHS512(jwt.Config{
		Secret:     []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:     "shoply",
		Audiences:  []string{"shoply-web"},
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		Clock:      fixedClock{now: now},
		UUID:       fixedStringID{id: "jti"},
	})
	require.NoError(t, err)

	db := newFakeDB()
	mq := &fakeMessaging{}
	mail := &fakeEmail{}

	uc := New(Dependency{
		RepoDB:        db,
		RepoMessaging: mq,
		RepoEmail:     mail,
		Validator:     v10,
		Config:        cfg,
		Bcrypt:        fakeHash{},
		UID:           &seqNumberID{},
		UUID:          fixedStringID{id: "uuid"},
		OTP:           fakeOTP{code: "042137", token: "tok_0123456789abcdefghijklmnopqrstu"},
		Clock:         fixedClock{now: now},
		JWT:           tokener,
		Instrument:    instrument.NewNoop(),
	})

	return &testEnv{uc: uc, db: db, mq: mq, email: mail, clock: fixedClock{now: now}, jwt: tokener}
}

func requireBusinessError(t *testing.T, err error, msg string, status int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, msg, gerr.Msg())
	require.Equal(t, status, gerr.StatusCode())
}

func activeUser(id int64, email, password string) entity.User {
	return entity.User{
		ID:       id,
		Email:    email,
		UserName: "user" + strconv.FormatInt(id, 10),
		IsActive: true,
		Password: "h:" + password,
	}
}
