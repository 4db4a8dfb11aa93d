package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/shoplyhq/shoply/internal/account/entity"
	"github.com/shoplyhq/shoply/internal/pkg/clock"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/hash"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/jwt"
	"github.com/shoplyhq/shoply/internal/pkg/otp"
	"github.com/shoplyhq/shoply/internal/pkg/uid"
	"github.com/shoplyhq/shoply/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserRegisteredEvent struct {
	UserID    int64
	Email     string
	FirstName string
	OtpCode   string
	OtpToken  string
	ExpiresIn time.Duration
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoEmail interface {
	SendOtp(ctx context.Context, to, firstName, code, token string, ttl time.Duration) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetOtpUserByToken(ctx context.Context, token string) (*entity.OtpUser, error)

	CreateUser(ctx context.Context, user entity.NewUser, hash string) error
	CreateOtpRecord(ctx context.Context, rec entity.OtpRecord) error

	ActivateUser(ctx context.Context, userID int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	repoEmail     repoEmail
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uid           uid.NumberID
	uuid          uid.StringID
	otp           otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	RepoEmail     repoEmail
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UID           uid.NumberID
	UUID          uid.StringID
	OTP           otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		repoEmail:     dep.RepoEmail,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		uuid:          dep.UUID,
		otp:           dep.OTP,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	ttl := s.cfg.GetMinute("modules.account.otp_ttl_minutes")
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return ttl
}

func (s *Usecase) cookieSameSite() http.SameSite {
	switch s.cfg.GetString("jwt.cookie.same_site") {
	case "None":
		return http.SameSiteNoneMode
	case "Strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}

func (s *Usecase) accessCookieName() string {
	if name := s.cfg.GetString("jwt.cookie.access_name"); name != "" {
		return name
	}
	return "access"
}

func (s *Usecase) refreshCookieName() string {
	if name := s.cfg.GetString("jwt.cookie.refresh_name"); name != "" {
		return name
	}
	return "refresh"
}

func (s *Usecase) newCookie(name, value string, maxAge time.Duration) *http.Cookie {
	path := s.cfg.GetString("jwt.cookie.path")
	if path == "" {
		path = "/"
	}

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Secure:   s.cfg.GetBool("jwt.cookie.secure"),
		HttpOnly: s.cfg.GetBool("jwt.cookie.http_only"),
		SameSite: s.cookieSameSite(),
	}
	if maxAge < 0 {
		c.MaxAge = -1
	} else {
		c.MaxAge = int(maxAge.Seconds())
	}
	return c
}

func (s *Usecase) accessCookie(token string) *http.Cookie {
	return s.newCookie(s.accessCookieName(), token, s.cfg.GetMinute("jwt.access_ttl_minutes"))
}

func (s *Usecase) refreshCookie(token string) *http.Cookie {
	return s.newCookie(s.refreshCookieName(), token, s.cfg.GetDay("jwt.refresh_ttl_days"))
}

// sessionCookies is the single place cookie-wrapped token pairs are built.
func (s *Usecase) sessionCookies(access, refresh string) []*http.Cookie {
	return []*http.Cookie{s.accessCookie(access), s.refreshCookie(refresh)}
}

func (s *Usecase) expiredSessionCookies() []*http.Cookie {
	return []*http.Cookie{
		s.newCookie(s.accessCookieName(), "", -1),
		s.newCookie(s.refreshCookieName(), "", -1),
	}
}

func (s *Usecase) issuePair(userID int64, email string) (access, refresh string, err error) {
	access, err = s.jwt.Generate(jwt.KindAccess, userID, email)
	if err != nil {
		return "", "", err
	}

	refresh, err = s.jwt.Generate(jwt.KindRefresh, userID, email)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}
