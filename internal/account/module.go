package account

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shoplyhq/shoply/internal/account/inbound"
	"github.com/shoplyhq/shoply/internal/account/outbound/db"
	"github.com/shoplyhq/shoply/internal/account/outbound/email"
	"github.com/shoplyhq/shoply/internal/account/outbound/mq"
	"github.com/shoplyhq/shoply/internal/account/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/clock"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/hash"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/jwt"
	"github.com/shoplyhq/shoply/internal/pkg/mail"
	"github.com/shoplyhq/shoply/internal/pkg/messaging"
	"github.com/shoplyhq/shoply/internal/pkg/otp"
	"github.com/shoplyhq/shoply/internal/pkg/router"
	"github.com/shoplyhq/shoply/internal/pkg/uid"
	"github.com/shoplyhq/shoply/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	repoEmail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMessaging: repoMsg,
		RepoEmail:     repoEmail,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		UUID:          dep.UUID,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config)

	return nil
}
