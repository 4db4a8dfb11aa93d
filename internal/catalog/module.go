package catalog

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shoplyhq/shoply/internal/catalog/inbound"
	"github.com/shoplyhq/shoply/internal/catalog/outbound/db"
	"github.com/shoplyhq/shoply/internal/catalog/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/clock"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/idempotency"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/router"
	"github.com/shoplyhq/shoply/internal/pkg/storage"
	"github.com/shoplyhq/shoply/internal/pkg/uid"
	"github.com/shoplyhq/shoply/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Storage     storage.Storage            `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	OID         uid.StringID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:      repoDB,
		Validator:   dep.Validator,
		Config:      dep.Config,
		UID:         dep.UID,
		OID:         dep.OID,
		Clock:       dep.Clock,
		Idempotency: dep.Idempotency,
		Storage:     dep.Storage,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
