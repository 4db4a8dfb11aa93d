package usecase

import (
	"context"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/clock"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/idempotency"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/storage"
	"github.com/shoplyhq/shoply/internal/pkg/uid"
	"github.com/shoplyhq/shoply/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, cat entity.Category) error
	UpdateCategory(ctx context.Context, cat entity.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, p entity.Product) error
	UpdateProduct(ctx context.Context, p entity.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	UpdateProductImage(ctx context.Context, id int64, imageURL string) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	oid       uid.StringID
	clock     clock.Clocker
	idemp     idempotency.Idempotency
	storage   storage.Storage
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	Validator   validator.Validator
	Config      config.Config
	UID         uid.NumberID
	OID         uid.StringID
	Clock       clock.Clocker
	Idempotency idempotency.Idempotency
	Storage     storage.Storage
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		oid:       dep.OID,
		clock:     dep.Clock,
		idemp:     dep.Idempotency,
		storage:   dep.Storage,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}
