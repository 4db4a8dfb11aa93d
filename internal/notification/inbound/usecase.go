package inbound

import (
	"context"

	"github.com/shoplyhq/shoply/internal/notification/usecase"
)

type uc interface {
	ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error
}
