package mq

import (
	"context"
	"encoding/json"

	"github.com/shoplyhq/shoply/internal/account/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/messaging"
	"github.com/shoplyhq/shoply/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishUserRegistered(ctx context.Context, msg usecase.UserRegisteredEvent) error {
	ctx, span := m.ins.Tracer("account.outbound.mq").Start(ctx, "PublishUserRegistered")
	defer span.End()

	body, err := json.Marshal(event.UserRegisteredMessage{
		UserID:    msg.UserID,
		Email:     msg.Email,
		FirstName: msg.FirstName,
		OtpCode:   msg.OtpCode,
		OtpToken:  msg.OtpToken,
		ExpiresIn: int64(msg.ExpiresIn.Seconds()),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.UserRegisteredDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
