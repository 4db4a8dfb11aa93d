package inbound

import (
	"context"
	"testing"
	"time"

	"github.com/shoplyhq/shoply/internal/notification/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	inputs []usecase.ConsumeUserRegisteredInput
	cids   []string
}

func (f *fakeUsecase) ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error {
	f.inputs = append(f.inputs, in)
	f.cids = append(f.cids, instrument.GetCorrelationID(ctx))
	return nil
}

type fixedUUID struct{ id string }

func (g fixedUUID) Generate() string { return g.id }

type fakeMessage struct {
	body    []byte
	headers []messaging.Header
}

func (m *fakeMessage) Body() []byte                  { return m.body }
func (m *fakeMessage) Key() []byte                   { return nil }
func (m *fakeMessage) Headers() []messaging.Header   { return m.headers }
func (m *fakeMessage) Attributes() map[string]string { return nil }
func (m *fakeMessage) ID() string                    { return "msg-1" }
func (m *fakeMessage) Topic() string                 { return "user_registered" }
func (m *fakeMessage) Subject() string               { return "user_registered" }
func (m *fakeMessage) Timestamp() time.Time          { return time.Time{} }
func (m *fakeMessage) Ack(context.Context) error     { return nil }

func newTestHandler() (*MQHandler, *fakeUsecase) {
	uc := &fakeUsecase{}
	h := &MQHandler{
		uc:   uc,
		uuid: fixedUUID{id: "generated-cid"},
		ins:  instrument.NewNoop(),
	}
	return h, uc
}

func TestUserRegisteredNotification(t *testing.T) {
	t.Run("ValidPayload", func(t *testing.T) {
		h, uc := newTestHandler()

		msg := &fakeMessage{
			body: []byte(`{
				"user_id": 7,
				"email": "jane.doe@example.com",
				"first_name": "Jane",
				"otp_code": "042137",
				"otp_token": "tok_0123456789abcdefghijklmnopqrstu",
				"expires_in_seconds": 300
			}`),
			headers: []messaging.Header{{Key: "cID", Value: []byte("req-123")}},
		}

		require.NoError(t, h.UserRegisteredNotification(t.Context(), msg))

		require.Len(t, uc.inputs, 1)
		in := uc.inputs[0]
		assert.Equal(t, int64(7), in.UserID)
		assert.Equal(t, "jane.doe@example.com", in.Email)
		assert.Equal(t, "042137", in.OtpCode)
		assert.Equal(t, int64(300), in.ExpiresIn)
		assert.Equal(t, "req-123", uc.cids[0])
	})

	t.Run("MissingCorrelationHeader", func(t *testing.T) {
		h, uc := newTestHandler()

		msg := &fakeMessage{body: []byte(`{"user_id": 7, "email": "jane.doe@example.com"}`)}
		require.NoError(t, h.UserRegisteredNotification(t.Context(), msg))

		require.Len(t, uc.cids, 1)
		assert.Equal(t, "generated-cid", uc.cids[0])
	})

	t.Run("MalformedBodyDropped", func(t *testing.T) {
		h, uc := newTestHandler()

		msg := &fakeMessage{body: []byte("not json")}
		require.NoError(t, h.UserRegisteredNotification(t.Context(), msg))
		assert.Empty(t, uc.inputs)
	})
}
