package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/onexocoder/Escova/internal/entity"
	"github.com/onexocoder/Escova/internal/service"
	"github.com/onexocoder/Escova/pkg/logger"
	"github.com/onexocoder/Escova/pkg/mail"
	mock_mail "github.com/onexocoder/Escova/pkg/mail/mock"
	"github.com/onexocoder/Escova/pkg/metric"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const (
	_testFrom       = "PetBrush <onboarding@resend.dev>"
	_testAdminEmail = "dono@petbrush.pt"
)

func generateFakeNotification(emailCliente string) *entity.Notification {
	return &entity.Notification{
		Nome:         "João Silva",
		Telefone:     "912345678",
		Morada:       "Rua da Liberdade, 123, 2º Esq",
		CodigoPostal: "1000-001",
		Quantidade:   2,
		EmailCliente: emailCliente,
	}
}

func newNotificationService(mailer mail.Mailer) *service.NotificationService {
	return service.NewNotificationService(
		mailer,
		metric.NewFactory().Mail(),
		logger.NewNop(),
		_testFrom,
		_testAdminEmail,
	)
}

func TestNotificationService_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminOnlyWhenNoCustomerEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := mock_mail.NewMockMailer(ctrl)

		var sentTo []string
		mailer.EXPECT().Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mail.Message) error {
				sentTo = append(sentTo, msg.To)
				return nil
			}).Times(1)

		ok := newNotificationService(mailer).Dispatch(ctx, generateFakeNotification(""))

		require.True(t, ok)
		require.Equal(t, []string{_testAdminEmail}, sentTo)
	})

	t.Run("AdminThenCustomer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := mock_mail.NewMockMailer(ctrl)

		var sentTo []string
		var subjects []string
		mailer.EXPECT().Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mail.Message) error {
				sentTo = append(sentTo, msg.To)
				subjects = append(subjects, msg.Subject)
				require.Equal(t, _testFrom, msg.From)
				return nil
			}).Times(2)

		ok := newNotificationService(mailer).
			Dispatch(ctx, generateFakeNotification("cliente@example.pt"))

		require.True(t, ok)
		require.Equal(t, []string{_testAdminEmail, "cliente@example.pt"}, sentTo)
		require.Contains(t, subjects[0], "Nova encomenda")
		require.Contains(t, subjects[1], "Recebemos a tua encomenda")
	})

	t.Run("AdminFailureStopsDispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := mock_mail.NewMockMailer(ctrl)
		mailer.EXPECT().Send(ctx, gomock.Any()).
			Return(errors.New("provider status 500")).Times(1)

		ok := newNotificationService(mailer).
			Dispatch(ctx, generateFakeNotification("cliente@example.pt"))

		require.False(t, ok)
	})

	t.Run("CustomerFailureStillSucceeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := mock_mail.NewMockMailer(ctrl)

		gomock.InOrder(
			mailer.EXPECT().Send(ctx, gomock.Any()).Return(nil),
			mailer.EXPECT().Send(ctx, gomock.Any()).
				Return(errors.New("invalid recipient")),
		)

		ok := newNotificationService(mailer).
			Dispatch(ctx, generateFakeNotification("not-really-an-email"))

		require.True(t, ok)
	})

	t.Run("CustomerAddressTakenAsIs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := mock_mail.NewMockMailer(ctrl)

		var sentTo []string
		mailer.EXPECT().Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mail.Message) error {
				sentTo = append(sentTo, msg.To)
				return nil
			}).Times(2)

		ok := newNotificationService(mailer).
			Dispatch(ctx, generateFakeNotification("whatever string"))

		require.True(t, ok)
		require.Equal(t, "whatever string", sentTo[1])
	})
}
