package httpt_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onexocoder/Escova/internal/repository"
	"github.com/onexocoder/Escova/internal/service"
	httpt "github.com/onexocoder/Escova/internal/transport/http"
	"github.com/onexocoder/Escova/internal/validation"
	"github.com/onexocoder/Escova/pkg/logger"
	"github.com/onexocoder/Escova/pkg/mail"
	mock_mail "github.com/onexocoder/Escova/pkg/mail/mock"
	"github.com/onexocoder/Escova/pkg/metric"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const _adminEmail = "dono@petbrush.pt"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler(t *testing.T, mailer mail.Mailer) *httpt.OrderHandler {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)

	metrics := metric.NewFactory()
	log := logger.NewNop()

	orderSvc := service.NewOrderService(
		repository.NewMemoryOrderRepository(),
		v,
		log,
	)
	notifySvc := service.NewNotificationService(
		mailer,
		metrics.Mail(),
		log,
		"PetBrush <onboarding@resend.dev>",
		_adminEmail,
	)

	return httpt.NewOrderHandler(orderSvc, notifySvc, log, metrics.HTTP())
}

func performRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validOrderPayload() map[string]any {
	return map[string]any{
		"name":       "João Silva",
		"phone":      "912345678",
		"address":    "Rua da Liberdade, 123, 2º Esq",
		"postalCode": "1000-001",
		"quantity":   2,
	}
}

func TestCreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestHandler(t, mock_mail.NewMockMailer(ctrl))
	router := h.Engine()

	w := performRequest(router, http.MethodPost, "/api/orders", validOrderPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Order   struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Message)
	require.NotEmpty(t, resp.Order.ID)
	require.Equal(t, "João Silva", resp.Order.Name)
	require.Equal(t, 2, resp.Order.Quantity)

	w = performRequest(router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Orders []struct {
			ID string `json:"id"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Orders, 1)
	require.Equal(t, resp.Order.ID, listResp.Orders[0].ID)
}

func TestCreateOrderValidationFailures(t *testing.T) {
	testCases := []struct {
		desc        string
		mutate      func(payload map[string]any)
		wantMessage string
	}{
		{
			desc:        "postal code without hyphen",
			mutate:      func(p map[string]any) { p["postalCode"] = "1000001" },
			wantMessage: "Código postal inválido",
		},
		{
			desc:        "quantity above maximum",
			mutate:      func(p map[string]any) { p["quantity"] = 11 },
			wantMessage: "Máximo 10 unidades",
		},
		{
			desc:        "quantity zero",
			mutate:      func(p map[string]any) { p["quantity"] = 0 },
			wantMessage: "Quantidade deve ser pelo menos 1",
		},
		{
			desc:        "name too short",
			mutate:      func(p map[string]any) { p["name"] = "J" },
			wantMessage: "Nome deve ter pelo menos 2 caracteres",
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := newTestHandler(t, mock_mail.NewMockMailer(ctrl))
			router := h.Engine()

			payload := validOrderPayload()
			tC.mutate(payload)

			w := performRequest(router, http.MethodPost, "/api/orders", payload)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.False(t, resp.Success)
			require.Contains(t, resp.Message, tC.wantMessage)

			// A rejected candidate must leave the collection untouched.
			w = performRequest(router, http.MethodGet, "/api/orders", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var listResp struct {
				Orders []json.RawMessage `json:"orders"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
			require.Empty(t, listResp.Orders)
		})
	}
}

func TestCreateOrderMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestHandler(t, mock_mail.NewMockMailer(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.Engine().ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrdersEmptyAndOrdered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestHandler(t, mock_mail.NewMockMailer(ctrl))
	router := h.Engine()

	w := performRequest(router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Orders []struct {
			Name string `json:"name"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Empty(t, listResp.Orders)

	for _, name := range []string{"Ana Costa", "Bruno Dias", "Carla Melo"} {
		payload := validOrderPayload()
		payload["name"] = name
		w = performRequest(router, http.MethodPost, "/api/orders", payload)
		require.Equal(t, http.StatusCreated, w.Code)

		// Interleave reads; they must not disturb creation order.
		w = performRequest(router, http.MethodGet, "/api/orders", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = performRequest(router, http.MethodGet, "/api/orders", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Orders, 3)
	require.Equal(t, "Ana Costa", listResp.Orders[0].Name)
	require.Equal(t, "Bruno Dias", listResp.Orders[1].Name)
	require.Equal(t, "Carla Melo", listResp.Orders[2].Name)
}

func TestNotify(t *testing.T) {
	notifyPayload := func(emailCliente string) map[string]any {
		return map[string]any{
			"nome":         "João Silva",
			"telefone":     "912345678",
			"morada":       "Rua da Liberdade, 123, 2º Esq",
			"codigoPostal": "1000-001",
			"quantidade":   2,
			"emailCliente": emailCliente,
		}
	}

	t.Run("WithoutCustomerEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := mock_mail.NewMockMailer(ctrl)

		var sentTo []string
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mail.Message) error {
				sentTo = append(sentTo, msg.To)
				return nil
			}).Times(1)

		h := newTestHandler(t, mailer)

		w := performRequest(h.Engine(), http.MethodPost, "/api/notify", notifyPayload(""))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			OK bool `json:"ok"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, resp.OK)
		require.Equal(t, []string{_adminEmail}, sentTo)
	})

	t.Run("WithCustomerEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := mock_mail.NewMockMailer(ctrl)

		var sentTo []string
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mail.Message) error {
				sentTo = append(sentTo, msg.To)
				return nil
			}).Times(2)

		h := newTestHandler(t, mailer)

		w := performRequest(h.Engine(), http.MethodPost, "/api/notify",
			notifyPayload("cliente@example.pt"))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, []string{_adminEmail, "cliente@example.pt"}, sentTo)
	})

	t.Run("AdminFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := mock_mail.NewMockMailer(ctrl)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(context.DeadlineExceeded).Times(1)

		h := newTestHandler(t, mailer)

		w := performRequest(h.Engine(), http.MethodPost, "/api/notify", notifyPayload(""))
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp struct {
			OK      bool   `json:"ok"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.False(t, resp.OK)
		require.NotEmpty(t, resp.Message)
	})
}
