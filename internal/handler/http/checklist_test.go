package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rookgm/bobis/internal/handler/http/mocks"
	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistHandler_Select(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockChecklistService
		wantStatusCode int
	}{
		{
			// 200 — solicitud procesada;
			name: "valid_request_return_200",
			body: `{"id_pedido":31}`,
			setup: func(t *testing.T) *mocks.MockChecklistService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockChecklistService(ctrl)
				svcMock.EXPECT().Select(gomock.Any(), operator, int64(31)).
					Return(&service.ChecklistView{Order: &models.PendingOrder{ID: 31}}, nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// 400 — formato de solicitud inválido;
			name: "bad_body_return_400",
			body: `{"id_pedido":"x"}`,
			setup: func(t *testing.T) *mocks.MockChecklistService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockChecklistService(ctrl)
				svcMock.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 404 — pedido no pendiente;
			name: "not_pending_return_404",
			body: `{"id_pedido":8}`,
			setup: func(t *testing.T) *mocks.MockChecklistService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockChecklistService(ctrl)
				svcMock.EXPECT().Select(gomock.Any(), operator, int64(8)).
					Return(nil, models.ErrDataNotFound).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			// 502 — backend inalcanzable o con error.
			name: "backend_down_return_502",
			body: `{"id_pedido":31}`,
			setup: func(t *testing.T) *mocks.MockChecklistService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockChecklistService(ctrl)
				svcMock.EXPECT().Select(gomock.Any(), operator, int64(31)).
					Return(nil, &models.ConnectionError{Err: errors.New("refused")}).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/checklist/pedido", strings.NewReader(tt.body))
			req = withAccount(req, &operator)
			w := httptest.NewRecorder()

			h := NewChecklistHandler(tt.setup(t)).Select()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestChecklistHandler_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcMock := mocks.NewMockChecklistService(ctrl)
	svcMock.EXPECT().Toggle(operator, int64(3)).
		Return(&service.ChecklistView{Verified: 1, Total: 2}, nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/checklist/bobinas/3/toggle", nil)
	req = withURLParam(withAccount(req, &operator), "id", "3")
	w := httptest.NewRecorder()

	NewChecklistHandler(svcMock).Toggle()(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got service.ChecklistView
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, 1, got.Verified)
	assert.Equal(t, 2, got.Total)
}

func TestChecklistHandler_Confirm(t *testing.T) {
	tests := []struct {
		name           string
		account        *models.Account
		setup          func(t *testing.T) *mocks.MockChecklistService
		wantStatusCode int
		wantError      string
	}{
		{
			// 200 — despacho confirmado;
			name:    "all_verified_return_200",
			account: &operator,
			setup: func(t *testing.T) *mocks.MockChecklistService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockChecklistService(ctrl)
				svcMock.EXPECT().Confirm(gomock.Any(), operator).
					Return(&models.DispatchRecord{OrderID: 31, ConfirmedBy: "Ana"}, nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// 401 — no autenticado;
			name: "no_account_return_401",
			setup: func(t *testing.T) *mocks.MockChecklistService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockChecklistService(ctrl)
				svcMock.EXPECT().Confirm(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			// 422 — faltan bobinas por verificar;
			name:    "not_all_verified_return_422",
			account: &operator,
			setup: func(t *testing.T) *mocks.MockChecklistService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockChecklistService(ctrl)
				svcMock.EXPECT().Confirm(gomock.Any(), operator).
					Return(nil, models.NewValidationError(models.MsgNotAllVerified)).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      models.MsgNotAllVerified,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/checklist/confirmar", nil)
			req = withAccount(req, tt.account)
			w := httptest.NewRecorder()

			h := NewChecklistHandler(tt.setup(t)).Confirm()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantError != "" {
				var resp errorResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}
