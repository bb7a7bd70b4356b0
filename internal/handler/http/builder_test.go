package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/rookgm/bobis/internal/handler/http/mocks"
	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderHandler_Select(t *testing.T) {
	tests := []struct {
		name           string
		account        *models.Account
		body           string
		setup          func(t *testing.T) *mocks.MockBuilderService
		wantStatusCode int
	}{
		{
			// 200 — solicitud procesada;
			name:    "click_return_200",
			account: &operator,
			body:    `{"id_registro":3}`,
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Select(operator, int64(3), service.SelectClick).
					Return(&service.BuilderView{State: service.BuilderBuilding}, nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "drag_return_200",
			account: &operator,
			body:    `{"id_registro":3,"origen":"drag"}`,
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Select(operator, int64(3), service.SelectDrag).
					Return(&service.BuilderView{State: service.BuilderBuilding}, nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// 400 — formato de solicitud inválido;
			name:    "missing_id_return_400",
			account: &operator,
			body:    `{}`,
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 401 — no autenticado;
			name: "no_account_return_401",
			body: `{"id_registro":3}`,
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			// 404 — bobina no disponible;
			name:    "unavailable_coil_return_404",
			account: &operator,
			body:    `{"id_registro":99}`,
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Select(operator, int64(99), service.SelectClick).
					Return(nil, models.ErrDataNotFound).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			// 422 — pedido en envío.
			name:    "submitting_return_422",
			account: &operator,
			body:    `{"id_registro":3}`,
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Select(operator, int64(3), service.SelectClick).
					Return(nil, models.NewValidationError(models.MsgOrderSubmitting)).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pedidos/builder/seleccion", strings.NewReader(tt.body))
			req = withAccount(req, tt.account)
			w := httptest.NewRecorder()

			ctrl := gomock.NewController(t)
			h := NewBuilderHandler(tt.setup(t), mocks.NewMockOrderQueryService(ctrl)).Select()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestBuilderHandler_Submit(t *testing.T) {
	order := &models.PendingOrder{
		ID:        31,
		Status:    models.OrderStatusSent,
		Requester: "Ana",
		Coils: []models.ChecklistEntry{
			{CoilID: 3, Weight: decimal.RequireFromString("1500.25")},
		},
	}

	tests := []struct {
		name           string
		setup          func(t *testing.T) *mocks.MockBuilderService
		wantStatusCode int
		wantOrder      *models.PendingOrder
	}{
		{
			// 201 — pedido creado y pendiente de despacho;
			name: "valid_request_return_201",
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Submit(gomock.Any(), operator).Return(order, nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusCreated,
			wantOrder:      order,
		},
		{
			// 422 — ninguna bobina seleccionada;
			name: "empty_selection_return_422",
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Submit(gomock.Any(), operator).
					Return(nil, models.NewValidationError(models.MsgEmptySelection)).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			// 502 — backend inalcanzable o con error.
			name: "backend_down_return_502",
			setup: func(t *testing.T) *mocks.MockBuilderService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockBuilderService(ctrl)
				svcMock.EXPECT().Submit(gomock.Any(), operator).
					Return(nil, &models.ConnectionError{Err: errors.New("refused")}).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pedidos", nil)
			req = withAccount(req, &operator)
			w := httptest.NewRecorder()

			ctrl := gomock.NewController(t)
			h := NewBuilderHandler(tt.setup(t), mocks.NewMockOrderQueryService(ctrl)).Submit()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantOrder != nil {
				var got models.PendingOrder
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				if diff := cmp.Diff(*tt.wantOrder, got); diff != "" {
					t.Errorf("order mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestBuilderHandler_Deselect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcMock := mocks.NewMockBuilderService(ctrl)
	svcMock.EXPECT().Deselect(operator, int64(3)).Return(&service.BuilderView{State: service.BuilderIdle}, nil).Times(1)

	h := NewBuilderHandler(svcMock, mocks.NewMockOrderQueryService(ctrl)).Deselect()

	req := httptest.NewRequest(http.MethodDelete, "/api/pedidos/builder/seleccion/3", nil)
	req = withURLParam(withAccount(req, &operator), "id", "3")
	w := httptest.NewRecorder()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got service.BuilderView
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, service.BuilderIdle, got.State)
}

func TestBuilderHandler_Detail(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setup          func(t *testing.T) *mocks.MockOrderQueryService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_200",
			id:   "31",
			setup: func(t *testing.T) *mocks.MockOrderQueryService {
				ctrl := gomock.NewController(t)
				qMock := mocks.NewMockOrderQueryService(ctrl)
				qMock.EXPECT().OrderDetail(gomock.Any(), int64(31)).Return([]models.Coil{{ID: 3}}, nil).Times(1)
				return qMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "bad_id_return_400",
			id:   "-1",
			setup: func(t *testing.T) *mocks.MockOrderQueryService {
				ctrl := gomock.NewController(t)
				qMock := mocks.NewMockOrderQueryService(ctrl)
				qMock.EXPECT().OrderDetail(gomock.Any(), gomock.Any()).Times(0)
				return qMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "backend_error_return_502",
			id:   "31",
			setup: func(t *testing.T) *mocks.MockOrderQueryService {
				ctrl := gomock.NewController(t)
				qMock := mocks.NewMockOrderQueryService(ctrl)
				qMock.EXPECT().OrderDetail(gomock.Any(), int64(31)).
					Return(nil, models.NewServerError(http.StatusInternalServerError, "")).Times(1)
				return qMock
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/pedidos/"+tt.id+"/detalle", nil)
			req = withURLParam(req, "id", tt.id)
			w := httptest.NewRecorder()

			ctrl := gomock.NewController(t)
			h := NewBuilderHandler(mocks.NewMockBuilderService(ctrl), tt.setup(t)).Detail()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}
