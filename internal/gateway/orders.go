package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rookgm/bobis/internal/models"
)

// CreateOrder creates dispatch order and returns its id
func (c *Client) CreateOrder(ctx context.Context, order *models.NewOrder) (int64, error) {
	// POST /pedidos
	env, err := c.do(ctx, http.MethodPost, nil, order, "pedidos")
	if err != nil {
		return 0, err
	}

	obj, err := env.object()
	if err != nil {
		return 0, err
	}

	id := obj.integer("id_pedido", "id")
	if id == 0 {
		return 0, models.NewServerError(http.StatusOK, "respuesta sin id_pedido")
	}
	return id, nil
}

// ListOrdersInProgress returns orders with status Borrador or Enviado
func (c *Client) ListOrdersInProgress(ctx context.Context) ([]models.Order, error) {
	// GET /pedidos/en-curso
	env, err := c.do(ctx, http.MethodGet, nil, nil, "pedidos", "en-curso")
	if err != nil {
		return nil, err
	}
	return ordersFrom(env)
}

// OrderHistory returns one page of orders, optionally filtered by status
func (c *Client) OrderHistory(ctx context.Context, page, perPage int, status models.OrderStatus) (*models.OrderPage, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	if status != "" {
		query.Set("estado", string(status))
	}

	// GET /pedidos/historial?page=&per_page=&estado=
	env, err := c.do(ctx, http.MethodGet, query, nil, "pedidos", "historial")
	if err != nil {
		return nil, err
	}

	orders, err := ordersFrom(env)
	if err != nil {
		return nil, err
	}
	total := env.total(len(orders))

	return &models.OrderPage{
		Orders:  orders,
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages(total, perPage),
	}, nil
}

// OrderDetail returns coils of order
func (c *Client) OrderDetail(ctx context.Context, id int64) ([]models.Coil, error) {
	// GET /pedidos/{id}/detalle
	env, err := c.do(ctx, http.MethodGet, nil, nil, "pedidos", strconv.FormatInt(id, 10), "detalle")
	if err != nil {
		return nil, err
	}

	rows, err := env.rows()
	if err != nil {
		return nil, err
	}
	return toCoils(rows), nil
}

// UpdateOrderStatus sets order status
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	body := map[string]string{"estado_pedido": string(status)}

	// PUT /pedidos/{id}/estado
	_, err := c.do(ctx, http.MethodPut, nil, body, "pedidos", strconv.FormatInt(id, 10), "estado")
	return err
}

func ordersFrom(env *envelope) ([]models.Order, error) {
	rows, err := env.rows()
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, toOrder(r))
	}
	return orders, nil
}
