package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rookgm/bobis/internal/models"
)

// ListCoils returns one page of coils
func (c *Client) ListCoils(ctx context.Context, q models.CoilQuery) (*models.CoilPage, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("per_page", strconv.Itoa(q.PerPage))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.State != nil {
		query.Set("estado", strconv.FormatInt(*q.State, 10))
	}

	// GET /registros?page=&per_page=&search=
	env, err := c.do(ctx, http.MethodGet, query, nil, "registros")
	if err != nil {
		return nil, err
	}

	rows, err := env.rows()
	if err != nil {
		return nil, err
	}

	coils := toCoils(rows)
	total := env.total(len(coils))

	return &models.CoilPage{
		Coils:   coils,
		Page:    q.Page,
		PerPage: q.PerPage,
		Total:   total,
		Pages:   pages(total, q.PerPage),
	}, nil
}

// CreateCoil registers an incoming coil and returns its id
func (c *Client) CreateCoil(ctx context.Context, coil *models.CoilIntake) (int64, error) {
	// POST /registros
	env, err := c.do(ctx, http.MethodPost, nil, coil, "registros")
	if err != nil {
		return 0, err
	}

	obj, err := env.object()
	if err != nil {
		return 0, err
	}
	return obj.integer("id_registro", "id"), nil
}

// UpdateCoil partially updates coil fields
func (c *Client) UpdateCoil(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return models.NewValidationError("No hay campos para actualizar")
	}

	// PUT /registros/{id}
	_, err := c.do(ctx, http.MethodPut, nil, fields, "registros", strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("update coil %d: %w", id, err)
	}
	return nil
}

// CoilOptions returns combo choices of intake form
func (c *Client) CoilOptions(ctx context.Context) (*models.CoilOptions, error) {
	// GET /opciones-combos
	env, err := c.do(ctx, http.MethodGet, nil, nil, "opciones-combos")
	if err != nil {
		return nil, err
	}

	obj, err := env.object()
	if err != nil {
		return nil, err
	}

	opts := models.CoilOptions{}
	for key, dst := range map[string]*[]models.Option{
		"bobinas":     &opts.CoilTypes,
		"proveedores": &opts.Suppliers,
		"barcos":      &opts.Ships,
		"ubicaciones": &opts.Locations,
		"estados":     &opts.States,
		"molinos":     &opts.Mills,
	} {
		rows, _ := obj.list(key)
		*dst = toOptions(rows)
	}

	return &opts, nil
}
