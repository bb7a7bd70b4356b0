package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rookgm/bobis/internal/models"
)

// ListReferenceTable returns rows of reference table
func (c *Client) ListReferenceTable(ctx context.Context, table models.TableKind) ([]models.ReferenceRow, error) {
	// GET /gestion/{tabla}
	env, err := c.do(ctx, http.MethodGet, nil, nil, "gestion", string(table))
	if err != nil {
		return nil, err
	}

	rows, err := env.rows()
	if err != nil {
		return nil, err
	}

	out := make([]models.ReferenceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, toReferenceRow(r))
	}
	return out, nil
}

// CreateReferenceRow inserts row into reference table
func (c *Client) CreateReferenceRow(ctx context.Context, table models.TableKind, fields map[string]any) error {
	// POST /gestion/{tabla}
	_, err := c.do(ctx, http.MethodPost, nil, fields, "gestion", string(table))
	return err
}

// DeleteReferenceRow deletes row from reference table
func (c *Client) DeleteReferenceRow(ctx context.Context, table models.TableKind, id int64) error {
	// DELETE /gestion/{tabla}/{id}
	_, err := c.do(ctx, http.MethodDelete, nil, nil, "gestion", string(table), strconv.FormatInt(id, 10))
	return err
}
