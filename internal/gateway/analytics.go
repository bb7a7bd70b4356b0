package gateway

import (
	"context"
	"net/http"

	"github.com/rookgm/bobis/internal/models"
)

// Analytics returns dashboard analytics
func (c *Client) Analytics(ctx context.Context) (*models.Analytics, error) {
	// GET /dashboard/analitica-predictiva
	env, err := c.do(ctx, http.MethodGet, nil, nil, "dashboard", "analitica-predictiva")
	if err != nil {
		return nil, err
	}

	obj, err := env.object()
	if err != nil {
		return nil, err
	}

	a := toAnalytics(obj)
	return &a, nil
}
