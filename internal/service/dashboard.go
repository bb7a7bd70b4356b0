package service

import (
	"context"
	"time"

	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"go.uber.org/zap"
)

const recentDispatches = 5

// AnalyticsGateway is interface for backend analytics
type AnalyticsGateway interface {
	Analytics(ctx context.Context) (*models.Analytics, error)
}

// ConnectivityStatus reports last known backend status
type ConnectivityStatus interface {
	Online() bool
}

// Dashboard gathers analytics and local workflow state
type Dashboard struct {
	gw       AnalyticsGateway
	register PendingReader
	journal  DispatchJournalReader
	status   ConnectivityStatus
	now      func() time.Time
}

// NewDashboard creates new Dashboard instance
func NewDashboard(gw AnalyticsGateway, register PendingReader, journal DispatchJournalReader, status ConnectivityStatus) *Dashboard {
	return &Dashboard{
		gw:       gw,
		register: register,
		journal:  journal,
		status:   status,
		now:      time.Now,
	}
}

// Get returns dashboard. Analytics failure is returned as error,
// journal failure only leaves recent dispatches empty.
func (d *Dashboard) Get(ctx context.Context) (*models.Dashboard, error) {
	analytics, err := d.gw.Analytics(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := d.journal.Recent(ctx, recentDispatches)
	if err != nil {
		logger.Log.Error("read recent dispatches", zap.Error(err))
		recent = nil
	}
	if recent == nil {
		recent = []models.DispatchRecord{}
	}

	return &models.Dashboard{
		Analytics:     analytics,
		PendingOrders: len(d.register.Snapshot()),
		BackendOnline: d.status.Online(),
		ServerTime:    d.now(),
		Recent:        recent,
	}, nil
}

// Online returns last known backend status
func (d *Dashboard) Online() bool {
	return d.status.Online()
}
