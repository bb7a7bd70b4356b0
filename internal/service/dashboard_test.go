package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/register"
	"github.com/rookgm/bobis/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_Get(t *testing.T) {
	now := time.Date(2025, time.March, 6, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		analytics   *models.Analytics
		analyticErr error
		journalErr  error
		wantErr     bool
		wantRecent  int
	}{
		{name: "ok", analytics: &models.Analytics{}, wantRecent: 1},
		{name: "journal_down", analytics: &models.Analytics{}, journalErr: errors.New("database is down"), wantRecent: 0},
		{name: "backend_down", analyticErr: &models.ConnectionError{Err: errors.New("refused")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := mocks.NewMockAnalyticsGateway(ctrl)
			journal := mocks.NewMockDispatchJournalReader(ctrl)
			status := mocks.NewMockConnectivityStatus(ctrl)

			gw.EXPECT().Analytics(gomock.Any()).Return(tt.analytics, tt.analyticErr)
			if !tt.wantErr {
				rec := dispatchRecord(1)
				var recent []models.DispatchRecord
				if tt.journalErr == nil {
					recent = []models.DispatchRecord{rec}
				}
				journal.EXPECT().Recent(gomock.Any(), recentDispatches).Return(recent, tt.journalErr)
				status.EXPECT().Online().Return(true)
			}

			reg := register.New()
			reg.Register(pendingOrder(5))
			reg.Register(pendingOrder(6))

			d := NewDashboard(gw, reg, journal, status)
			d.now = func() time.Time { return now }

			got, err := d.Get(context.Background())
			if tt.wantErr {
				assert.True(t, models.IsConnectionError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, got.PendingOrders)
			assert.True(t, got.BackendOnline)
			assert.Equal(t, now, got.ServerTime)
			assert.Len(t, got.Recent, tt.wantRecent)
			assert.NotNil(t, got.Recent)
		})
	}
}
