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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(id int64, coils ...models.Coil) models.PendingOrder {
	o := models.PendingOrder{
		ID:        id,
		OrderedAt: time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC),
		Status:    models.OrderStatusSent,
		Requester: "Ana",
		Coils:     []models.ChecklistEntry{},
	}
	for _, c := range coils {
		o.Coils = append(o.Coils, models.EntryFromCoil(c))
	}
	return o
}

type checklistFixture struct {
	dc       *DispatchChecklist
	gw       *mocks.MockChecklistGateway
	journal  *mocks.MockDispatchJournalWriter
	register *register.Register
}

func newTestChecklist(t *testing.T, placeholders bool, orders ...models.PendingOrder) *checklistFixture {
	ctrl := gomock.NewController(t)
	f := &checklistFixture{
		gw:       mocks.NewMockChecklistGateway(ctrl),
		journal:  mocks.NewMockDispatchJournalWriter(ctrl),
		register: register.New(),
	}
	for _, o := range orders {
		f.register.Register(o)
	}
	f.dc = NewDispatchChecklist(f.gw, f.register, f.journal, placeholders)
	f.dc.now = func() time.Time { return time.Date(2025, time.March, 6, 15, 0, 0, 0, time.UTC) }
	return f
}

func TestDispatchChecklist_SelectUnknownOrder(t *testing.T) {
	f := newTestChecklist(t, true)

	_, err := f.dc.Select(context.Background(), operator, 99)
	assert.ErrorIs(t, err, models.ErrDataNotFound)
}

func TestDispatchChecklist_ToggleWithoutOrder(t *testing.T) {
	f := newTestChecklist(t, true)

	_, err := f.dc.Toggle(operator, 1)
	assert.True(t, models.IsValidationError(err))

	_, err = f.dc.Confirm(context.Background(), operator)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, models.MsgNoOrderSelected, ve.Message)
}

func TestDispatchChecklist_ConfirmRequiresAllVerified(t *testing.T) {
	coils := testCoils()[:2]
	f := newTestChecklist(t, true, pendingOrder(10, coils...))

	f.gw.EXPECT().UpdateCoil(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.gw.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	v, err := f.dc.Select(context.Background(), operator, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Verified)
	assert.Equal(t, 2, v.Total)

	v, err = f.dc.Toggle(operator, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Verified)
	assert.False(t, v.AllVerified)

	_, err = f.dc.Confirm(context.Background(), operator)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, models.MsgNotAllVerified, ve.Message)

	// still pending
	_, ok := f.register.Get(10)
	assert.True(t, ok)
}

func TestDispatchChecklist_Confirm(t *testing.T) {
	coils := testCoils()[:2]
	f := newTestChecklist(t, true, pendingOrder(10, coils...), pendingOrder(11, testCoils()[2]))

	gomock.InOrder(
		f.gw.EXPECT().UpdateCoil(gomock.Any(), int64(1), map[string]any{"estado_id_estado": models.CoilStateDispatched}).Return(nil),
		f.gw.EXPECT().UpdateCoil(gomock.Any(), int64(2), map[string]any{"estado_id_estado": models.CoilStateDispatched}).Return(nil),
		f.gw.EXPECT().UpdateOrderStatus(gomock.Any(), int64(10), models.OrderStatusAttended).Return(nil),
	)

	var saved *models.DispatchRecord
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rec *models.DispatchRecord) { saved = rec }).
		Return(nil).Times(1)

	_, err := f.dc.Select(context.Background(), operator, 10)
	require.NoError(t, err)
	_, err = f.dc.Toggle(operator, 1)
	require.NoError(t, err)
	v, err := f.dc.Toggle(operator, 2)
	require.NoError(t, err)
	assert.True(t, v.AllVerified)
	assert.True(t, v.VerifiedWeight.Equal(v.TotalWeight))

	rec, err := f.dc.Confirm(context.Background(), operator)
	require.NoError(t, err)

	assert.Equal(t, int64(10), rec.OrderID)
	assert.Equal(t, "Ana", rec.ConfirmedBy)
	assert.Equal(t, "4406.05", rec.TotalWeight.String())
	assert.False(t, rec.Placeholders)
	assert.Same(t, rec, saved)

	_, ok := f.register.Get(10)
	assert.False(t, ok)
	for _, o := range f.register.Snapshot() {
		assert.NotEqual(t, int64(10), o.ID)
	}
	assert.Equal(t, 1, f.register.Len())

	// session cleared
	v = f.dc.View(operator)
	assert.Nil(t, v.Order)
	assert.Empty(t, v.Entries)
}

func TestDispatchChecklist_ConfirmBackendFailureKeepsOrder(t *testing.T) {
	f := newTestChecklist(t, true, pendingOrder(10, testCoils()[0]))

	f.gw.EXPECT().UpdateCoil(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	f.gw.EXPECT().UpdateOrderStatus(gomock.Any(), int64(10), models.OrderStatusAttended).
		Return(models.NewServerError(500, "error interno"))
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.dc.Select(context.Background(), operator, 10)
	require.NoError(t, err)
	_, err = f.dc.Toggle(operator, 1)
	require.NoError(t, err)

	_, err = f.dc.Confirm(context.Background(), operator)
	assert.EqualError(t, err, "error interno")

	_, ok := f.register.Get(10)
	assert.True(t, ok)

	v := f.dc.View(operator)
	require.NotNil(t, v.Order)
	assert.True(t, v.AllVerified)
}

func TestDispatchChecklist_ConfirmPartialCoilFailureCanBeRetried(t *testing.T) {
	f := newTestChecklist(t, true, pendingOrder(10, testCoils()[:2]...))

	dispatched := map[string]any{"estado_id_estado": models.CoilStateDispatched}
	gomock.InOrder(
		f.gw.EXPECT().UpdateCoil(gomock.Any(), int64(1), dispatched).Return(nil),
		f.gw.EXPECT().UpdateCoil(gomock.Any(), int64(2), dispatched).
			Return(&models.ConnectionError{Err: errors.New("connection reset")}),
		// retry repeats every coil update
		f.gw.EXPECT().UpdateCoil(gomock.Any(), int64(1), dispatched).Return(nil),
		f.gw.EXPECT().UpdateCoil(gomock.Any(), int64(2), dispatched).Return(nil),
		f.gw.EXPECT().UpdateOrderStatus(gomock.Any(), int64(10), models.OrderStatusAttended).Return(nil),
	)
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := f.dc.Select(context.Background(), operator, 10)
	require.NoError(t, err)
	_, err = f.dc.Toggle(operator, 1)
	require.NoError(t, err)
	_, err = f.dc.Toggle(operator, 2)
	require.NoError(t, err)

	_, err = f.dc.Confirm(context.Background(), operator)
	assert.True(t, models.IsConnectionError(err))

	_, ok := f.register.Get(10)
	assert.True(t, ok)
	v := f.dc.View(operator)
	require.NotNil(t, v.Order)
	assert.True(t, v.AllVerified)

	rec, err := f.dc.Confirm(context.Background(), operator)
	require.NoError(t, err)
	assert.Equal(t, int64(10), rec.OrderID)
	assert.Equal(t, 0, f.register.Len())
}

func TestDispatchChecklist_JournalFailureIsNotFatal(t *testing.T) {
	f := newTestChecklist(t, true, pendingOrder(10, testCoils()[0]))

	f.gw.EXPECT().UpdateCoil(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database is down"))

	_, err := f.dc.Select(context.Background(), operator, 10)
	require.NoError(t, err)
	_, err = f.dc.Toggle(operator, 1)
	require.NoError(t, err)

	rec, err := f.dc.Confirm(context.Background(), operator)
	require.NoError(t, err)
	assert.Equal(t, int64(10), rec.OrderID)
	assert.Equal(t, 0, f.register.Len())
}

func TestDispatchChecklist_PlaceholderScenario(t *testing.T) {
	f := newTestChecklist(t, true, pendingOrder(20))

	f.gw.EXPECT().OrderDetail(gomock.Any(), gomock.Any()).Times(0)
	f.gw.EXPECT().UpdateCoil(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.gw.EXPECT().UpdateOrderStatus(gomock.Any(), int64(20), models.OrderStatusAttended).Return(nil)
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	v, err := f.dc.Select(context.Background(), operator, 20)
	require.NoError(t, err)
	require.Len(t, v.Entries, 2)
	assert.True(t, v.Entries[0].Placeholder)
	assert.Equal(t, "4406.05", v.TotalWeight.String())
	assert.True(t, v.VerifiedWeight.IsZero())

	v, err = f.dc.Toggle(operator, 1)
	require.NoError(t, err)
	assert.Equal(t, "2420.35", v.VerifiedWeight.String())
	assert.True(t, v.VerifiedWeight.LessThan(v.TotalWeight))

	// toggling twice restores state
	v, err = f.dc.Toggle(operator, 2)
	require.NoError(t, err)
	v, err = f.dc.Toggle(operator, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Verified)

	v, err = f.dc.Toggle(operator, 2)
	require.NoError(t, err)
	assert.True(t, v.VerifiedWeight.Equal(decimal.RequireFromString("4406.05")))

	rec, err := f.dc.Confirm(context.Background(), operator)
	require.NoError(t, err)
	assert.True(t, rec.Placeholders)
	assert.Equal(t, "4406.05", rec.TotalWeight.String())
}

func TestDispatchChecklist_DetailWithoutPlaceholders(t *testing.T) {
	f := newTestChecklist(t, false, pendingOrder(30))

	f.gw.EXPECT().OrderDetail(gomock.Any(), int64(30)).Return(testCoils()[2:3], nil)

	v, err := f.dc.Select(context.Background(), operator, 30)
	require.NoError(t, err)
	require.Len(t, v.Entries, 1)
	assert.Equal(t, int64(3), v.Entries[0].CoilID)
	assert.False(t, v.Entries[0].Placeholder)
}

func TestWeightFolds(t *testing.T) {
	entries := []models.ChecklistEntry{
		{Weight: decimal.RequireFromString("2420.35"), Verified: true},
		{Weight: decimal.RequireFromString("1985.70")},
	}

	assert.Equal(t, 1, VerifiedCount(entries))
	assert.False(t, AllVerified(entries))
	assert.False(t, AllVerified(nil))
	assert.Equal(t, "4406.05", TotalWeight(entries).String())
	assert.Equal(t, "2420.35", VerifiedWeight(entries).String())
}
