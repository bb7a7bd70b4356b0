package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/repository/postgres"
	"github.com/shopspring/decimal"
)

const pgErrUniqueViolationCode = "23505"

const (
	insertDispatchQuery = `
						INSERT INTO dispatches (id, order_id, ordered_at, requester, notes, confirmed_by, confirmed_at, total_weight, placeholders)
						VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8::numeric, $9)
`
	insertDispatchCoilQuery = `
						INSERT INTO dispatch_coils (dispatch_id, position, coil_id, detail_id, coil_desc, purchase_order, heat, supplier, weight, placeholder)
						VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10)
`
	selectDispatchColumns = `
						SELECT id::text, order_id, ordered_at, requester, notes, confirmed_by, confirmed_at, total_weight::text, placeholders
						FROM dispatches
`
	selectDispatchByOrderQuery = selectDispatchColumns + `
						WHERE order_id = $1
`
	selectDispatchesByOrdersQuery = selectDispatchColumns + `
						WHERE order_id = ANY($1)
`
	selectRecentDispatchesQuery = selectDispatchColumns + `
						ORDER BY confirmed_at DESC
						LIMIT $1
`
	selectDispatchCoilsQuery = `
						SELECT d.order_id, c.coil_id, c.detail_id, c.coil_desc, c.purchase_order, c.heat, c.supplier, c.weight::text, c.placeholder
						FROM dispatch_coils c
						JOIN dispatches d ON d.id = c.dispatch_id
						WHERE d.order_id = ANY($1)
						ORDER BY d.order_id, c.position
`
)

// JournalRepository stores confirmed dispatches in postgres
type JournalRepository struct {
	db *postgres.DB
}

// NewJournalRepository creates new JournalRepository instance
func NewJournalRepository(db *postgres.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Save inserts dispatch with its coils in one transaction.
// It returns models.ErrConflictData when order is already dispatched.
func (jr *JournalRepository) Save(ctx context.Context, rec *models.DispatchRecord) error {
	tx, err := jr.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var orderedAt *time.Time
	if !rec.OrderedAt.IsZero() {
		orderedAt = &rec.OrderedAt
	}

	_, err = tx.Exec(ctx, insertDispatchQuery,
		rec.ID.String(), rec.OrderID, orderedAt, rec.Requester, rec.Notes,
		rec.ConfirmedBy, rec.ConfirmedAt, rec.TotalWeight.String(), rec.Placeholders)
	if err != nil {
		if errCode := jr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return models.ErrConflictData
		}
		return err
	}

	for i, c := range rec.Coils {
		_, err = tx.Exec(ctx, insertDispatchCoilQuery,
			rec.ID.String(), i, c.CoilID, c.DetailID, c.CoilTypeDesc, c.PurchaseOrder,
			c.Heat, c.SupplierName, c.Weight.String(), c.Placeholder)
		if err != nil {
			return fmt.Errorf("insert coil %d: %w", c.CoilID, err)
		}
	}

	return tx.Commit(ctx)
}

// ByOrder returns dispatch of order
func (jr *JournalRepository) ByOrder(ctx context.Context, orderID int64) (*models.DispatchRecord, error) {
	rec, err := scanDispatch(jr.db.QueryRow(ctx, selectDispatchByOrderQuery, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	coils, err := jr.coils(ctx, []int64{orderID})
	if err != nil {
		return nil, err
	}
	if c, ok := coils[orderID]; ok {
		rec.Coils = c
	}

	return rec, nil
}

// ByOrders returns dispatches of orders keyed by order id
func (jr *JournalRepository) ByOrders(ctx context.Context, orderIDs []int64) (map[int64]models.DispatchRecord, error) {
	out := make(map[int64]models.DispatchRecord)
	if len(orderIDs) == 0 {
		return out, nil
	}

	recs, err := jr.list(ctx, selectDispatchesByOrdersQuery, orderIDs)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		out[r.OrderID] = r
	}
	return out, nil
}

// Recent returns latest dispatches, newest first
func (jr *JournalRepository) Recent(ctx context.Context, limit int) ([]models.DispatchRecord, error) {
	if limit <= 0 {
		return []models.DispatchRecord{}, nil
	}
	return jr.list(ctx, selectRecentDispatchesQuery, limit)
}

func (jr *JournalRepository) list(ctx context.Context, query string, arg any) ([]models.DispatchRecord, error) {
	rows, err := jr.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []models.DispatchRecord{}
	for rows.Next() {
		rec, err := scanDispatch(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.OrderID)
	}
	coils, err := jr.coils(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if c, ok := coils[recs[i].OrderID]; ok {
			recs[i].Coils = c
		}
	}

	return recs, nil
}

func (jr *JournalRepository) coils(ctx context.Context, orderIDs []int64) (map[int64][]models.ChecklistEntry, error) {
	out := make(map[int64][]models.ChecklistEntry)
	if len(orderIDs) == 0 {
		return out, nil
	}

	rows, err := jr.db.Query(ctx, selectDispatchCoilsQuery, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int64
			weight  string
			e       models.ChecklistEntry
		)
		err = rows.Scan(&orderID, &e.CoilID, &e.DetailID, &e.CoilTypeDesc, &e.PurchaseOrder,
			&e.Heat, &e.SupplierName, &weight, &e.Placeholder)
		if err != nil {
			return nil, err
		}
		if e.Weight, err = decimal.NewFromString(weight); err != nil {
			return nil, fmt.Errorf("coil %d weight: %w", e.CoilID, err)
		}
		// only verified coils are ever dispatched
		e.Verified = true
		out[orderID] = append(out[orderID], e)
	}

	return out, rows.Err()
}

func scanDispatch(row pgx.Row) (*models.DispatchRecord, error) {
	var (
		rec       models.DispatchRecord
		id        string
		orderedAt *time.Time
		weight    string
	)
	err := row.Scan(&id, &rec.OrderID, &orderedAt, &rec.Requester, &rec.Notes,
		&rec.ConfirmedBy, &rec.ConfirmedAt, &weight, &rec.Placeholders)
	if err != nil {
		return nil, err
	}

	if rec.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("dispatch id: %w", err)
	}
	if orderedAt != nil {
		rec.OrderedAt = *orderedAt
	}
	if rec.TotalWeight, err = decimal.NewFromString(weight); err != nil {
		return nil, fmt.Errorf("dispatch weight: %w", err)
	}
	rec.Coils = []models.ChecklistEntry{}

	return &rec, nil
}
