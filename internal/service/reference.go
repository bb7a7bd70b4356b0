package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"go.uber.org/zap"
)

// ReferenceGateway is interface for reference tables
type ReferenceGateway interface {
	// ListReferenceTable returns rows of reference table
	ListReferenceTable(ctx context.Context, table models.TableKind) ([]models.ReferenceRow, error)
	// CreateReferenceRow inserts row into reference table
	CreateReferenceRow(ctx context.Context, table models.TableKind, fields map[string]any) error
	// DeleteReferenceRow deletes row from reference table
	DeleteReferenceRow(ctx context.Context, table models.TableKind, id int64) error
}

// ReferenceView is reference data screen of one operator
type ReferenceView struct {
	Table   models.TableSchema    `json:"tabla"`
	Rows    []models.ReferenceRow `json:"datos"`
	Draft   map[string]any        `json:"nuevo_registro"`
	Success string                `json:"mensaje_exito,omitempty"`
	Error   string                `json:"mensaje_error,omitempty"`
}

type referenceSession struct {
	mu      sync.Mutex
	table   models.TableSchema
	rows    []models.ReferenceRow
	draft   map[string]any
	success string
	err     string
}

func (s *referenceSession) view() *ReferenceView {
	draft := make(map[string]any, len(s.draft))
	for k, v := range s.draft {
		draft[k] = v
	}
	return &ReferenceView{
		Table:   s.table.Clone(),
		Rows:    append([]models.ReferenceRow{}, s.rows...),
		Draft:   draft,
		Success: s.success,
		Error:   s.err,
	}
}

// ReferenceManager maintains reference tables. Every mutation is
// followed by reload of the table.
type ReferenceManager struct {
	gw       ReferenceGateway
	sessions *sessions[referenceSession]
}

// NewReferenceManager creates new ReferenceManager instance
func NewReferenceManager(gw ReferenceGateway) *ReferenceManager {
	return &ReferenceManager{
		gw:       gw,
		sessions: newSessions(func() *referenceSession { return &referenceSession{} }),
	}
}

// Tables returns schemas of reference tables
func (rm *ReferenceManager) Tables() []models.TableSchema {
	return models.ReferenceTables()
}

// View returns screen of operator, opening first table on first use
func (rm *ReferenceManager) View(ctx context.Context, acc models.Account) (*ReferenceView, error) {
	s := rm.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table.Kind == "" {
		if err := rm.switchTable(ctx, s, models.ReferenceTables()[0].Kind); err != nil {
			return s.view(), err
		}
	}
	return s.view(), nil
}

// SwitchTable opens table, clearing draft and messages
func (rm *ReferenceManager) SwitchTable(ctx context.Context, acc models.Account, kind models.TableKind) (*ReferenceView, error) {
	s := rm.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := rm.switchTable(ctx, s, kind); err != nil {
		return s.view(), err
	}
	return s.view(), nil
}

func (rm *ReferenceManager) switchTable(ctx context.Context, s *referenceSession, kind models.TableKind) error {
	table, err := models.LookupTable(kind)
	if err != nil {
		return err
	}

	rm.resolveOptions(ctx, &table)

	s.table = table
	s.rows = nil
	s.draft = map[string]any{}
	s.success = ""
	s.err = ""

	return rm.reload(ctx, s)
}

// resolveOptions loads mill origins from origin table, keeping
// built-in options when it cannot be read
func (rm *ReferenceManager) resolveOptions(ctx context.Context, table *models.TableSchema) {
	if table.Kind != models.TableMill {
		return
	}

	origins, err := models.LookupTable(models.TableOrigin)
	if err != nil {
		return
	}
	rows, err := rm.gw.ListReferenceTable(ctx, models.TableOrigin)
	if err != nil || len(rows) == 0 {
		logger.Log.Debug("keep default origins", zap.Error(err))
		return
	}

	opts := make([]models.Option, 0, len(rows))
	for _, r := range rows {
		id, ok := r.ID(origins)
		if !ok {
			continue
		}
		label, _ := r["DESC_PROCED"].(string)
		opts = append(opts, models.Option{ID: id, Label: label})
	}
	if len(opts) == 0 {
		return
	}

	for i := range table.Fields {
		if table.Fields[i].Name == "PROCEDENCIA_ID_PROCED" {
			table.Fields[i].Options = opts
		}
	}
}

func (rm *ReferenceManager) reload(ctx context.Context, s *referenceSession) error {
	rows, err := rm.gw.ListReferenceTable(ctx, s.table.Kind)
	if err != nil {
		logger.Log.Error("load reference table", zap.String("table", string(s.table.Kind)), zap.Error(err))
		s.rows = []models.ReferenceRow{}
		s.err = err.Error()
		return err
	}
	s.rows = rows
	return nil
}

// validateDraft checks draft against table schema and returns fields to send
func validateDraft(table models.TableSchema, draft map[string]any) (map[string]any, error) {
	fields := make(map[string]any, len(table.Fields))

	for name := range draft {
		if _, ok := table.Field(name); !ok {
			return nil, &models.ValidationError{Field: name, Message: fmt.Sprintf("Campo desconocido: %s", name)}
		}
	}

	for _, f := range table.Fields {
		v, present := draft[f.Name]
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
			present = present && v != ""
		}
		if !present || v == nil {
			if f.Required {
				return nil, &models.ValidationError{Field: f.Name, Message: models.MsgRequiredFields}
			}
			continue
		}

		if f.Type == models.FieldSelect {
			id, ok := models.ReferenceRow{f.Name: v}.ID(models.TableSchema{IDField: f.Name})
			if !ok || !hasOption(f.Options, id) {
				return nil, &models.ValidationError{Field: f.Name, Message: models.MsgRequiredFields}
			}
			v = id
		}
		fields[f.Name] = v
	}

	return fields, nil
}

func hasOption(opts []models.Option, id int64) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// AddRow validates draft and inserts it into open table.
// Draft is kept when insertion fails.
func (rm *ReferenceManager) AddRow(ctx context.Context, acc models.Account, draft map[string]any) (*ReferenceView, error) {
	s := rm.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table.Kind == "" {
		if err := rm.switchTable(ctx, s, models.ReferenceTables()[0].Kind); err != nil {
			return s.view(), err
		}
	}

	s.draft = draft
	s.success = ""
	s.err = ""

	fields, err := validateDraft(s.table, draft)
	if err != nil {
		s.err = err.Error()
		return s.view(), err
	}

	if err := rm.gw.CreateReferenceRow(ctx, s.table.Kind, fields); err != nil {
		logger.Log.Error("create reference row", zap.String("table", string(s.table.Kind)), zap.Error(err))
		s.err = err.Error()
		return s.view(), err
	}

	s.draft = map[string]any{}
	if err := rm.reload(ctx, s); err != nil {
		return s.view(), err
	}
	s.success = models.MsgRowAdded

	return s.view(), nil
}

// DeleteRow deletes row of open table. Row id must resolve from table id
// field and deletion must be confirmed, otherwise backend is not called.
func (rm *ReferenceManager) DeleteRow(ctx context.Context, acc models.Account, row models.ReferenceRow, confirmed bool) (*ReferenceView, error) {
	s := rm.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table.Kind == "" {
		return s.view(), &models.ValidationError{Message: models.MsgMissingRowID}
	}

	s.success = ""
	s.err = ""

	id, ok := row.ID(s.table)
	if !ok {
		s.err = models.MsgMissingRowID
		return s.view(), &models.ValidationError{Field: s.table.IDField, Message: models.MsgMissingRowID}
	}
	if !confirmed {
		return s.view(), models.ErrConfirmationRequired
	}

	if err := rm.gw.DeleteReferenceRow(ctx, s.table.Kind, id); err != nil {
		logger.Log.Error("delete reference row",
			zap.String("table", string(s.table.Kind)),
			zap.Int64("id", id),
			zap.Error(err))
		s.err = err.Error()
		return s.view(), err
	}

	if err := rm.reload(ctx, s); err != nil {
		return s.view(), err
	}
	s.success = models.MsgRowDeleted

	return s.view(), nil
}
