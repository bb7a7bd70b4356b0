package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TableKind identifies a reference table
type TableKind string

// reference tables
const (
	TableLocation TableKind = "UBICACION"
	TableShip     TableKind = "BARCO"
	TableMill     TableKind = "MOLINO"
	TableSupplier TableKind = "PROVEEDOR"
	TableState    TableKind = "ESTADO"
	TableOrigin   TableKind = "PROCEDENCIA"
)

// FieldType is input kind of a reference field
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldSelect FieldType = "select"
)

// FieldSchema describes one editable column
type FieldSchema struct {
	Name     string    `json:"nombre"`
	Label    string    `json:"display"`
	Type     FieldType `json:"tipo"`
	Required bool      `json:"requerido"`
	Options  []Option  `json:"opciones,omitempty"`
}

// TableSchema describes a reference table
type TableSchema struct {
	Kind    TableKind     `json:"nombre"`
	Label   string        `json:"nombre_display"`
	IDField string        `json:"campo_id"`
	Fields  []FieldSchema `json:"campos"`
}

// Field returns field schema by name
func (t TableSchema) Field(name string) (FieldSchema, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSchema{}, false
}

// Clone returns copy of schema with own field and option slices
func (t TableSchema) Clone() TableSchema {
	c := t
	c.Fields = make([]FieldSchema, len(t.Fields))
	for i, f := range t.Fields {
		c.Fields[i] = f
		if f.Options != nil {
			c.Fields[i].Options = append([]Option(nil), f.Options...)
		}
	}
	return c
}

// default origins of a mill
var defaultOrigins = []Option{
	{ID: 1, Label: "Nacional"},
	{ID: 2, Label: "Importado"},
}

var referenceTables = []TableSchema{
	{
		Kind:    TableLocation,
		Label:   "Ubicaciones",
		IDField: "ID_UBI",
		Fields: []FieldSchema{
			{Name: "DESC_UBI", Label: "Descripción", Type: FieldText, Required: true},
		},
	},
	{
		Kind:    TableShip,
		Label:   "Barcos",
		IDField: "ID_BARCO",
		Fields: []FieldSchema{
			{Name: "NOMBRE_BARCO", Label: "Nombre", Type: FieldText, Required: true},
		},
	},
	{
		Kind:    TableMill,
		Label:   "Molinos",
		IDField: "ID_MOLINO",
		Fields: []FieldSchema{
			{Name: "NOMBRE_MOLINO", Label: "Nombre", Type: FieldText, Required: true},
			{Name: "PROCEDENCIA_ID_PROCED", Label: "Procedencia", Type: FieldSelect, Required: true, Options: defaultOrigins},
		},
	},
	{
		Kind:    TableSupplier,
		Label:   "Proveedores",
		IDField: "ID_PROV",
		Fields: []FieldSchema{
			{Name: "NOMBRE_PROV", Label: "Nombre", Type: FieldText, Required: true},
		},
	},
	{
		Kind:    TableState,
		Label:   "Estados",
		IDField: "ID_ESTADO",
		Fields: []FieldSchema{
			{Name: "DESC_ESTADO", Label: "Descripción", Type: FieldText, Required: true},
		},
	},
	{
		Kind:    TableOrigin,
		Label:   "Procedencias",
		IDField: "ID_PROCED",
		Fields: []FieldSchema{
			{Name: "DESC_PROCED", Label: "Descripción", Type: FieldText, Required: true},
		},
	},
}

// ReferenceTables returns schemas of all reference tables in display order
func ReferenceTables() []TableSchema {
	tables := make([]TableSchema, len(referenceTables))
	for i, t := range referenceTables {
		tables[i] = t.Clone()
	}
	return tables
}

// LookupTable returns schema of table kind
func LookupTable(kind TableKind) (TableSchema, error) {
	k := TableKind(strings.ToUpper(string(kind)))
	for _, t := range referenceTables {
		if t.Kind == k {
			return t.Clone(), nil
		}
	}
	return TableSchema{}, fmt.Errorf("%w: %s", ErrUnknownTable, kind)
}

// ReferenceRow is one row of a reference table keyed by column name
type ReferenceRow map[string]any

// ID resolves row id using id field of table. It returns false when
// the field is absent or does not hold a positive integer.
func (r ReferenceRow) ID(t TableSchema) (int64, bool) {
	v, ok := r[t.IDField]
	if !ok {
		v, ok = r[strings.ToLower(t.IDField)]
	}
	if !ok || v == nil {
		return 0, false
	}

	var id int64
	switch n := v.(type) {
	case int:
		id = int64(n)
	case int64:
		id = n
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		id = int64(n)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		id = parsed
	case interface{ Int64() (int64, error) }:
		parsed, err := n.Int64()
		if err != nil {
			return 0, false
		}
		id = parsed
	default:
		return 0, false
	}

	if id <= 0 {
		return 0, false
	}
	return id, true
}
