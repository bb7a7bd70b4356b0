package models

import "github.com/shopspring/decimal"

// coil lifecycle states
const (
	CoilStateAvailable  = 1
	CoilStateDispatched = 3
)

// placeholders for absent denormalized names
const (
	PlaceholderCoilType = "Sin descripción"
	PlaceholderSupplier = "Sin proveedor"
	PlaceholderShip     = "Sin barco"
	PlaceholderLocation = "Sin ubicación"
	PlaceholderState    = "Sin estado"
	PlaceholderMill     = "Sin molino"
)

// Coil is a physical steel coil registered at the plant
type Coil struct {
	ID                 int64           `json:"id_registro"`
	ArrivalDate        string          `json:"fecha_llegada"`
	InventoryDate      string          `json:"fecha_inventario"`
	PlantEntryDate     string          `json:"fecha_ingreso_planta"`
	PurchaseOrder      string          `json:"pedido_compra"`
	Heat               string          `json:"colada"`
	Weight             decimal.Decimal `json:"peso"`
	Quantity           int64           `json:"cantidad"`
	Lot                int64           `json:"lote"`
	Notes              string          `json:"observaciones"`
	PurchaseOrderTons  decimal.Decimal `json:"ton_pedido_compra"`
	SupplierCoilNumber string          `json:"n_bobi_proveedor"`
	Correlative        string          `json:"bobi_correlativo"`
	CoilTypeID         int64           `json:"bobina_id_bobi"`
	CoilTypeDesc       string          `json:"bobina_desc"`
	SupplierID         int64           `json:"proveedor_id_prov"`
	SupplierName       string          `json:"proveedor_nombre"`
	ShipID             int64           `json:"barco_id_barco"`
	ShipName           string          `json:"barco_nombre"`
	LocationID         int64           `json:"ubicacion_id_ubi"`
	LocationDesc       string          `json:"ubicacion_desc"`
	StateID            int64           `json:"estado_id_estado"`
	StateDesc          string          `json:"estado_desc"`
	MillID             int64           `json:"molino_id_molino"`
	MillName           string          `json:"molino_nombre"`
}

// Available reports whether coil can be put into a new order
func (c Coil) Available() bool {
	return c.StateID == CoilStateAvailable
}

// CoilQuery is coil list request
type CoilQuery struct {
	Page    int
	PerPage int
	Search  string
	// State filters by lifecycle state when set
	State *int64
}

// CoilPage is one page of coil list
type CoilPage struct {
	Coils   []Coil `json:"data"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Total   int    `json:"total"`
	Pages   int    `json:"pages"`
}

// CoilIntake is the form used to register an incoming coil
type CoilIntake struct {
	ArrivalDate        string          `json:"fecha_llegada" validate:"required,datetime=2006-01-02"`
	InventoryDate      string          `json:"fecha_inventario,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PlantEntryDate     string          `json:"fecha_ingreso_planta" validate:"omitempty,datetime=2006-01-02"`
	PurchaseOrder      string          `json:"pedido_compra" validate:"required"`
	Heat               string          `json:"colada" validate:"required"`
	Weight             decimal.Decimal `json:"peso" validate:"dmin=0.1"`
	Quantity           int64           `json:"cantidad" validate:"min=1"`
	Lot                int64           `json:"lote,omitempty" validate:"min=0"`
	Notes              string          `json:"observaciones,omitempty"`
	PurchaseOrderTons  decimal.Decimal `json:"ton_pedido_compra,omitempty"`
	SupplierCoilNumber string          `json:"n_bobi_proveedor,omitempty"`
	Correlative        string          `json:"bobi_correlativo,omitempty"`
	CoilTypeID         int64           `json:"bobina_id_bobi" validate:"required"`
	SupplierID         int64           `json:"proveedor_id_prov" validate:"required"`
	ShipID             int64           `json:"barco_id_barco,omitempty"`
	LocationID         int64           `json:"ubicacion_id_ubi,omitempty"`
	StateID            int64           `json:"estado_id_estado"`
	MillID             int64           `json:"molino_id_molino,omitempty"`
}

// Option is one choice of an intake combo
type Option struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// CoilOptions are combo choices of the intake form
type CoilOptions struct {
	CoilTypes []Option `json:"bobinas"`
	Suppliers []Option `json:"proveedores"`
	Ships     []Option `json:"barcos"`
	Locations []Option `json:"ubicaciones"`
	States    []Option `json:"estados"`
	Mills     []Option `json:"molinos"`
}
