package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CoilGateway is interface for coil data
type CoilGateway interface {
	// ListCoils returns one page of coils
	ListCoils(ctx context.Context, q models.CoilQuery) (*models.CoilPage, error)
	// CreateCoil registers an incoming coil and returns its id
	CreateCoil(ctx context.Context, coil *models.CoilIntake) (int64, error)
	// UpdateCoil partially updates coil fields
	UpdateCoil(ctx context.Context, id int64, fields map[string]any) error
	// CoilOptions returns combo choices of intake form
	CoilOptions(ctx context.Context) (*models.CoilOptions, error)
}

// fields operator may change on registered coil
var editableCoilFields = map[string]struct{}{
	"pedido_compra": {},
	"colada":        {},
	"observaciones": {},
	"peso":          {},
	"cantidad":      {},
}

// field labels used in validation messages
var intakeLabels = map[string]string{
	"fecha_llegada":        "fecha de llegada",
	"fecha_inventario":     "fecha de inventario",
	"fecha_ingreso_planta": "fecha de ingreso a planta",
	"pedido_compra":        "pedido de compra",
	"colada":               "colada",
	"peso":                 "peso",
	"cantidad":             "cantidad",
	"lote":                 "lote",
	"bobina_id_bobi":       "tipo de bobina",
	"proveedor_id_prov":    "proveedor",
}

// CoilService lists, registers and edits coils
type CoilService struct {
	gw       CoilGateway
	validate *validator.Validate
	now      func() time.Time
}

// NewCoilService creates new CoilService instance
func NewCoilService(gw CoilGateway) *CoilService {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("dmin", func(fl validator.FieldLevel) bool {
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return decimal.NewFromFloat(fl.Field().Float()).GreaterThanOrEqual(bound)
	})

	return &CoilService{
		gw:       gw,
		validate: v,
		now:      time.Now,
	}
}

// List returns one page of coils
func (cs *CoilService) List(ctx context.Context, q models.CoilQuery) (*models.CoilPage, error) {
	return cs.gw.ListCoils(ctx, q)
}

// Options returns combo choices of intake form
func (cs *CoilService) Options(ctx context.Context) (*models.CoilOptions, error) {
	return cs.gw.CoilOptions(ctx)
}

// Register validates intake form and registers coil.
// Plant entry date defaults to today and state to available.
func (cs *CoilService) Register(ctx context.Context, in *models.CoilIntake) (int64, error) {
	if in.PlantEntryDate == "" {
		in.PlantEntryDate = cs.now().Format("2006-01-02")
	}
	if in.StateID == 0 {
		in.StateID = models.CoilStateAvailable
	}

	if err := cs.validate.Struct(in); err != nil {
		return 0, intakeError(err)
	}

	id, err := cs.gw.CreateCoil(ctx, in)
	if err != nil {
		var se *models.ServerError
		if errors.As(err, &se) && se.Message == "" {
			return 0, models.NewServerError(se.Status, models.MsgIntakeFailed)
		}
		logger.Log.Error("register coil", zap.String("heat", in.Heat), zap.Error(err))
		return 0, err
	}

	logger.Log.Info("coil registered", zap.Int64("coil", id), zap.String("heat", in.Heat))
	return id, nil
}

// Update changes editable fields of coil
func (cs *CoilService) Update(ctx context.Context, id int64, fields map[string]any) error {
	if id <= 0 {
		return models.NewValidationError(models.MsgMissingRowID)
	}
	for name := range fields {
		if _, ok := editableCoilFields[name]; !ok {
			return &models.ValidationError{Field: name, Message: fmt.Sprintf("Campo no editable: %s", name)}
		}
	}
	return cs.gw.UpdateCoil(ctx, id, fields)
}

// intakeError converts first validator failure to ValidationError
func intakeError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return models.NewValidationError(err.Error())
	}

	fe := verrs[0]
	label, ok := intakeLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("El campo %s es requerido", label)
	case "min", "dmin":
		msg = fmt.Sprintf("El campo %s debe ser mayor o igual a %s", label, fe.Param())
	case "datetime":
		msg = fmt.Sprintf("El campo %s debe tener formato AAAA-MM-DD", label)
	default:
		msg = fmt.Sprintf("El campo %s no es válido", label)
	}

	return &models.ValidationError{Field: fe.Field(), Message: msg}
}
