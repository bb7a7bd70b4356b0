package service

import (
	"sort"
	"strings"
	"time"

	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
)

// FilterCoils returns coils whose description, heat, purchase order,
// supplier or notes contain text, ignoring case. Input is not modified.
func FilterCoils(coils []models.Coil, text string) []models.Coil {
	needle := strings.ToLower(strings.TrimSpace(text))

	out := make([]models.Coil, 0, len(coils))
	for _, c := range coils {
		if needle == "" || containsAny(needle, c.CoilTypeDesc, c.Heat, c.PurchaseOrder, c.SupplierName, c.Notes) {
			out = append(out, c)
		}
	}
	return out
}

func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// SortByPlantEntry sorts coils by plant entry date, oldest first.
// Coils without date go last, ties are ordered by id.
func SortByPlantEntry(coils []models.Coil) {
	sort.SliceStable(coils, func(i, j int) bool {
		di, okI := entryDate(coils[i])
		dj, okJ := entryDate(coils[j])
		switch {
		case okI && okJ && !di.Equal(dj):
			return di.Before(dj)
		case okI != okJ:
			return okI
		}
		return coils[i].ID < coils[j].ID
	})
}

func entryDate(c models.Coil) (time.Time, bool) {
	if c.PlantEntryDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", c.PlantEntryDate)
	return t, err == nil
}

// available keeps coils that can be ordered
func available(coils []models.Coil) []models.Coil {
	out := make([]models.Coil, 0, len(coils))
	for _, c := range coils {
		if c.Available() {
			out = append(out, c)
		}
	}
	return out
}

func totalWeight(coils []models.Coil) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range coils {
		sum = sum.Add(c.Weight)
	}
	return sum
}

func indexOfCoil(coils []models.Coil, id int64) int {
	for i, c := range coils {
		if c.ID == id {
			return i
		}
	}
	return -1
}
