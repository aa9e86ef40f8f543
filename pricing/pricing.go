// Package pricing resolves menu size sets and prices.
//
// The business groups categories into families by how many size choices a
// dish has. Legacy records were entered under four generic slots (chico,
// mediano, grande, familiar) that map onto each family's own labels, so the
// flat slots are remapped per family rather than read literally.
package pricing

import "github.com/chetegamis/pizzeria-app/models"

// Size labels per category family.
const (
	SizeIndividual = "individual"
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeFamily     = "family"
	SizeSimple     = "simple"
	SizeDouble     = "double"
	SizeUnique     = "unique"
)

var (
	pizzaSizes    = []string{SizeIndividual, SizeSmall, SizeMedium, SizeFamily}
	sandwichSizes = []string{SizeSimple, SizeDouble}
	uniqueSizes   = []string{SizeUnique}
)

// SizesForCategory returns the ordered size labels valid for a category.
// It never fails: anything outside the pizza and sandwich families,
// including unrecognized category strings, gets the single-size set.
func SizesForCategory(category string) []string {
	switch category {
	case models.CategoryPizza, models.CategorySpecial:
		return pizzaSizes
	case models.CategorySandwich, models.CategoryArracheraBurger:
		return sandwichSizes
	default:
		return uniqueSizes
	}
}

// legacyPrice reads the flat price slot that a size label maps to within
// the item's category family. Sizes outside the family read as 0.
func legacyPrice(item *models.MenuItem, size string) float64 {
	switch item.Category {
	case models.CategoryPizza, models.CategorySpecial:
		switch size {
		case SizeIndividual:
			return item.SmallPrice
		case SizeSmall:
			return item.MediumPrice
		case SizeMedium:
			return item.LargePrice
		case SizeFamily:
			return item.FamilyPrice
		}
	case models.CategorySandwich, models.CategoryArracheraBurger:
		switch size {
		case SizeSimple:
			return item.SmallPrice
		case SizeDouble:
			return item.MediumPrice
		}
	default:
		if size == SizeUnique {
			return item.SmallPrice
		}
	}
	return 0
}

// NormalizePriceMap builds the canonical price-by-size map for a menu item.
// An explicit stored map wins; otherwise the map is derived from the legacy
// flat slots. The result's key set always equals SizesForCategory, with
// missing inputs read as 0.
func NormalizePriceMap(item *models.MenuItem) map[string]float64 {
	sizes := SizesForCategory(item.Category)
	normalized := make(map[string]float64, len(sizes))

	explicit, ok := item.PriceMap()
	for _, size := range sizes {
		if ok {
			normalized[size] = explicit[size]
		} else {
			normalized[size] = legacyPrice(item, size)
		}
	}
	return normalized
}

// PriceForLine resolves the unit price for one order line. The normalized
// map is tried first, then the legacy flat slots; a size absent from both
// prices at 0 so the line shows up visibly wrong on the printed receipt
// instead of failing the order.
func PriceForLine(item *models.MenuItem, size string) float64 {
	if price, ok := NormalizePriceMap(item)[size]; ok {
		return price
	}
	return legacyPrice(item, size)
}
