package services

import (
	"sort"
	"sync"

	"github.com/chetegamis/pizzeria-app/models"
	"github.com/chetegamis/pizzeria-app/store"
	"github.com/chetegamis/pizzeria-app/utils"
)

type MenuService struct {
	Store store.Store
}

func NewMenuService(s store.Store) *MenuService {
	return &MenuService{Store: s}
}

// The menu is fetched as five independent category groups. The last group
// is open-ended so records with categories outside the fixed enumeration
// still show up.
var categoryGroups = [][]string{
	{models.CategoryPizza},
	{models.CategorySpecial},
	{models.CategorySandwich, models.CategoryArracheraBurger},
	{models.CategoryOtherFood, models.CategoryPasta},
	// remainder: Beverage plus anything unrecognized
}

var closedCategories = []string{
	models.CategoryPizza,
	models.CategorySpecial,
	models.CategorySandwich,
	models.CategoryArracheraBurger,
	models.CategoryOtherFood,
	models.CategoryPasta,
}

// FetchMenu loads all menu items, ordered by name. The group fetches run
// concurrently and do not cancel one another; if any of them fails the
// whole result is discarded and one combined fetch answers instead.
func (ms *MenuService) FetchMenu() ([]models.MenuItem, error) {
	groups := make([][]models.MenuItem, len(categoryGroups)+1)
	errs := make([]error, len(categoryGroups)+1)

	var wg sync.WaitGroup
	for i, categories := range categoryGroups {
		wg.Add(1)
		go func(i int, categories []string) {
			defer wg.Done()
			groups[i], errs[i] = ms.Store.ListMenuItemsByCategories(categories...)
		}(i, categories)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		last := len(categoryGroups)
		groups[last], errs[last] = ms.Store.ListMenuItemsOutsideCategories(closedCategories...)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			utils.ErrorLogger.Printf("Grouped menu fetch failed, falling back to combined fetch: %v", err)
			return ms.Store.ListMenuItemsOrderedByName()
		}
	}

	var items []models.MenuItem
	for _, group := range groups {
		items = append(items, group...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
