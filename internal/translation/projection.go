// Package translation extracts the translatable text of a menu snapshot,
// talks to the external translation service, and merges translated text back
// onto a snapshot.
//
// Correlation between source and translated text is positional: the arrays in
// a projection keep the exact ordering of the snapshot they were taken from,
// and no entity IDs are carried through. A stored translation therefore only
// lines up with the menu as it looked when the translation was generated.
package translation

import (
	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
)

// Project extracts the translatable projection of a menu snapshot: title and
// description at menu level, name/description per category and child
// category, title/description per dish. Array ordering follows the snapshot
// exactly, since ordering is the sole correlation key at merge time.
func Project(menu *model.Menu) *model.MenuTranslation {
	projection := &model.MenuTranslation{
		Title:       menu.Title,
		Description: menu.Description,
	}

	if len(menu.Categories) > 0 {
		projection.Categories = make([]model.CategoryTranslation, 0, len(menu.Categories))
		for _, category := range menu.Categories {
			projection.Categories = append(projection.Categories, projectCategory(category))
		}
	}

	return projection
}

func projectCategory(category model.Category) model.CategoryTranslation {
	ct := model.CategoryTranslation{
		Name:        category.Name,
		Description: category.Description,
	}

	for _, child := range category.Children {
		// One nesting level only; grandchildren are not rendered and
		// therefore not translated.
		ct.Children = append(ct.Children, model.CategoryTranslation{
			Name:        child.Name,
			Description: child.Description,
			Dishes:      projectDishes(child.Dishes),
		})
	}

	ct.Dishes = projectDishes(category.Dishes)

	return ct
}

func projectDishes(dishes []model.Dish) []model.DishTranslation {
	if len(dishes) == 0 {
		return nil
	}
	out := make([]model.DishTranslation, 0, len(dishes))
	for _, dish := range dishes {
		out = append(out, model.DishTranslation{
			Title:       dish.Title,
			Description: dish.Description,
		})
	}
	return out
}
