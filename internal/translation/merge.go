package translation

import (
	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
)

// Apply merges a translation payload onto a menu snapshot and returns the
// merged tree. The input snapshot is never mutated.
//
// Merge rules:
//   - a non-empty translated value overwrites the original; empty or missing
//     values fall back to the original text (partial translations are fine)
//   - entities are matched to translated text by array index
//   - when the translation has fewer entries than the live tree (entities
//     added after the translation was generated), the tail is returned
//     untranslated rather than failing
func Apply(menu *model.Menu, tr *model.MenuTranslation) *model.Menu {
	merged := cloneMenu(menu)
	if tr == nil {
		return merged
	}

	if tr.Title != "" {
		merged.Title = tr.Title
	}
	if tr.Description != "" {
		merged.Description = tr.Description
	}

	for i := range merged.Categories {
		if i >= len(tr.Categories) {
			break
		}
		mergeCategory(&merged.Categories[i], &tr.Categories[i])
	}

	return merged
}

func mergeCategory(category *model.Category, tr *model.CategoryTranslation) {
	if tr.Name != "" {
		category.Name = tr.Name
	}
	if tr.Description != "" {
		category.Description = tr.Description
	}

	for i := range category.Children {
		if i >= len(tr.Children) {
			break
		}
		mergeCategory(&category.Children[i], &tr.Children[i])
	}

	mergeDishes(category.Dishes, tr.Dishes)
}

func mergeDishes(dishes []model.Dish, trs []model.DishTranslation) {
	for i := range dishes {
		if i >= len(trs) {
			break
		}
		if trs[i].Title != "" {
			dishes[i].Title = trs[i].Title
		}
		if trs[i].Description != "" {
			dishes[i].Description = trs[i].Description
		}
	}
}

// cloneMenu deep-copies a menu snapshot so the merge never writes through to
// the caller's tree.
func cloneMenu(menu *model.Menu) *model.Menu {
	clone := *menu

	if menu.Style != nil {
		clone.Style = append([]byte(nil), menu.Style...)
	}
	if menu.LastViewedAt != nil {
		t := *menu.LastViewedAt
		clone.LastViewedAt = &t
	}
	clone.Categories = cloneCategories(menu.Categories)

	return &clone
}

func cloneCategories(categories []model.Category) []model.Category {
	if categories == nil {
		return nil
	}
	out := make([]model.Category, len(categories))
	for i, category := range categories {
		out[i] = category
		if category.ParentID != nil {
			id := *category.ParentID
			out[i].ParentID = &id
		}
		out[i].Children = cloneCategories(category.Children)
		out[i].Dishes = cloneDishes(category.Dishes)
	}
	return out
}

func cloneDishes(dishes []model.Dish) []model.Dish {
	if dishes == nil {
		return nil
	}
	out := make([]model.Dish, len(dishes))
	for i, dish := range dishes {
		out[i] = dish
		if dish.Calories != nil {
			v := *dish.Calories
			out[i].Calories = &v
		}
		if dish.PrepMinutes != nil {
			v := *dish.PrepMinutes
			out[i].PrepMinutes = &v
		}
		if dish.Allergens != nil {
			out[i].Allergens = append([]model.Allergen(nil), dish.Allergens...)
		}
	}
	return out
}
