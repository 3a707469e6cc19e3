package translation

import (
	"fmt"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
)

// ValidateShape checks that a parsed translation response is structurally
// parallel to the projection it was generated from: the same array lengths at
// every level. A mismatch means the service reshaped the payload and merging
// it would attach text to the wrong entities, so the caller must discard the
// response instead of persisting it.
func ValidateShape(want, got *model.MenuTranslation) error {
	if got == nil {
		return fmt.Errorf("%w: empty response", model.ErrTranslationFormat)
	}

	if len(got.Categories) != len(want.Categories) {
		return fmt.Errorf("%w: expected %d categories, got %d",
			model.ErrTranslationFormat, len(want.Categories), len(got.Categories))
	}

	for i := range want.Categories {
		if err := validateCategoryShape(&want.Categories[i], &got.Categories[i]); err != nil {
			return err
		}
	}

	return nil
}

func validateCategoryShape(want, got *model.CategoryTranslation) error {
	if len(got.Children) != len(want.Children) {
		return fmt.Errorf("%w: expected %d child categories, got %d",
			model.ErrTranslationFormat, len(want.Children), len(got.Children))
	}
	if len(got.Dishes) != len(want.Dishes) {
		return fmt.Errorf("%w: expected %d dishes, got %d",
			model.ErrTranslationFormat, len(want.Dishes), len(got.Dishes))
	}
	for i := range want.Children {
		if err := validateCategoryShape(&want.Children[i], &got.Children[i]); err != nil {
			return err
		}
	}
	return nil
}
