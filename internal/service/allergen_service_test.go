package service

import (
	"context"
	"testing"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAllergenService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("code is normalised to upper case", func(t *testing.T) {
		repo := new(MockAllergenRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*model.Allergen")).Return(nil)

		svc := NewAllergenService(repo, logger)

		allergen, err := svc.Create(ctx, &model.CreateAllergenRequest{
			Name: "Gluten",
			Code: " glu ",
		})

		require.NoError(t, err)
		assert.Equal(t, "GLU", allergen.Code)
		assert.True(t, allergen.IsActive)
	})

	t.Run("name and code required", func(t *testing.T) {
		svc := NewAllergenService(new(MockAllergenRepository), logger)

		_, err := svc.Create(ctx, &model.CreateAllergenRequest{Name: "Gluten"})

		require.Error(t, err)
	})

	t.Run("duplicate surfaces conflict", func(t *testing.T) {
		repo := new(MockAllergenRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*model.Allergen")).
			Return(model.ErrAllergenTaken)

		svc := NewAllergenService(repo, logger)

		_, err := svc.Create(ctx, &model.CreateAllergenRequest{Name: "Gluten", Code: "GLU"})

		assert.ErrorIs(t, err, model.ErrAllergenTaken)
	})
}

func TestAllergenService_Update_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	id := uuid.New()

	repo := new(MockAllergenRepository)
	repo.On("GetByID", ctx, id).Return(nil, nil)

	svc := NewAllergenService(repo, logger)

	name := "Gluten"
	_, err := svc.Update(ctx, id, &model.UpdateAllergenRequest{Name: &name})

	assert.ErrorIs(t, err, model.ErrAllergenNotFound)
	repo.AssertNotCalled(t, "Update")
}
