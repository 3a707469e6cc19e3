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

func TestCategoryService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	owner := &model.Actor{ID: uuid.New(), Role: model.RoleOwner}
	menu := ownedTestMenu(owner.ID)

	t.Run("top level category", func(t *testing.T) {
		menuRepo := new(MockMenuRepository)
		categoryRepo := new(MockCategoryRepository)
		menuRepo.On("GetByID", ctx, menu.ID).Return(menu, nil)
		categoryRepo.On("Create", ctx, mock.AnythingOfType("*model.Category")).Return(nil)

		svc := NewCategoryService(categoryRepo, menuRepo, logger)

		category, err := svc.Create(ctx, owner, menu.ID, &model.CreateCategoryRequest{
			Name:         "Antipasti",
			DisplayOrder: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, menu.ID, category.MenuID)
		assert.Nil(t, category.ParentID)
		assert.Equal(t, 2, category.DisplayOrder)
	})

	t.Run("parent from another menu rejected", func(t *testing.T) {
		parentID := uuid.New()
		menuRepo := new(MockMenuRepository)
		categoryRepo := new(MockCategoryRepository)
		menuRepo.On("GetByID", ctx, menu.ID).Return(menu, nil)
		categoryRepo.On("GetByID", ctx, parentID).Return(&model.Category{
			ID:     parentID,
			MenuID: uuid.New(),
			Name:   "Elsewhere",
		}, nil)

		svc := NewCategoryService(categoryRepo, menuRepo, logger)

		category, err := svc.Create(ctx, owner, menu.ID, &model.CreateCategoryRequest{
			Name:     "Sub",
			ParentID: &parentID,
		})

		assert.ErrorIs(t, err, model.ErrCrossMenuParent)
		assert.Nil(t, category)
		categoryRepo.AssertNotCalled(t, "Create")
	})

	t.Run("missing parent rejected", func(t *testing.T) {
		parentID := uuid.New()
		menuRepo := new(MockMenuRepository)
		categoryRepo := new(MockCategoryRepository)
		menuRepo.On("GetByID", ctx, menu.ID).Return(menu, nil)
		categoryRepo.On("GetByID", ctx, parentID).Return(nil, nil)

		svc := NewCategoryService(categoryRepo, menuRepo, logger)

		_, err := svc.Create(ctx, owner, menu.ID, &model.CreateCategoryRequest{
			Name:     "Sub",
			ParentID: &parentID,
		})

		assert.ErrorIs(t, err, model.ErrCategoryNotFound)
	})

	t.Run("valid parent in same menu", func(t *testing.T) {
		parentID := uuid.New()
		menuRepo := new(MockMenuRepository)
		categoryRepo := new(MockCategoryRepository)
		menuRepo.On("GetByID", ctx, menu.ID).Return(menu, nil)
		categoryRepo.On("GetByID", ctx, parentID).Return(&model.Category{
			ID:     parentID,
			MenuID: menu.ID,
			Name:   "Secondi",
		}, nil)
		categoryRepo.On("Create", ctx, mock.AnythingOfType("*model.Category")).Return(nil)

		svc := NewCategoryService(categoryRepo, menuRepo, logger)

		category, err := svc.Create(ctx, owner, menu.ID, &model.CreateCategoryRequest{
			Name:     "Carne",
			ParentID: &parentID,
		})

		require.NoError(t, err)
		require.NotNil(t, category.ParentID)
		assert.Equal(t, parentID, *category.ParentID)
	})
}

func TestCategoryService_Update_OwnershipHidesExistence(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	owner := &model.Actor{ID: uuid.New(), Role: model.RoleOwner}
	stranger := &model.Actor{ID: uuid.New(), Role: model.RoleOwner}
	menu := ownedTestMenu(owner.ID)

	category := &model.Category{ID: uuid.New(), MenuID: menu.ID, Name: "Antipasti"}

	menuRepo := new(MockMenuRepository)
	categoryRepo := new(MockCategoryRepository)
	menuRepo.On("GetByID", ctx, menu.ID).Return(menu, nil)
	categoryRepo.On("GetByID", ctx, category.ID).Return(category, nil)

	svc := NewCategoryService(categoryRepo, menuRepo, logger)

	name := "Starters"
	updated, err := svc.Update(ctx, stranger, category.ID, &model.UpdateCategoryRequest{Name: &name})

	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
	assert.Nil(t, updated)
	categoryRepo.AssertNotCalled(t, "Update")
}

func TestCategoryService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	owner := &model.Actor{ID: uuid.New(), Role: model.RoleOwner}
	menu := ownedTestMenu(owner.ID)
	category := &model.Category{ID: uuid.New(), MenuID: menu.ID, Name: "Antipasti"}

	menuRepo := new(MockMenuRepository)
	categoryRepo := new(MockCategoryRepository)
	menuRepo.On("GetByID", ctx, menu.ID).Return(menu, nil)
	categoryRepo.On("GetByID", ctx, category.ID).Return(category, nil)
	categoryRepo.On("Delete", ctx, category.ID).Return(nil)

	svc := NewCategoryService(categoryRepo, menuRepo, logger)

	require.NoError(t, svc.Delete(ctx, owner, category.ID))
	categoryRepo.AssertExpectations(t)
}
