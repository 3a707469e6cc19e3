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

type dishFixture struct {
	owner    *model.Actor
	menu     *model.Menu
	category *model.Category

	menuRepo     *MockMenuRepository
	categoryRepo *MockCategoryRepository
	dishRepo     *MockDishRepository
	allergenRepo *MockAllergenRepository

	svc DishService
}

func newDishFixture(ctx context.Context) *dishFixture {
	f := &dishFixture{
		owner:        &model.Actor{ID: uuid.New(), Role: model.RoleOwner},
		menuRepo:     new(MockMenuRepository),
		categoryRepo: new(MockCategoryRepository),
		dishRepo:     new(MockDishRepository),
		allergenRepo: new(MockAllergenRepository),
	}
	f.menu = ownedTestMenu(f.owner.ID)
	f.category = &model.Category{ID: uuid.New(), MenuID: f.menu.ID, Name: "Antipasti"}

	f.menuRepo.On("GetByID", ctx, f.menu.ID).Return(f.menu, nil).Maybe()
	f.categoryRepo.On("GetByID", ctx, f.category.ID).Return(f.category, nil).Maybe()

	f.svc = NewDishService(f.dishRepo, f.categoryRepo, f.menuRepo, f.allergenRepo, zerolog.Nop())
	return f
}

func TestDishService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid dish", func(t *testing.T) {
		f := newDishFixture(ctx)
		f.dishRepo.On("Create", ctx, mock.AnythingOfType("*model.Dish")).Return(nil)

		dish, err := f.svc.Create(ctx, f.owner, f.category.ID, &model.CreateDishRequest{
			Title: "Bruschetta",
			Price: 5.50,
		})

		require.NoError(t, err)
		assert.Equal(t, f.category.ID, dish.CategoryID)
		assert.Equal(t, model.Price(5.50), dish.Price)
		assert.True(t, dish.IsAvailable, "availability defaults to true")
	})

	t.Run("negative price rejected", func(t *testing.T) {
		f := newDishFixture(ctx)

		dish, err := f.svc.Create(ctx, f.owner, f.category.ID, &model.CreateDishRequest{
			Title: "Bruschetta",
			Price: -1,
		})

		assert.ErrorIs(t, err, model.ErrInvalidPrice)
		assert.Nil(t, dish)
		f.dishRepo.AssertNotCalled(t, "Create")
	})

	t.Run("zero price allowed", func(t *testing.T) {
		f := newDishFixture(ctx)
		f.dishRepo.On("Create", ctx, mock.AnythingOfType("*model.Dish")).Return(nil)

		dish, err := f.svc.Create(ctx, f.owner, f.category.ID, &model.CreateDishRequest{
			Title: "Tap water",
			Price: 0,
		})

		require.NoError(t, err)
		assert.Equal(t, model.Price(0), dish.Price)
	})
}

func TestDishService_Update_NegativePriceRejected(t *testing.T) {
	ctx := context.Background()
	f := newDishFixture(ctx)

	dish := &model.Dish{ID: uuid.New(), CategoryID: f.category.ID, Title: "Bruschetta", Price: 5.50}
	f.dishRepo.On("GetByID", ctx, dish.ID).Return(dish, nil)

	price := model.Price(-3)
	updated, err := f.svc.Update(ctx, f.owner, dish.ID, &model.UpdateDishRequest{Price: &price})

	assert.ErrorIs(t, err, model.ErrInvalidPrice)
	assert.Nil(t, updated)
	f.dishRepo.AssertNotCalled(t, "Update")
}

func TestDishService_SetAllergens(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown allergen rejected", func(t *testing.T) {
		f := newDishFixture(ctx)
		dish := &model.Dish{ID: uuid.New(), CategoryID: f.category.ID, Title: "Bruschetta"}
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		f.dishRepo.On("GetByID", ctx, dish.ID).Return(dish, nil)
		// Only one of the two referenced allergens exists.
		f.allergenRepo.On("GetByIDs", ctx, ids).Return([]model.Allergen{
			{ID: ids[0], Name: "Gluten", Code: "GLU"},
		}, nil)

		updated, err := f.svc.SetAllergens(ctx, f.owner, dish.ID, ids)

		assert.ErrorIs(t, err, model.ErrAllergenNotFound)
		assert.Nil(t, updated)
		f.dishRepo.AssertNotCalled(t, "SetAllergens")
	})

	t.Run("replaces set and re-reads dish", func(t *testing.T) {
		f := newDishFixture(ctx)
		dish := &model.Dish{ID: uuid.New(), CategoryID: f.category.ID, Title: "Bruschetta"}
		ids := []uuid.UUID{uuid.New()}

		f.dishRepo.On("GetByID", ctx, dish.ID).Return(dish, nil)
		f.allergenRepo.On("GetByIDs", ctx, ids).Return([]model.Allergen{
			{ID: ids[0], Name: "Gluten", Code: "GLU"},
		}, nil)
		f.dishRepo.On("SetAllergens", ctx, dish.ID, ids).Return(nil)

		updated, err := f.svc.SetAllergens(ctx, f.owner, dish.ID, ids)

		require.NoError(t, err)
		assert.Equal(t, dish.ID, updated.ID)
		f.dishRepo.AssertExpectations(t)
	})

	t.Run("empty set clears without catalogue lookup", func(t *testing.T) {
		f := newDishFixture(ctx)
		dish := &model.Dish{ID: uuid.New(), CategoryID: f.category.ID, Title: "Bruschetta"}

		f.dishRepo.On("GetByID", ctx, dish.ID).Return(dish, nil)
		f.dishRepo.On("SetAllergens", ctx, dish.ID, []uuid.UUID(nil)).Return(nil)

		updated, err := f.svc.SetAllergens(ctx, f.owner, dish.ID, nil)

		require.NoError(t, err)
		assert.Equal(t, dish.ID, updated.ID)
		f.allergenRepo.AssertNotCalled(t, "GetByIDs")
	})
}
