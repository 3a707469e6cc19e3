package service

import (
	"context"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMenuRepository is a mock implementation of repository.MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, menu *model.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetPublicBySlug(ctx context.Context, slug string) (*model.Menu, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Menu, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, menu *model.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuRepository) LoadTree(ctx context.Context, menu *model.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]model.Category, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDishRepository is a mock implementation of repository.DishRepository.
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(ctx context.Context, dish *model.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepository) Update(ctx context.Context, dish *model.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDishRepository) SetAllergens(ctx context.Context, dishID uuid.UUID, allergenIDs []uuid.UUID) error {
	args := m.Called(ctx, dishID, allergenIDs)
	return args.Error(0)
}

// MockAllergenRepository is a mock implementation of repository.AllergenRepository.
type MockAllergenRepository struct {
	mock.Mock
}

func (m *MockAllergenRepository) Create(ctx context.Context, allergen *model.Allergen) error {
	args := m.Called(ctx, allergen)
	return args.Error(0)
}

func (m *MockAllergenRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Allergen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Allergen), args.Error(1)
}

func (m *MockAllergenRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Allergen, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Allergen), args.Error(1)
}

func (m *MockAllergenRepository) List(ctx context.Context) ([]model.Allergen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Allergen), args.Error(1)
}

func (m *MockAllergenRepository) Update(ctx context.Context, allergen *model.Allergen) error {
	args := m.Called(ctx, allergen)
	return args.Error(0)
}

func (m *MockAllergenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTranslationRepository is a mock implementation of repository.TranslationRepository.
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) GetByMenuAndLanguage(ctx context.Context, menuID uuid.UUID, language string) (*model.Translation, error) {
	args := m.Called(ctx, menuID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Translation), args.Error(1)
}

func (m *MockTranslationRepository) Create(ctx context.Context, tr *model.Translation) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}

func (m *MockTranslationRepository) Delete(ctx context.Context, menuID uuid.UUID, language string) error {
	args := m.Called(ctx, menuID, language)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTranslationClient is a mock implementation of translation.Client.
type MockTranslationClient struct {
	mock.Mock
}

func (m *MockTranslationClient) Translate(ctx context.Context, projection *model.MenuTranslation, targetLanguage string) (*model.MenuTranslation, error) {
	args := m.Called(ctx, projection, targetLanguage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuTranslation), args.Error(1)
}
