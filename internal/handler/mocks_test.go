package handler

import (
	"context"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMenuService is a mock implementation of service.MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) Create(ctx context.Context, actor *model.Actor, req *model.CreateMenuRequest) (*model.Menu, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) List(ctx context.Context, actor *model.Actor) ([]model.Menu, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuService) Get(ctx context.Context, actor *model.Actor, id uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) Update(ctx context.Context, actor *model.Actor, id uuid.UUID, req *model.UpdateMenuRequest) (*model.Menu, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, actor *model.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// MockCategoryService is a mock implementation of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, actor *model.Actor, menuID uuid.UUID, req *model.CreateCategoryRequest) (*model.Category, error) {
	args := m.Called(ctx, actor, menuID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, actor *model.Actor, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.Category, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, actor *model.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// MockTranslationService is a mock implementation of service.TranslationService.
type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) Generate(ctx context.Context, actor *model.Actor, menuID uuid.UUID, language string) (*model.Translation, error) {
	args := m.Called(ctx, actor, menuID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Translation), args.Error(1)
}

func (m *MockTranslationService) Delete(ctx context.Context, actor *model.Actor, menuID uuid.UUID, language string) error {
	args := m.Called(ctx, actor, menuID, language)
	return args.Error(0)
}

// MockPublicMenuService is a mock implementation of service.PublicMenuService.
type MockPublicMenuService struct {
	mock.Mock
}

func (m *MockPublicMenuService) Resolve(ctx context.Context, slug, language string) (*model.Menu, error) {
	args := m.Called(ctx, slug, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}
