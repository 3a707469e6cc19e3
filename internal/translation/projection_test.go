package translation

import (
	"testing"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMenu() *model.Menu {
	now := time.Now()
	return &model.Menu{
		ID:          uuid.New(),
		Title:       "Trattoria Roma",
		Slug:        "trattoria-roma",
		Description: "Cucina casalinga",
		Language:    "it",
		Currency:    "EUR",
		IsActive:    true,
		IsPublic:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
		Categories: []model.Category{
			{
				ID:   uuid.New(),
				Name: "Antipasti",
				Dishes: []model.Dish{
					{ID: uuid.New(), Title: "Bruschetta", Description: "Pane tostato", Price: 5.50},
				},
			},
			{
				ID:          uuid.New(),
				Name:        "Secondi",
				Description: "Piatti principali",
				Children: []model.Category{
					{
						ID:   uuid.New(),
						Name: "Carne",
						Dishes: []model.Dish{
							{ID: uuid.New(), Title: "Saltimbocca", Price: 14.00},
							{ID: uuid.New(), Title: "Ossobuco", Price: 16.50},
						},
					},
				},
			},
		},
	}
}

func TestProject_ExtractsOnlyTranslatableText(t *testing.T) {
	menu := sampleMenu()

	projection := Project(menu)

	require.NotNil(t, projection)
	assert.Equal(t, "Trattoria Roma", projection.Title)
	assert.Equal(t, "Cucina casalinga", projection.Description)

	require.Len(t, projection.Categories, 2)
	assert.Equal(t, "Antipasti", projection.Categories[0].Name)
	require.Len(t, projection.Categories[0].Dishes, 1)
	assert.Equal(t, "Bruschetta", projection.Categories[0].Dishes[0].Title)
	assert.Equal(t, "Pane tostato", projection.Categories[0].Dishes[0].Description)

	assert.Equal(t, "Secondi", projection.Categories[1].Name)
	assert.Equal(t, "Piatti principali", projection.Categories[1].Description)
	require.Len(t, projection.Categories[1].Children, 1)
	assert.Equal(t, "Carne", projection.Categories[1].Children[0].Name)
	require.Len(t, projection.Categories[1].Children[0].Dishes, 2)
	assert.Equal(t, "Saltimbocca", projection.Categories[1].Children[0].Dishes[0].Title)
	assert.Equal(t, "Ossobuco", projection.Categories[1].Children[0].Dishes[1].Title)
}

func TestProject_PreservesSourceOrdering(t *testing.T) {
	menu := &model.Menu{
		Title: "Ordered",
		Categories: []model.Category{
			{Name: "Third", Dishes: []model.Dish{{Title: "c1"}, {Title: "c2"}, {Title: "c3"}}},
			{Name: "First"},
			{Name: "Second"},
		},
	}

	projection := Project(menu)

	require.Len(t, projection.Categories, 3)
	assert.Equal(t, "Third", projection.Categories[0].Name)
	assert.Equal(t, "First", projection.Categories[1].Name)
	assert.Equal(t, "Second", projection.Categories[2].Name)
	assert.Equal(t, []model.DishTranslation{
		{Title: "c1"}, {Title: "c2"}, {Title: "c3"},
	}, projection.Categories[0].Dishes)
}

func TestProject_EmptyMenu(t *testing.T) {
	projection := Project(&model.Menu{Title: "Empty"})

	assert.Equal(t, "Empty", projection.Title)
	assert.Nil(t, projection.Categories)
}
