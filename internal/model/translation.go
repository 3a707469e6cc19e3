package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Translation is a stored translation of a menu's text into one language.
// At most one record exists per (menu_id, language) pair; a record is never
// updated, only deleted and regenerated.
type Translation struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	MenuID    uuid.UUID       `json:"menuId" db:"menu_id"`
	Language  string          `json:"language" db:"language"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// MenuTranslation mirrors the translatable projection of a menu snapshot.
// Array ordering is the correlation key between source and translated text,
// so the slices here must keep the exact ordering of the snapshot they were
// projected from.
type MenuTranslation struct {
	Title       string                `json:"title,omitempty"`
	Description string                `json:"description,omitempty"`
	Categories  []CategoryTranslation `json:"categories,omitempty"`
}

// CategoryTranslation holds the translated text of one category and,
// positionally, of its children and dishes.
type CategoryTranslation struct {
	Name        string                `json:"name,omitempty"`
	Description string                `json:"description,omitempty"`
	Children    []CategoryTranslation `json:"children,omitempty"`
	Dishes      []DishTranslation     `json:"dishes,omitempty"`
}

// DishTranslation holds the translated text of one dish.
type DishTranslation struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Decode parses the stored JSON payload into a MenuTranslation.
func (t *Translation) Decode() (*MenuTranslation, error) {
	var mt MenuTranslation
	if err := json.Unmarshal(t.Payload, &mt); err != nil {
		return nil, err
	}
	return &mt, nil
}
