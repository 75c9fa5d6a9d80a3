package card

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const idPrefix = "card-"

type Card struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	CreatedAt   time.Time `yaml:"createdAt"`
}

func New(id, title string, createdAt time.Time) Card {
	return Card{ID: id, Title: title, CreatedAt: createdAt}
}

// NewID returns a fresh card identifier.
func NewID() string {
	return idPrefix + uuid.NewString()
}

func (c Card) HasDescription() bool {
	return strings.TrimSpace(c.Description) != ""
}
