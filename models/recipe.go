package models

import "time"

// Recipe is a user-owned recipe record with optional tag and ingredient
// associations. The owner is assigned at creation time from the
// authenticated caller and never changes afterwards.
type Recipe struct {
	// ID is the server-assigned identifier of the recipe.
	ID int64 `json:"id"`

	// UserID is the owning user. It is derived from the authenticated
	// request context and never accepted from or exposed to clients.
	UserID int64 `json:"-"`

	// Title is the recipe title.
	Title string `json:"title"`

	// TimeMinutes is the preparation time in minutes.
	TimeMinutes int `json:"time_minutes"`

	// Price is the decimal cost of the recipe.
	Price Price `json:"price"`

	// Description is the free-text recipe body. Present only in the
	// detail representation.
	Description string `json:"description"`

	// Link is an optional URL pointing to the recipe source.
	Link string `json:"link"`

	// Tags are the tag rows currently attached to the recipe.
	Tags []Tag `json:"tags"`

	// Ingredients are the ingredient rows currently attached to the recipe.
	Ingredients []Ingredient `json:"ingredients"`

	// CreatedAt is the timestamp when the recipe was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeSummary is the list representation of a recipe: the detail fields
// minus description, link and associations.
type RecipeSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	TimeMinutes int    `json:"time_minutes"`
	Price       Price  `json:"price"`
}

// Summary projects the recipe onto its list representation.
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
	}
}
