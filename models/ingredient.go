package models

// Ingredient is a user-owned recipe component. It shares the shape and
// ownership semantics of [Tag]: names are matched byte-for-byte and
// (user, name) uniqueness is a storage constraint.
type Ingredient struct {
	// ID is the server-assigned identifier of the ingredient.
	ID int64 `json:"id"`

	// UserID is the owning user, derived from the authenticated caller.
	UserID int64 `json:"-"`

	// Name is the ingredient name.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Ingredient model.
func (i Ingredient) TableName() string {
	return "ingredients"
}
