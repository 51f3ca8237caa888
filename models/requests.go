package models

// CreateUserRequest is the registration payload. Password is write-only:
// it appears in requests but never in any response.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// TokenRequest is the credential payload exchanged for a bearer token.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial profile update. Nil fields are left
// untouched; a non-nil Password triggers a re-hash.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// NameRef references a tag or ingredient by name in recipe write payloads.
// Create/update payloads supply {"name": ...} objects; any id present is
// ignored because association resolution is always by (owner, name).
type NameRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// CreateRecipeRequest is the recipe creation payload. Tags and Ingredients
// may be omitted or empty; both mean "no associations of that category".
// Any owner information in the payload is discarded: the owner is always
// the authenticated caller.
type CreateRecipeRequest struct {
	Title       string    `json:"title"`
	TimeMinutes int       `json:"time_minutes"`
	Price       Price     `json:"price"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Tags        []NameRef `json:"tags"`
	Ingredients []NameRef `json:"ingredients"`
}

// UpdateRecipeRequest is a presence-aware recipe update payload.
//
// Every field is a pointer so that "key absent" and "key present with an
// empty value" are distinguishable after decoding. For Tags and Ingredients
// that distinction is semantic: a nil pointer leaves the current
// associations untouched, while a pointer to an empty slice clears them.
type UpdateRecipeRequest struct {
	Title       *string    `json:"title"`
	TimeMinutes *int       `json:"time_minutes"`
	Price       *Price     `json:"price"`
	Description *string    `json:"description"`
	Link        *string    `json:"link"`
	Tags        *[]NameRef `json:"tags"`
	Ingredients *[]NameRef `json:"ingredients"`
}

// RenameRequest is the payload for renaming a tag or an ingredient.
type RenameRequest struct {
	Name string `json:"name"`
}
