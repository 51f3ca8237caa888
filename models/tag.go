package models

// Tag is a user-owned recipe label. Names are matched byte-for-byte:
// no trimming or case folding is applied, and uniqueness of (user, name)
// is enforced by the storage layer.
type Tag struct {
	// ID is the server-assigned identifier of the tag.
	ID int64 `json:"id"`

	// UserID is the owning user, derived from the authenticated caller.
	UserID int64 `json:"-"`

	// Name is the tag label.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
