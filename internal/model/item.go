package model

// Item is the domain model for a todo entry.
// The ID is the identity: toggles and removals address items by it,
// never by label or position.
type Item struct {
	ID        int64
	Label     string
	Completed bool
}
