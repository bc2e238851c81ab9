package domain

// Category groups tasks. Names are unique across the system.
type Category struct {
	ID       int64  `json:"id"       db:"id"`
	Category string `json:"category" db:"category"`
}
