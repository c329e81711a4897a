package model

type Note struct {
	ID       int    `json:"id"`    // Monotonic per collection, max(existing)+1
	Owner    string `json:"owner"` // Username of the owning user
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Content  string `json:"content" binding:"required"`
	Schedule string `json:"schedule,omitempty"` // Optional ISO-8601 due time
	Created  string `json:"created"`            // YYYY-MM-DD
}
