package model

type Event struct {
	ID      int    `json:"id"`    // Monotonic per collection, max(existing)+1
	Owner   string `json:"owner"` // Username of the owning user
	Title   string `json:"title" binding:"required"`
	Details string `json:"details"`
	Time    string `json:"time" binding:"required"` // ISO-8601 due time
	Created string `json:"created"`                 // YYYY-MM-DD
}
