package model

// Post est une publication du fil communautaire
type Post struct {
	ID        string `json:"postId"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
	Image     string `json:"image,omitempty"`
}
