package dto

import "time"

// CreateReviewRequest is the body of POST /notes/:id/reviews
type CreateReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateReviewRequest is the body of PUT /reviews/:id
type UpdateReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// ReviewResponse is one review of a note, newest first in listings
type ReviewResponse struct {
	ReviewID  int64     `json:"review_id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
