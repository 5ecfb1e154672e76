package rest

import "time"

// NewsListRequest holds the raw listing query parameters. They are decoded
// as strings and coerced per value, so a garbage page does not discard a
// valid limit.
type NewsListRequest struct {
	Page  string
	Limit string
}

type SubscribeRequest struct {
	Email string `json:"email" form:"email"`
}

type ContactMailRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

type News struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	CreatedBy        string    `json:"createdBy"`
	Image            string    `json:"image"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
}

type NewsListResponse struct {
	TotalPages int    `json:"totalPages"`
	TotalNews  int    `json:"totalNews"`
	Data       []News `json:"data"`
}

type NewsResponse struct {
	Data *News `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
