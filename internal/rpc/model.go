package rpc

import (
	"time"
)

type News struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	CreatedBy        string    `json:"createdBy"`
	Image            string    `json:"image"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
}

type ListResponse struct {
	TotalPages int    `json:"totalPages"`
	TotalNews  int    `json:"totalNews"`
	Data       []News `json:"data"`
}
