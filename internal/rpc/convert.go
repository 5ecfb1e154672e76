package rpc

import "github.com/Eventhenoob/betay-server/internal/betay"

func NewNews(n betay.News) News {
	return News{
		ID:               n.ID,
		Title:            n.Title,
		CreatedBy:        n.CreatedBy,
		Image:            n.Image,
		ShortDescription: n.ShortDescription,
		Content:          n.Content,
		CreatedAt:        n.CreatedAt,
	}
}

func NewListResponse(p betay.Page) ListResponse {
	data := make([]News, len(p.News))
	for i := range p.News {
		data[i] = NewNews(p.News[i])
	}

	return ListResponse{
		TotalPages: p.TotalPages,
		TotalNews:  p.TotalNews,
		Data:       data,
	}
}
