package rest

import "github.com/Eventhenoob/betay-server/internal/betay"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

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

func NewNewsList(list []betay.News) []News {
	return Map(list, NewNews)
}
