package betay

import "github.com/Eventhenoob/betay-server/internal/db"

func NewNews(n *db.News) News {
	return News{News: *n}
}

func NewNewsList(list []db.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(&list[i])
	}
	return result
}
