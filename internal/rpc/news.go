package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/Eventhenoob/betay-server/internal/betay"
)

//go:generate zenrpc

// NewsService provides read-only RPC methods over the news collection.
type NewsService struct {
	zenrpc.Service
	manager *betay.Manager
}

func NewNewsService(manager *betay.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List retrieves one page of news sorted by createdAt DESC, together with
// totalNews and totalPages. Missing or non-positive values fall back to the
// defaults.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:limit=10 items per page
//zenrpc:return paged news with totals
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, page, limit *int) (ListResponse, error) {
	var p, l int
	if page != nil {
		p = *page
	}
	if limit != nil {
		l = *limit
	}

	result, err := s.manager.NewsPage(ctx, p, l)
	if err != nil {
		return ListResponse{}, err
	}

	return NewListResponse(result), nil
}

// Count returns the total number of news articles.
//
//zenrpc:return count of news items
//zenrpc:500 internal server error
func (s *NewsService) Count(ctx context.Context) (int, error) {
	return s.manager.NewsCount(ctx)
}

// ByID retrieves a single news item by ID with full content.
//
//zenrpc:id news numeric ID
//zenrpc:return news with full content
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) ByID(ctx context.Context, id int) (*News, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	news, err := s.manager.NewsByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if news == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	result := NewNews(*news)
	return &result, nil
}
