package betay

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/Eventhenoob/betay-server/internal/db"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// NewsInput carries the fields of a news creation request.
type NewsInput struct {
	Title            string `validate:"required"`
	CreatedBy        string `validate:"required"`
	ShortDescription string `validate:"required"`
	Content          string `validate:"required"`
	Key              string
}

// NewsPage retrieves one listing page sorted by createdAt DESC.
// Non-positive page or pageSize values clamp to the defaults (1, 10), so
// malformed client input degrades to the first default page instead of
// failing the request.
func (m *Manager) NewsPage(ctx context.Context, page, pageSize int) (Page, error) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	count, err := m.db.NewsCount(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("db get news count: %w", err)
	}

	dbNews, err := m.db.News(ctx, page, pageSize)
	if err != nil {
		return Page{}, fmt.Errorf("db get news: %w", err)
	}

	return Page{
		News:       NewNewsList(dbNews),
		TotalNews:  count,
		TotalPages: (count + pageSize - 1) / pageSize,
	}, nil
}

func (m *Manager) NewsCount(ctx context.Context) (int, error) {
	count, err := m.db.NewsCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("db get news count: %w", err)
	}

	return count, nil
}

func (m *Manager) NewsByID(ctx context.Context, newsID int) (*News, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	news := NewNews(dbNews)
	return &news, nil
}

// CreateNews validates the input, stores the uploaded image and persists the
// article. The image and the record form one logical unit: if the record
// insert fails, the already-written image is removed again.
func (m *Manager) CreateNews(ctx context.Context, in NewsInput, image *multipart.FileHeader) (*News, error) {
	if image == nil {
		return nil, ErrMissingFields
	}
	if err := m.validate.Struct(in); err != nil {
		return nil, ErrMissingFields
	}
	if in.Key != m.newsKey {
		return nil, ErrInvalidKey
	}

	name, err := m.images.Save(image)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	news := &db.News{
		Title:            in.Title,
		CreatedBy:        in.CreatedBy,
		Image:            m.images.PublicURL(name),
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		CreatedAt:        time.Now(),
	}

	if err := m.db.InsertNews(ctx, news); err != nil {
		_ = m.images.Remove(name)
		return nil, fmt.Errorf("db insert news: %w", err)
	}

	result := NewNews(news)
	return &result, nil
}
