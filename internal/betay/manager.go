package betay

import (
	"context"
	"mime/multipart"

	"github.com/go-playground/validator/v10"

	"github.com/Eventhenoob/betay-server/internal/db"
)

// Store is the slice of the repository the manager needs.
type Store interface {
	News(ctx context.Context, page, pageSize int) ([]db.News, error)
	NewsCount(ctx context.Context) (int, error)
	NewsByID(ctx context.Context, newsID int) (*db.News, error)
	InsertNews(ctx context.Context, news *db.News) error
	InsertSubscriber(ctx context.Context, subscriber *db.Subscriber) error
	SubscriberByEmail(ctx context.Context, email string) (*db.Subscriber, error)
}

// ImageStore persists uploaded images and resolves their public URLs.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(name string) error
	PublicURL(name string) string
}

// Mailer delivers a contact-form message to the site operators.
type Mailer interface {
	Send(name, replyTo, message string) error
}

type Manager struct {
	db       Store
	images   ImageStore
	mailer   Mailer
	newsKey  string
	validate *validator.Validate
}

func NewManager(store Store, images ImageStore, mailer Mailer, newsKey string) *Manager {
	return &Manager{
		db:       store,
		images:   images,
		mailer:   mailer,
		newsKey:  newsKey,
		validate: validator.New(),
	}
}
