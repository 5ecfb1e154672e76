package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// ErrUniqueViolation is returned when an insert hits a unique index.
var ErrUniqueViolation = errors.New("unique constraint violation")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// News retrieves one page of news sorted by createdAt DESC.
func (r *Repository) News(ctx context.Context, page, pageSize int) ([]News, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."createdAt" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*News)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

func (r *Repository) NewsByID(ctx context.Context, newsID int) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."newsId" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

func (r *Repository) InsertNews(ctx context.Context, news *News) error {
	_, err := r.db.ModelContext(ctx, news).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

// InsertSubscriber stores a new subscriber. The subscribers table carries a
// unique index on email, so the insert is the atomic insert-iff-absent step;
// a lost race surfaces as ErrUniqueViolation.
func (r *Repository) InsertSubscriber(ctx context.Context, subscriber *Subscriber) error {
	_, err := r.db.ModelContext(ctx, subscriber).Insert()
	if err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return ErrUniqueViolation
		}
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}

	return nil
}

func (r *Repository) SubscriberByEmail(ctx context.Context, email string) (*Subscriber, error) {
	subscriber := &Subscriber{}
	err := r.db.ModelContext(ctx, subscriber).
		Where(`"t"."email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get subscriber by email: %w", err)
	}

	return subscriber, nil
}

func (r *Repository) SubscriberCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Subscriber)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get subscriber count: %w", err)
	}

	return count, nil
}
