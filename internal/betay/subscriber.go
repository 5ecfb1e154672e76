package betay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eventhenoob/betay-server/internal/db"
)

// Subscribe registers a newsletter subscriber. The email must be
// syntactically valid and not registered yet. Uniqueness is guaranteed by
// the store's unique index; a lost race on the insert surfaces as
// ErrEmailExists just like the lookup hit.
func (m *Manager) Subscribe(ctx context.Context, email string) error {
	if err := m.validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}

	existing, err := m.db.SubscriberByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("db get subscriber by email: %w", err)
	}
	if existing != nil {
		return ErrEmailExists
	}

	err = m.db.InsertSubscriber(ctx, &db.Subscriber{
		Email:        email,
		SubscribedAt: time.Now(),
	})
	if errors.Is(err, db.ErrUniqueViolation) {
		return ErrEmailExists
	} else if err != nil {
		return fmt.Errorf("db insert subscriber: %w", err)
	}

	return nil
}

// SendContactMail relays a contact-form message to the site operators.
// No retries: a transport fault is reported to the caller as-is.
func (m *Manager) SendContactMail(ctx context.Context, name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return ErrMissingFields
	}

	if err := m.mailer.Send(name, email, message); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}

	return nil
}
