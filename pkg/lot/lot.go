package lot

import (
	"time"

	"github.com/google/uuid"
)

// Lot is a batch of stock items sharing an expiration date.
type Lot struct {
	ID                uuid.UUID `yaml:"id"`
	Number            string    `yaml:"number"`
	Interdicted       bool      `yaml:"interdicted"`
	ExpirationDate    time.Time `yaml:"expiration_date"`
	AvailableQuantity int       `yaml:"available_quantity"`
}

// Option configures a Lot created with New.
type Option func(*Lot)

func WithID(id uuid.UUID) Option {
	return func(l *Lot) { l.ID = id }
}

func WithExpiration(t time.Time) Option {
	return func(l *Lot) { l.ExpirationDate = t }
}

func WithQuantity(n int) Option {
	return func(l *Lot) { l.AvailableQuantity = n }
}

// WithInterdiction marks the lot as interdicted.
func WithInterdiction() Option {
	return func(l *Lot) { l.Interdicted = true }
}

// New creates a lot with a random ID that expires in a year and holds no stock.
func New(number string, opts ...Option) Lot {
	l := Lot{
		ID:             uuid.New(),
		Number:         number,
		ExpirationDate: time.Now().AddDate(1, 0, 0),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Equal reports whether two lots share the same ID.
func (l Lot) Equal(other Lot) bool {
	return l.ID == other.ID
}
