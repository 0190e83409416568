// Package storage defines persistence contracts for messages and pledges
// submitted through the site forms.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested inbox record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a record with the same ID was already saved.
	ErrAlreadyExists = errors.New("record already exists")
)

// ContactMessage is one contact form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Locale    string
	CreatedAt time.Time
}

// DonationPledge is one donate form submission. No payment is taken.
type DonationPledge struct {
	ID            string
	Name          string
	Email         string
	AmountCents   int64
	PaymentMethod string
	Locale        string
	CreatedAt     time.Time
}

// InboxStore persists form submissions. List calls return newest first.
type InboxStore interface {
	SaveContactMessage(ctx context.Context, message ContactMessage) error
	GetContactMessage(ctx context.Context, id string) (ContactMessage, error)
	ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error)
	SaveDonationPledge(ctx context.Context, pledge DonationPledge) error
	ListDonationPledges(ctx context.Context, limit int) ([]DonationPledge, error)
}
