package contact

import "context"

// Service defines the business logic interface for contact messages
type Service interface {
	// Submit stores a contact-form message. All four fields are required.
	Submit(ctx context.Context, fullName, email, subject, body string) (*Message, error)

	// List retrieves stored messages newest-first, for back-office review
	List(ctx context.Context) ([]*Message, error)
}

// Repository defines the data access interface for contact messages
type Repository interface {
	Create(ctx context.Context, msg *Message) error
	List(ctx context.Context) ([]*Message, error)
}
