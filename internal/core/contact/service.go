package contact

import (
	"context"
	"strings"
)

type contactService struct {
	repo Repository
}

// NewContactService creates a new contact message service
func NewContactService(repo Repository) Service {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, fullName, email, subject, body string) (*Message, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)

	if fullName == "" || email == "" || subject == "" || body == "" {
		return nil, ErrAllFieldsRequired
	}

	msg := &Message{
		FullName: fullName,
		Email:    email,
		Subject:  subject,
		Body:     body,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]*Message, error) {
	return s.repo.List(ctx)
}
