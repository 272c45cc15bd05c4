package doctors

import (
	"context"
	"strings"

	"MedBoard/internal/core/identity"
)

type doctorService struct {
	repo Repository
}

// NewDoctorService creates a new doctors directory service
func NewDoctorService(repo Repository) Service {
	return &doctorService{repo: repo}
}

func (s *doctorService) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *doctorService) Add(ctx context.Context, id identity.Identity, name, specialty, bio string) (*Doctor, error) {
	if !id.Role.IsStaff() {
		return nil, ErrNotAuthorized
	}

	name = strings.TrimSpace(name)
	specialty = strings.TrimSpace(specialty)
	if name == "" {
		return nil, ErrNameRequired
	}
	if specialty == "" {
		return nil, ErrSpecialtyRequired
	}

	doctor := &Doctor{
		Name:      name,
		Specialty: specialty,
		Bio:       strings.TrimSpace(bio),
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *doctorService) Remove(ctx context.Context, id identity.Identity, doctorID int64) error {
	if !id.Role.IsStaff() {
		return ErrNotAuthorized
	}
	return s.repo.Delete(ctx, doctorID)
}
