package jsonfile

import (
	"context"

	"remote-jobs-backend/internal/domain"
)

type profileRepo struct {
	store *Store
}

func NewProfileRepository(store *Store) domain.ProfileRepository {
	return &profileRepo{store: store}
}

func (r *profileRepo) Get(_ context.Context) (*domain.UserProfile, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyProfile(&s.doc.Profile), nil
}

func (r *profileRepo) Save(_ context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.doc.Profile
	if update.Skills != nil {
		p.Skills = append([]string(nil), update.Skills...)
	}
	if update.Experience != nil {
		p.Experience = *update.Experience
	}
	if update.MinHourlyRate != nil {
		p.MinHourlyRate = *update.MinHourlyRate
	}
	if update.MinProjectRate != nil {
		p.MinProjectRate = *update.MinProjectRate
	}
	if update.PreferredCategories != nil {
		p.PreferredCategories = append([]string(nil), update.PreferredCategories...)
	}

	s.save()
	return copyProfile(p), nil
}

// copyProfile returns a defensive copy so callers cannot mutate the stored
// slices through the returned pointer.
func copyProfile(p *domain.UserProfile) *domain.UserProfile {
	out := *p
	out.Skills = append([]string(nil), p.Skills...)
	out.PreferredCategories = append([]string(nil), p.PreferredCategories...)
	return &out
}
