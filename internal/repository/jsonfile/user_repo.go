package jsonfile

import (
	"context"
	"sort"
	"strings"

	"remote-jobs-backend/internal/domain"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.doc.Users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrDuplicate
		}
	}
	s.doc.Users = append(s.doc.Users, *user)
	s.save()
	return nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.doc.Users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.doc.Users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

type favoriteRepo struct {
	store *Store
}

func NewFavoriteRepository(store *Store) domain.FavoriteRepository {
	return &favoriteRepo{store: store}
}

func (r *favoriteRepo) Create(_ context.Context, fav *domain.FavoriteJob) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// favorites are keyed on (user, url): the same posting scraped under two
	// different job IDs is still one favorite
	for _, f := range s.doc.Favorites {
		if f.UserID == fav.UserID && f.URL == fav.URL {
			return domain.ErrDuplicate
		}
	}
	s.doc.Favorites = append(s.doc.Favorites, *fav)
	s.save()
	return nil
}

func (r *favoriteRepo) ListByUser(_ context.Context, userID string) ([]domain.FavoriteJob, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.FavoriteJob
	for _, f := range s.doc.Favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *favoriteRepo) GetByID(_ context.Context, userID, id string) (*domain.FavoriteJob, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.doc.Favorites {
		if f.ID == id && f.UserID == userID {
			found := f
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *favoriteRepo) Update(_ context.Context, userID, id string, update domain.FavoriteUpdate) (*domain.FavoriteJob, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Favorites {
		f := &s.doc.Favorites[i]
		if f.ID != id || f.UserID != userID {
			continue
		}
		if update.Notes != nil {
			f.Notes = *update.Notes
		}
		if update.Priority != nil {
			f.Priority = *update.Priority
		}
		s.save()
		found := *f
		return &found, nil
	}
	return nil, domain.ErrNotFound
}

func (r *favoriteRepo) Delete(_ context.Context, userID, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.doc.Favorites {
		if f.ID == id && f.UserID == userID {
			s.doc.Favorites = append(s.doc.Favorites[:i], s.doc.Favorites[i+1:]...)
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}
