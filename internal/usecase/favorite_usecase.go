package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/apperror"

	"github.com/google/uuid"
)

type favoriteUsecase struct {
	favoriteRepo domain.FavoriteRepository
}

func NewFavoriteUsecase(favoriteRepo domain.FavoriteRepository) domain.FavoriteUsecase {
	return &favoriteUsecase{favoriteRepo: favoriteRepo}
}

func (u *favoriteUsecase) Add(ctx context.Context, userID string, fav *domain.FavoriteJob) error {
	if strings.TrimSpace(fav.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if strings.TrimSpace(fav.URL) == "" {
		return apperror.BadRequest("URL is required")
	}

	fav.ID = uuid.NewString()
	fav.UserID = userID
	fav.CreatedAt = time.Now()

	if err := u.favoriteRepo.Create(ctx, fav); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("Job is already in favorites")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *favoriteUsecase) List(ctx context.Context, userID string) ([]domain.FavoriteJob, error) {
	favs, err := u.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return favs, nil
}

func (u *favoriteUsecase) Get(ctx context.Context, userID, id string) (*domain.FavoriteJob, error) {
	fav, err := u.favoriteRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Favorite not found")
		}
		return nil, apperror.Internal(err)
	}
	return fav, nil
}

func (u *favoriteUsecase) Update(ctx context.Context, userID, id string, update domain.FavoriteUpdate) (*domain.FavoriteJob, error) {
	fav, err := u.favoriteRepo.Update(ctx, userID, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Favorite not found")
		}
		return nil, apperror.Internal(err)
	}
	return fav, nil
}

func (u *favoriteUsecase) Remove(ctx context.Context, userID, id string) error {
	if err := u.favoriteRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Favorite not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
