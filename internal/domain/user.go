package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicate signals a uniqueness violation (existing email, already
// favorited URL).
var ErrDuplicate = errors.New("resource already exists")

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// FavoriteJob is a job the user pinned for follow-up. Uniqueness is keyed on
// (UserID, URL): two scraped jobs with different IDs but the same URL are the
// same favorite.
type FavoriteJob struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	JobID        string    `json:"job_id,omitempty"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Source       string    `json:"source"`
	URL          string    `json:"url"`
	Description  string    `json:"description,omitempty"`
	Salary       string    `json:"salary,omitempty"`
	Remote       bool      `json:"remote"`
	Posted       time.Time `json:"posted,omitempty"`
	MatchScore   int       `json:"matchScore,omitempty"`
	MatchReasons []string  `json:"matchReasons,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Priority     string    `json:"priority,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FavoriteUpdate carries the mutable fields of a favorite.
type FavoriteUpdate struct {
	Notes    *string `json:"notes"`
	Priority *string `json:"priority"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type FavoriteRepository interface {
	// Create fails with ErrDuplicate when (UserID, URL) already exists.
	Create(ctx context.Context, fav *FavoriteJob) error
	ListByUser(ctx context.Context, userID string) ([]FavoriteJob, error)
	GetByID(ctx context.Context, userID, id string) (*FavoriteJob, error)
	Update(ctx context.Context, userID, id string, update FavoriteUpdate) (*FavoriteJob, error)
	Delete(ctx context.Context, userID, id string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type FavoriteUsecase interface {
	Add(ctx context.Context, userID string, fav *FavoriteJob) error
	List(ctx context.Context, userID string) ([]FavoriteJob, error)
	Get(ctx context.Context, userID, id string) (*FavoriteJob, error)
	Update(ctx context.Context, userID, id string, update FavoriteUpdate) (*FavoriteJob, error)
	Remove(ctx context.Context, userID, id string) error
}
