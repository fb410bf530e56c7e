package domain

import "context"

// UserProfile is the single per-installation matching profile. Auth users
// exist only for the favorites subsystem; matching always runs against this
// one record.
type UserProfile struct {
	ID                  string   `json:"id"`
	Skills              []string `json:"skills"`
	Experience          string   `json:"experience"`
	MinHourlyRate       int      `json:"minHourlyRate,omitempty"`
	MinProjectRate      int      `json:"minProjectRate,omitempty"`
	PreferredCategories []string `json:"preferredCategories"`
}

// ProfileUpdate carries a partial profile; nil fields are left untouched by
// Save (shallow merge).
type ProfileUpdate struct {
	Skills              []string `json:"skills"`
	Experience          *string  `json:"experience"`
	MinHourlyRate       *int     `json:"minHourlyRate"`
	MinProjectRate      *int     `json:"minProjectRate"`
	PreferredCategories []string `json:"preferredCategories"`
}

type ProfileRepository interface {
	// Get returns a defensive copy of the stored profile.
	Get(ctx context.Context) (*UserProfile, error)
	// Save shallow-merges the update over the stored profile and persists.
	Save(ctx context.Context, update ProfileUpdate) (*UserProfile, error)
}

type ProfileUsecase interface {
	Get(ctx context.Context) (*UserProfile, error)
	Update(ctx context.Context, update ProfileUpdate) (*UserProfile, error)
	AddSkills(ctx context.Context, skills []string) (*UserProfile, error)
	RemoveSkill(ctx context.Context, skill string) (*UserProfile, error)
	Categories() []string
}
