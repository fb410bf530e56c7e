package usecase

import (
	"context"
	"strings"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		validate:    validator.New(),
	}
}

type profileRules struct {
	Skills              []string `validate:"omitempty,dive,min=1,max=100"`
	Experience          *string  `validate:"omitempty,max=200"`
	MinHourlyRate       *int     `validate:"omitempty,gte=0,lte=10000"`
	MinProjectRate      *int     `validate:"omitempty,gte=0,lte=1000000"`
	PreferredCategories []string `validate:"omitempty,dive,min=1,max=100"`
}

func (u *profileUsecase) Get(ctx context.Context) (*domain.UserProfile, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) Update(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	rules := profileRules(update)
	if err := u.validate.Struct(&rules); err != nil {
		return nil, apperror.BadRequest("Invalid profile: " + err.Error())
	}

	profile, err := u.profileRepo.Save(ctx, update)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// AddSkills appends unseen skills, keeping existing order and ignoring
// case-insensitive duplicates.
func (u *profileUsecase) AddSkills(ctx context.Context, skills []string) (*domain.UserProfile, error) {
	if len(skills) == 0 {
		return nil, apperror.BadRequest("No skills provided")
	}

	current, err := u.profileRepo.Get(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	seen := make(map[string]bool, len(current.Skills))
	for _, s := range current.Skills {
		seen[strings.ToLower(s)] = true
	}

	merged := current.Skills
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		merged = append(merged, s)
	}

	profile, err := u.profileRepo.Save(ctx, domain.ProfileUpdate{Skills: merged})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) RemoveSkill(ctx context.Context, skill string) (*domain.UserProfile, error) {
	current, err := u.profileRepo.Get(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	kept := make([]string, 0, len(current.Skills))
	for _, s := range current.Skills {
		if !strings.EqualFold(s, skill) {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(current.Skills) {
		return nil, apperror.NotFound("Skill not found in profile")
	}

	profile, err := u.profileRepo.Save(ctx, domain.ProfileUpdate{Skills: kept})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) Categories() []string {
	return domain.SkillCategories
}
