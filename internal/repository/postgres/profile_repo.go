package postgres

import (
	"context"
	"errors"

	"remote-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileID = "default"

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, skills, experience, min_hourly_rate, min_project_rate, preferred_categories
              FROM profile WHERE id = $1`
	var p domain.UserProfile
	var skills, categories string
	err := r.db.QueryRow(ctx, query, profileID).Scan(
		&p.ID, &skills, &p.Experience, &p.MinHourlyRate, &p.MinProjectRate, &categories,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.UserProfile{ID: profileID, Skills: []string{}, PreferredCategories: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	p.Skills = splitList(skills)
	p.PreferredCategories = splitList(categories)
	return &p, nil
}

func (r *profileRepo) Save(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	current, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	if update.Skills != nil {
		current.Skills = update.Skills
	}
	if update.Experience != nil {
		current.Experience = *update.Experience
	}
	if update.MinHourlyRate != nil {
		current.MinHourlyRate = *update.MinHourlyRate
	}
	if update.MinProjectRate != nil {
		current.MinProjectRate = *update.MinProjectRate
	}
	if update.PreferredCategories != nil {
		current.PreferredCategories = update.PreferredCategories
	}

	query := `INSERT INTO profile (id, skills, experience, min_hourly_rate, min_project_rate, preferred_categories)
              VALUES ($1, $2, $3, $4, $5, $6)
              ON CONFLICT (id) DO UPDATE SET
                  skills = EXCLUDED.skills, experience = EXCLUDED.experience,
                  min_hourly_rate = EXCLUDED.min_hourly_rate, min_project_rate = EXCLUDED.min_project_rate,
                  preferred_categories = EXCLUDED.preferred_categories`
	_, err = r.db.Exec(ctx, query,
		profileID, joinList(current.Skills), current.Experience,
		current.MinHourlyRate, current.MinProjectRate, joinList(current.PreferredCategories),
	)
	if err != nil {
		return nil, err
	}
	return current, nil
}
