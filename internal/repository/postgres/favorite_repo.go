package postgres

import (
	"context"

	"remote-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type favoriteRepo struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) domain.FavoriteRepository {
	return &favoriteRepo{db: db}
}

const favoriteColumns = `id, user_id, job_id, title, company, source, url, description, salary,
	remote, posted, match_score, match_reasons, notes, priority, created_at`

func (r *favoriteRepo) Create(ctx context.Context, fav *domain.FavoriteJob) error {
	query := `INSERT INTO favorite_jobs (` + favoriteColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		fav.ID, fav.UserID, fav.JobID, fav.Title, fav.Company, fav.Source, fav.URL,
		fav.Description, fav.Salary, fav.Remote, fav.Posted, fav.MatchScore,
		joinList(fav.MatchReasons), fav.Notes, fav.Priority, fav.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteJob, error) {
	query := `SELECT ` + favoriteColumns + ` FROM favorite_jobs WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []domain.FavoriteJob
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favs = append(favs, *fav)
	}
	return favs, rows.Err()
}

func (r *favoriteRepo) GetByID(ctx context.Context, userID, id string) (*domain.FavoriteJob, error) {
	query := `SELECT ` + favoriteColumns + ` FROM favorite_jobs WHERE user_id = $1 AND id = $2`
	rows, err := r.db.Query(ctx, query, userID, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}
	return scanFavorite(rows)
}

func (r *favoriteRepo) Update(ctx context.Context, userID, id string, update domain.FavoriteUpdate) (*domain.FavoriteJob, error) {
	fav, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if update.Notes != nil {
		fav.Notes = *update.Notes
	}
	if update.Priority != nil {
		fav.Priority = *update.Priority
	}

	query := `UPDATE favorite_jobs SET notes = $3, priority = $4 WHERE user_id = $1 AND id = $2`
	if _, err := r.db.Exec(ctx, query, userID, id, fav.Notes, fav.Priority); err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *favoriteRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM favorite_jobs WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanFavorite(rows pgx.Rows) (*domain.FavoriteJob, error) {
	var fav domain.FavoriteJob
	var reasons string
	if err := rows.Scan(
		&fav.ID, &fav.UserID, &fav.JobID, &fav.Title, &fav.Company, &fav.Source, &fav.URL,
		&fav.Description, &fav.Salary, &fav.Remote, &fav.Posted, &fav.MatchScore,
		&reasons, &fav.Notes, &fav.Priority, &fav.CreatedAt,
	); err != nil {
		return nil, err
	}
	fav.MatchReasons = splitList(reasons)
	return &fav, nil
}
