package postgres

import (
	"context"
	"strconv"
	"strings"

	"remote-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Multi-valued text fields are stored newline-joined. Skill names can contain
// commas and slashes, so a comma join would not round-trip.
func joinList(items []string) string {
	return strings.Join(items, "\n")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

const retentionCap = 500

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Merge(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO jobs (id, title, company, source, url, description, skills, salary, posted, remote)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              ON CONFLICT (id) DO UPDATE SET
                  title = EXCLUDED.title, company = EXCLUDED.company, source = EXCLUDED.source,
                  url = EXCLUDED.url, description = EXCLUDED.description, skills = EXCLUDED.skills,
                  salary = EXCLUDED.salary, posted = EXCLUDED.posted, remote = EXCLUDED.remote`
	for _, job := range jobs {
		if _, err := tx.Exec(ctx, query,
			job.ID, job.Title, job.Company, job.Source, job.URL, job.Description,
			joinList(job.Skills), job.Salary, job.Posted, job.Remote,
		); err != nil {
			return err
		}
	}

	// Retention: only the newest postings are kept.
	prune := `DELETE FROM jobs WHERE id NOT IN (SELECT id FROM jobs ORDER BY posted DESC LIMIT $1)`
	if _, err := tx.Exec(ctx, prune, retentionCap); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = retentionCap
	}
	query := `SELECT id, title, company, source, url, description, skills, salary, posted, remote
              FROM jobs ORDER BY posted DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepo) Search(ctx context.Context, keywords []string, limit int) ([]domain.Job, error) {
	if len(keywords) == 0 {
		return r.List(ctx, limit, 0)
	}
	if limit <= 0 {
		limit = retentionCap
	}

	var clauses []string
	args := []interface{}{}
	for _, kw := range keywords {
		args = append(args, "%"+kw+"%")
		p := strconv.Itoa(len(args))
		clauses = append(clauses, `(title ILIKE $`+p+` OR description ILIKE $`+p+` OR skills ILIKE $`+p+`)`)
	}
	args = append(args, limit)

	query := `SELECT id, title, company, source, url, description, skills, salary, posted, remote
              FROM jobs WHERE ` + strings.Join(clauses, " OR ") + `
              ORDER BY posted DESC LIMIT $` + strconv.Itoa(len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var skills string
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Source, &job.URL,
			&job.Description, &skills, &job.Salary, &job.Posted, &job.Remote); err != nil {
			return nil, err
		}
		job.Skills = splitList(skills)
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
