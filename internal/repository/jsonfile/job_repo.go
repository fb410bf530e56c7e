package jsonfile

import (
	"context"
	"strings"

	"remote-jobs-backend/internal/domain"
)

type jobRepo struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepo{store: store}
}

func (r *jobRepo) Merge(_ context.Context, jobs []domain.Job) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int, len(s.doc.Jobs))
	for i, j := range s.doc.Jobs {
		index[j.ID] = i
	}

	for _, job := range jobs {
		job.MatchScore = 0
		job.MatchReasons = nil
		job.Summary = ""
		if i, ok := index[job.ID]; ok {
			s.doc.Jobs[i] = job // full overwrite, last write wins
		} else {
			index[job.ID] = len(s.doc.Jobs)
			s.doc.Jobs = append(s.doc.Jobs, job)
		}
	}

	if len(s.doc.Jobs) > retentionCap {
		sortByPostedDesc(s.doc.Jobs)
		s.doc.Jobs = s.doc.Jobs[:retentionCap]
	}

	s.save()
	return nil
}

func (r *jobRepo) List(_ context.Context, limit, offset int) ([]domain.Job, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]domain.Job, len(s.doc.Jobs))
	copy(sorted, s.doc.Jobs)
	sortByPostedDesc(sorted)

	if offset >= len(sorted) {
		return nil, nil
	}
	sorted = sorted[offset:]
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]domain.Job, len(sorted))
	copy(out, sorted)
	return out, nil
}

func (r *jobRepo) Search(ctx context.Context, keywords []string, limit int) ([]domain.Job, error) {
	if len(keywords) == 0 {
		return r.List(ctx, limit, 0)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	var matched []domain.Job
	for _, job := range s.doc.Jobs {
		text := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Skills, " "))
		for _, kw := range lowered {
			if strings.Contains(text, kw) {
				matched = append(matched, job)
				break
			}
		}
	}

	sortByPostedDesc(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
