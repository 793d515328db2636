package repository

import (
	"context"

	"healthathome/internal/domain/entities"
	"healthathome/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// CachedExamRepository is a read-through cache in front of an exam
// repository. Cache failures are logged and never fail a request; writes
// invalidate the touched codes after reaching storage.
type CachedExamRepository struct {
	repo  interfaces.IExamRepository
	cache interfaces.ICatalogCache
}

var _ interfaces.IExamRepository = (*CachedExamRepository)(nil)

func NewCachedExamRepository(repo interfaces.IExamRepository, cache interfaces.ICatalogCache) *CachedExamRepository {
	return &CachedExamRepository{repo: repo, cache: cache}
}

func (r *CachedExamRepository) Create(ctx context.Context, e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
	created, err := r.repo.Create(ctx, e)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	r.invalidate(ctx, e.Codigo)
	return created, nil
}

func (r *CachedExamRepository) Update(ctx context.Context, e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
	updated, err := r.repo.Update(ctx, e)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	r.invalidate(ctx, e.Codigo)
	return updated, nil
}

func (r *CachedExamRepository) Delete(ctx context.Context, codigo string) (entities.LaboratoryExam, error) {
	deleted, err := r.repo.Delete(ctx, codigo)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	r.invalidate(ctx, codigo)
	return deleted, nil
}

func (r *CachedExamRepository) GetByCode(ctx context.Context, codigo string) (entities.LaboratoryExam, error) {
	if e, ok := r.lookup(ctx, codigo); ok {
		return e, nil
	}

	e, err := r.repo.GetByCode(ctx, codigo)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	if e.Codigo != "" {
		r.store(ctx, e)
	}
	return e, nil
}

func (r *CachedExamRepository) GetByCodes(ctx context.Context, codigos []string) ([]entities.LaboratoryExam, error) {
	out := make([]entities.LaboratoryExam, 0, len(codigos))
	missing := make([]string, 0, len(codigos))
	for _, codigo := range codigos {
		if e, ok := r.lookup(ctx, codigo); ok {
			out = append(out, e)
			continue
		}
		missing = append(missing, codigo)
	}
	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := r.repo.GetByCodes(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, e := range fetched {
		r.store(ctx, e)
	}
	return append(out, fetched...), nil
}

// List always reads storage; the cache only holds single exams.
func (r *CachedExamRepository) List(ctx context.Context) ([]entities.LaboratoryExam, error) {
	return r.repo.List(ctx)
}

func (r *CachedExamRepository) lookup(ctx context.Context, codigo string) (entities.LaboratoryExam, bool) {
	e, ok, err := r.cache.Get(ctx, codigo)
	if err != nil {
		log.Warn().Err(err).Str("exam_code", codigo).Msg("[exam][cache] get failed")
		return entities.LaboratoryExam{}, false
	}
	return e, ok
}

func (r *CachedExamRepository) store(ctx context.Context, e entities.LaboratoryExam) {
	if err := r.cache.Set(ctx, e); err != nil {
		log.Warn().Err(err).Str("exam_code", e.Codigo).Msg("[exam][cache] set failed")
	}
}

func (r *CachedExamRepository) invalidate(ctx context.Context, codigo string) {
	if err := r.cache.Invalidate(ctx, codigo); err != nil {
		log.Warn().Err(err).Str("exam_code", codigo).Msg("[exam][cache] invalidate failed")
	}
}
