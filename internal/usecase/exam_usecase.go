package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
	"healthathome/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrExamNotFound      = errors.New("exam not found")
	ErrExamAlreadyExists = errors.New("exam already exists")
	ErrExamInactive      = errors.New("exam inactive")
	ErrInvalidExamCode   = errors.New("invalid exam codigo")
	ErrInvalidExamName   = errors.New("invalid exam nombre")
	ErrInvalidExamPrice  = errors.New("invalid exam precio")
)

// IExamUseCase manages the laboratory exam catalog.
type IExamUseCase interface {
	Create(ctx context.Context, e entities.LaboratoryExam) (entities.LaboratoryExam, error)
	Update(ctx context.Context, codigo string, e entities.LaboratoryExam) (entities.LaboratoryExam, error)
	GetByCode(ctx context.Context, codigo string) (entities.LaboratoryExam, error)
	List(ctx context.Context, categoria string) ([]entities.LaboratoryExam, error)
	Delete(ctx context.Context, codigo string) error
	Import(ctx context.Context, rows []entities.CatalogRow) ([]entities.ImportRowResult, error)
}

type ExamUseCase struct {
	repo interfaces.IExamRepository
}

var _ IExamUseCase = (*ExamUseCase)(nil)

func NewExamUseCase(repo interfaces.IExamRepository) *ExamUseCase {
	return &ExamUseCase{repo: repo}
}

func (u *ExamUseCase) Create(ctx context.Context, e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
	e, err := normalizeExam(e)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}

	if existing, err := u.repo.GetByCode(ctx, e.Codigo); err != nil {
		return entities.LaboratoryExam{}, err
	} else if existing.Codigo != "" {
		return entities.LaboratoryExam{}, ErrExamAlreadyExists
	}

	now := time.Now().UTC()
	e.Activo = true
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	log.Info().Str("exam_code", created.Codigo).Str("precio", created.Precio).Msg("[exam][usecase] created")
	return created, nil
}

func (u *ExamUseCase) Update(ctx context.Context, codigo string, e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
	e.Codigo = codigo
	e, err := normalizeExam(e)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}

	existing, err := u.repo.GetByCode(ctx, e.Codigo)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	if existing.Codigo == "" {
		return entities.LaboratoryExam{}, ErrExamNotFound
	}
	return u.replace(ctx, existing, e)
}

func (u *ExamUseCase) replace(ctx context.Context, existing, e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	if updated.Codigo == "" {
		return entities.LaboratoryExam{}, ErrExamNotFound
	}
	log.Info().Str("exam_code", updated.Codigo).Str("precio", updated.Precio).Bool("activo", updated.Activo).Msg("[exam][usecase] updated")
	return updated, nil
}

func (u *ExamUseCase) GetByCode(ctx context.Context, codigo string) (entities.LaboratoryExam, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return entities.LaboratoryExam{}, ErrInvalidExamCode
	}

	e, err := u.repo.GetByCode(ctx, codigo)
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	if e.Codigo == "" {
		return entities.LaboratoryExam{}, ErrExamNotFound
	}
	return e, nil
}

// List returns the catalog ordered by codigo, optionally restricted to one
// categoria (case-insensitive).
func (u *ExamUseCase) List(ctx context.Context, categoria string) ([]entities.LaboratoryExam, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	categoria = strings.TrimSpace(categoria)
	out := make([]entities.LaboratoryExam, 0, len(all))
	for _, e := range all {
		if categoria != "" && !strings.EqualFold(e.Categoria, categoria) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (u *ExamUseCase) Delete(ctx context.Context, codigo string) error {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return ErrInvalidExamCode
	}

	deleted, err := u.repo.Delete(ctx, codigo)
	if err != nil {
		return err
	}
	if deleted.Codigo == "" {
		return ErrExamNotFound
	}
	log.Info().Str("exam_code", codigo).Msg("[exam][usecase] deleted")
	return nil
}

// Import upserts every valid row and reports invalid ones without stopping.
// A codigo repeated in the same file is only taken from its first row.
// Storage failures abort the import and return the results gathered so far.
func (u *ExamUseCase) Import(ctx context.Context, rows []entities.CatalogRow) ([]entities.ImportRowResult, error) {
	results := make([]entities.ImportRowResult, 0, len(rows))
	seen := make(map[string]int, len(rows))

	for _, row := range rows {
		res := entities.ImportRowResult{Row: row.Row, Codigo: strings.TrimSpace(row.Codigo)}

		e, err := normalizeExam(examFromRow(row))
		if err != nil {
			res.Reason = err.Error()
			results = append(results, res)
			continue
		}
		if first, dup := seen[e.Codigo]; dup {
			res.Reason = fmt.Sprintf("duplicate codigo, first seen on row %d", first)
			results = append(results, res)
			continue
		}
		seen[e.Codigo] = row.Row

		existing, err := u.repo.GetByCode(ctx, e.Codigo)
		if err != nil {
			return results, err
		}
		e.Activo = true
		if existing.Codigo == "" {
			now := time.Now().UTC()
			e.CreatedAt, e.UpdatedAt = now, now
			_, err = u.repo.Create(ctx, e)
		} else {
			_, err = u.replace(ctx, existing, e)
		}
		if err != nil {
			return results, err
		}
		res.OK = true
		results = append(results, res)
	}

	imported := 0
	for _, r := range results {
		if r.OK {
			imported++
		}
	}
	log.Info().Int("rows", len(rows)).Int("imported", imported).Msg("[exam][usecase] catalog import finished")
	return results, nil
}

func examFromRow(row entities.CatalogRow) entities.LaboratoryExam {
	return entities.LaboratoryExam{
		Codigo:          row.Codigo,
		Nombre:          row.Nombre,
		Precio:          row.Precio,
		Categoria:       row.Categoria,
		Descripcion:     row.Descripcion,
		TiempoResultado: row.TiempoResultado,
		Preparacion:     row.Preparacion,
	}
}

// normalizeExam trims every field and stores the price in canonical form.
func normalizeExam(e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
	e.Codigo = strings.TrimSpace(e.Codigo)
	e.Nombre = strings.TrimSpace(e.Nombre)
	e.Categoria = strings.TrimSpace(e.Categoria)
	e.Descripcion = strings.TrimSpace(e.Descripcion)
	e.TiempoResultado = strings.TrimSpace(e.TiempoResultado)
	e.Preparacion = strings.TrimSpace(e.Preparacion)

	if e.Codigo == "" {
		return entities.LaboratoryExam{}, ErrInvalidExamCode
	}
	if e.Nombre == "" {
		return entities.LaboratoryExam{}, ErrInvalidExamName
	}
	price, err := quotation.ParsePriceStrict(e.Precio)
	if err != nil {
		return entities.LaboratoryExam{}, fmt.Errorf("%w: %v", ErrInvalidExamPrice, err)
	}
	e.Precio = quotation.FormatPrice(price)
	return e, nil
}

// resolveExams loads the exams for codigos in request order. Repeated codes
// yield repeated exams. New selections must only use active exams; stored
// proformas keep pricing exams retired after they were quoted.
func resolveExams(ctx context.Context, repo interfaces.IExamRepository, codigos []string, requireActive bool) ([]entities.LaboratoryExam, error) {
	if len(codigos) == 0 {
		return []entities.LaboratoryExam{}, nil
	}

	unique := make([]string, 0, len(codigos))
	seen := make(map[string]struct{}, len(codigos))
	for _, c := range codigos {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}

	found, err := repo.GetByCodes(ctx, unique)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]entities.LaboratoryExam, len(found))
	for _, e := range found {
		byCode[e.Codigo] = e
	}

	exams := make([]entities.LaboratoryExam, 0, len(codigos))
	for _, c := range codigos {
		e, ok := byCode[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrExamNotFound, c)
		}
		if requireActive && !e.Activo {
			return nil, fmt.Errorf("%w: %s", ErrExamInactive, c)
		}
		exams = append(exams, e)
	}
	return exams, nil
}

// normalizeCodes trims codes and rejects blanks.
func normalizeCodes(codigos []string) ([]string, error) {
	out := make([]string, 0, len(codigos))
	for _, c := range codigos {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, ErrInvalidExamCode
		}
		out = append(out, c)
	}
	return out, nil
}
