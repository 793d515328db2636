package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
	"healthathome/internal/usecase/interfaces"
	"healthathome/pkg/dateonly"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrProformaNotFound    = errors.New("proforma not found")
	ErrInvalidProformaID   = errors.New("invalid proforma id")
	ErrInvalidPatientName  = errors.New("invalid paciente_nombre")
	ErrNoExamsSelected     = errors.New("no exams selected")
	ErrInvalidVisitDate    = errors.New("invalid fecha_visita")
	ErrVisitDateInPast     = errors.New("fecha_visita is in the past")
	ErrInvalidVisitTime    = errors.New("invalid hora_visita")
	ErrInvalidTransition   = errors.New("invalid proforma status transition")
	ErrInvalidStatusFilter = errors.New("invalid proforma status filter")
)

// CreateProformaCommand carries the raw form values of a new proforma.
// FechaVisita accepts YYYY-MM-DD or an ISO timestamp; HoraVisita accepts
// "HH:mm", "HH:mm:ss" or a 12-hour value such as "8:30 PM".
type CreateProformaCommand struct {
	PacienteNombre    string
	PacienteDocumento string
	Direccion         string
	CodigosExamen     []string
	FechaVisita       string
	HoraVisita        string
}

// IProformaUseCase exposes the proforma lifecycle:
//   - create from an exam selection (status pendiente)
//   - approve, reject or cancel while pendiente
//   - change the exam selection while pendiente, recalculating the total
type IProformaUseCase interface {
	Create(ctx context.Context, cmd CreateProformaCommand) (entities.Proforma, error)
	Approve(ctx context.Context, id string) (entities.Proforma, error)
	Reject(ctx context.Context, id string) (entities.Proforma, error)
	Cancel(ctx context.Context, id string) (entities.Proforma, error)
	UpdateExams(ctx context.Context, id string, codigos []string) (entities.Proforma, error)
	GetByID(ctx context.Context, id string) (entities.Proforma, error)
	List(ctx context.Context, status string) ([]entities.Proforma, error)
	Quote(ctx context.Context, id string) (entities.ExamQuote, error)
	Document(ctx context.Context, id string) (entities.ProformaDocument, error)
}

type ProformaUseCase struct {
	repo     interfaces.IProformaRepository
	exams    interfaces.IExamRepository
	quoteCfg quotation.Config
	dates    *dateonly.Normalizer
}

var _ IProformaUseCase = (*ProformaUseCase)(nil)

// NewProformaUseCase wires the use case. A nil normalizer means the process
// default (America/Lima unless reconfigured).
func NewProformaUseCase(repo interfaces.IProformaRepository, exams interfaces.IExamRepository, quoteCfg quotation.Config, dates *dateonly.Normalizer) *ProformaUseCase {
	if dates == nil {
		dates = dateonly.Default()
	}
	return &ProformaUseCase{repo: repo, exams: exams, quoteCfg: quoteCfg, dates: dates}
}

func (u *ProformaUseCase) Create(ctx context.Context, cmd CreateProformaCommand) (entities.Proforma, error) {
	nombre := strings.TrimSpace(cmd.PacienteNombre)
	if nombre == "" {
		return entities.Proforma{}, ErrInvalidPatientName
	}
	codigos, err := normalizeCodes(cmd.CodigosExamen)
	if err != nil {
		return entities.Proforma{}, err
	}
	if len(codigos) == 0 {
		return entities.Proforma{}, ErrNoExamsSelected
	}

	fecha, err := u.dates.Parse(cmd.FechaVisita)
	if err != nil {
		return entities.Proforma{}, ErrInvalidVisitDate
	}
	if fecha < u.dates.TodayLocal() {
		return entities.Proforma{}, ErrVisitDateInPast
	}
	hora := dateonly.ToTimeInputValue(cmd.HoraVisita)
	if hora == "" {
		return entities.Proforma{}, ErrInvalidVisitTime
	}

	exams, err := resolveExams(ctx, u.exams, codigos, true)
	if err != nil {
		return entities.Proforma{}, err
	}
	quote := quotation.CalculateQuote(exams, u.quoteCfg)

	now := time.Now().UTC()
	p := entities.Proforma{
		ID:                uuid.NewString(),
		PacienteNombre:    nombre,
		PacienteDocumento: strings.TrimSpace(cmd.PacienteDocumento),
		Direccion:         strings.TrimSpace(cmd.Direccion),
		CodigosExamen:     codigos,
		FechaVisita:       fecha,
		HoraVisita:        hora,
		Total:             quote.TotalFinal.Round(2),
		Status:            entities.ProformaStatusPendiente,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("proforma_id", p.ID).Msg("[proforma][usecase] create failed")
		return entities.Proforma{}, err
	}
	log.Info().
		Str("proforma_id", created.ID).
		Int("exams", len(created.CodigosExamen)).
		Str("total", created.Total.StringFixed(2)).
		Str("fecha_visita", created.FechaVisita).
		Msg("[proforma][usecase] created")
	return created, nil
}

func (u *ProformaUseCase) Approve(ctx context.Context, id string) (entities.Proforma, error) {
	return u.transition(ctx, id, entities.ProformaStatusAprobada)
}

func (u *ProformaUseCase) Reject(ctx context.Context, id string) (entities.Proforma, error) {
	return u.transition(ctx, id, entities.ProformaStatusRechazada)
}

func (u *ProformaUseCase) Cancel(ctx context.Context, id string) (entities.Proforma, error) {
	return u.transition(ctx, id, entities.ProformaStatusAnulada)
}

func (u *ProformaUseCase) transition(ctx context.Context, id string, to entities.ProformaStatus) (entities.Proforma, error) {
	current, err := u.pending(ctx, id)
	if err != nil {
		return entities.Proforma{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, entities.ProformaStatusPendiente, to)
	if err != nil {
		return entities.Proforma{}, err
	}
	if updated.ID == "" {
		// status changed between the read and the conditional write
		return entities.Proforma{}, ErrInvalidTransition
	}
	log.Info().Str("proforma_id", updated.ID).Str("status", string(updated.Status)).Msg("[proforma][usecase] status changed")
	return updated, nil
}

func (u *ProformaUseCase) UpdateExams(ctx context.Context, id string, codigos []string) (entities.Proforma, error) {
	codigos, err := normalizeCodes(codigos)
	if err != nil {
		return entities.Proforma{}, err
	}
	if len(codigos) == 0 {
		return entities.Proforma{}, ErrNoExamsSelected
	}

	current, err := u.pending(ctx, id)
	if err != nil {
		return entities.Proforma{}, err
	}

	exams, err := resolveExams(ctx, u.exams, codigos, true)
	if err != nil {
		return entities.Proforma{}, err
	}
	quote := quotation.CalculateQuote(exams, u.quoteCfg)

	updated, err := u.repo.UpdateExams(ctx, current.ID, codigos, quote.TotalFinal.Round(2))
	if err != nil {
		return entities.Proforma{}, err
	}
	if updated.ID == "" {
		return entities.Proforma{}, ErrInvalidTransition
	}
	log.Info().
		Str("proforma_id", updated.ID).
		Str("previous_total", current.Total.StringFixed(2)).
		Str("total", updated.Total.StringFixed(2)).
		Msg("[proforma][usecase] exams updated")
	return updated, nil
}

func (u *ProformaUseCase) pending(ctx context.Context, id string) (entities.Proforma, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proforma{}, err
	}
	if current.Status != entities.ProformaStatusPendiente {
		return entities.Proforma{}, ErrInvalidTransition
	}
	return current, nil
}

func (u *ProformaUseCase) GetByID(ctx context.Context, id string) (entities.Proforma, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proforma{}, ErrInvalidProformaID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proforma{}, err
	}
	if p.ID == "" {
		return entities.Proforma{}, ErrProformaNotFound
	}
	return p, nil
}

// List returns proformas newest first. An empty status lists all of them.
func (u *ProformaUseCase) List(ctx context.Context, status string) ([]entities.Proforma, error) {
	st := entities.ProformaStatus(strings.ToLower(strings.TrimSpace(status)))
	switch st {
	case "", entities.ProformaStatusPendiente, entities.ProformaStatusAprobada,
		entities.ProformaStatusRechazada, entities.ProformaStatusAnulada:
	default:
		return nil, ErrInvalidStatusFilter
	}

	items, err := u.repo.List(ctx, st)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// Quote recomputes the breakdown of a stored proforma from the current catalog.
func (u *ProformaUseCase) Quote(ctx context.Context, id string) (entities.ExamQuote, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ExamQuote{}, err
	}
	return u.quoteFor(ctx, p)
}

func (u *ProformaUseCase) quoteFor(ctx context.Context, p entities.Proforma) (entities.ExamQuote, error) {
	exams, err := resolveExams(ctx, u.exams, p.CodigosExamen, false)
	if err != nil {
		return entities.ExamQuote{}, err
	}
	return quotation.CalculateQuote(exams, u.quoteCfg), nil
}

// Document gathers what a printed proforma shows.
func (u *ProformaUseCase) Document(ctx context.Context, id string) (entities.ProformaDocument, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProformaDocument{}, err
	}
	quote, err := u.quoteFor(ctx, p)
	if err != nil {
		return entities.ProformaDocument{}, err
	}
	return entities.ProformaDocument{
		Proforma:     p,
		Quote:        quote,
		Lines:        quotation.Lines(quote, u.quoteCfg),
		FechaDisplay: dateonly.FormatDateOnlyDdMmYyyy(p.FechaVisita),
		GeneratedAt:  time.Now().In(u.dates.Location()),
	}, nil
}
