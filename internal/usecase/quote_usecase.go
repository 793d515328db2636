package usecase

import (
	"context"

	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
	"healthathome/internal/usecase/interfaces"
)

// IQuoteUseCase previews quotes without creating a proforma.
type IQuoteUseCase interface {
	PreviewByCodes(ctx context.Context, codigos []string) (entities.ExamQuote, error)
	PreviewExams(exams []entities.LaboratoryExam) entities.ExamQuote
}

type QuoteUseCase struct {
	exams interfaces.IExamRepository
	cfg   quotation.Config
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(exams interfaces.IExamRepository, cfg quotation.Config) *QuoteUseCase {
	return &QuoteUseCase{exams: exams, cfg: cfg}
}

// PreviewByCodes prices catalog exams. Unknown or inactive codes fail the
// preview; an empty selection yields the all-zero quote.
func (u *QuoteUseCase) PreviewByCodes(ctx context.Context, codigos []string) (entities.ExamQuote, error) {
	codigos, err := normalizeCodes(codigos)
	if err != nil {
		return entities.ExamQuote{}, err
	}
	exams, err := resolveExams(ctx, u.exams, codigos, true)
	if err != nil {
		return entities.ExamQuote{}, err
	}
	return quotation.CalculateQuote(exams, u.cfg), nil
}

// PreviewExams prices exams supplied by the caller as is.
func (u *QuoteUseCase) PreviewExams(exams []entities.LaboratoryExam) entities.ExamQuote {
	return quotation.CalculateQuote(exams, u.cfg)
}
