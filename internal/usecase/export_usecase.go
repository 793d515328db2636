package usecase

import (
	"context"
	"errors"
	"fmt"

	"healthathome/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrUnsupportedExportFormat = errors.New("unsupported export format")

const (
	ExportFormatPDF  = "pdf"
	ExportFormatXLSX = "xlsx"
)

// ExportedFile is a rendered proforma ready to be downloaded.
type ExportedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// IExportUseCase renders proformas as downloadable documents.
type IExportUseCase interface {
	Export(ctx context.Context, proformaID, format string) (ExportedFile, error)
}

type ExportUseCase struct {
	proformas IProformaUseCase
	renderers map[string]interfaces.IDocumentRenderer
}

var _ IExportUseCase = (*ExportUseCase)(nil)

// NewExportUseCase registers one renderer per format, keyed by its extension.
func NewExportUseCase(proformas IProformaUseCase, renderers ...interfaces.IDocumentRenderer) *ExportUseCase {
	byFormat := make(map[string]interfaces.IDocumentRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Extension()] = r
	}
	return &ExportUseCase{proformas: proformas, renderers: byFormat}
}

func (u *ExportUseCase) Export(ctx context.Context, proformaID, format string) (ExportedFile, error) {
	renderer, ok := u.renderers[format]
	if !ok {
		return ExportedFile{}, ErrUnsupportedExportFormat
	}

	doc, err := u.proformas.Document(ctx, proformaID)
	if err != nil {
		return ExportedFile{}, err
	}
	content, err := renderer.Render(doc)
	if err != nil {
		log.Error().Err(err).Str("proforma_id", doc.Proforma.ID).Str("format", format).Msg("[export][usecase] render failed")
		return ExportedFile{}, err
	}

	log.Info().Str("proforma_id", doc.Proforma.ID).Str("format", format).Int("bytes", len(content)).Msg("[export][usecase] rendered")
	return ExportedFile{
		Filename:    fmt.Sprintf("proforma-%s.%s", doc.Proforma.ID, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}
