package export

import (
	"fmt"
	"strconv"

	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
	"healthathome/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	documentTitle  = "Proforma de servicio a domicilio"
	generatedAtFmt = "02/01/2006 15:04"
	pdfContentType = "application/pdf"
)

var (
	grayText   = &props.Color{Red: 80, Green: 80, Blue: 80}
	headerFill = &props.Color{Red: 33, Green: 37, Blue: 41}
	summaryBg  = &props.Color{Red: 240, Green: 240, Blue: 240}
)

// PDFRenderer renders a proforma as an A4 portrait PDF.
type PDFRenderer struct{}

var _ interfaces.IDocumentRenderer = PDFRenderer{}

func (PDFRenderer) ContentType() string { return pdfContentType }
func (PDFRenderer) Extension() string   { return "pdf" }

func (PDFRenderer) Render(doc entities.ProformaDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)
	addPatientHeader(m, doc)
	addExamTableHeader(m)
	for i, line := range doc.Lines {
		addExamRow(m, i+1, line)
	}
	addQuoteSummary(m, doc.Quote)
	addGeneratedFooter(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return out.GetBytes(), nil
}

func addPatientHeader(m core.Maroto, doc entities.ProformaDocument) {
	p := doc.Proforma
	small := props.Text{Size: 9, Align: align.Left, Color: grayText}
	smallRight := small
	smallRight.Align = align.Right

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(text.New(documentTitle, props.Text{Size: 15, Style: fontstyle.Bold, Align: align.Center})),
		),
		row.New(7).Add(
			col.New(8).Add(text.New("Paciente: "+p.PacienteNombre, small)),
			col.New(4).Add(text.New("N° "+p.ID, smallRight)),
		),
	)
	if p.PacienteDocumento != "" || p.Direccion != "" {
		m.AddRows(row.New(7).Add(
			col.New(4).Add(text.New("Documento: "+p.PacienteDocumento, small)),
			col.New(8).Add(text.New("Dirección: "+p.Direccion, small)),
		))
	}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Fecha de visita: "+doc.FechaDisplay, small)),
			col.New(6).Add(text.New("Hora: "+p.HoraVisita, smallRight)),
		),
		row.New(4),
	)
}

func addExamTableHeader(m core.Maroto) {
	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: &props.Color{Red: 255, Green: 255, Blue: 255}}
	headLeft := head
	headLeft.Align = align.Left
	cell := &props.Cell{BackgroundColor: headerFill}

	m.AddRows(row.New(8).Add(
		col.New(1).Add(text.New("#", head)).WithStyle(cell),
		col.New(2).Add(text.New("Código", headLeft)).WithStyle(cell),
		col.New(5).Add(text.New("Examen", headLeft)).WithStyle(cell),
		col.New(2).Add(text.New("Precio lista", head)).WithStyle(cell),
		col.New(2).Add(text.New("Precio cliente", head)).WithStyle(cell),
	))
}

func addExamRow(m core.Maroto, n int, line entities.QuoteLine) {
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	m.AddRows(row.New(7).Add(
		col.New(1).Add(text.New(strconv.Itoa(n), base)),
		col.New(2).Add(text.New(line.Codigo, left)),
		col.New(5).Add(text.New(line.Nombre, left)),
		col.New(2).Add(text.New(quotation.FormatPrice(line.PrecioCatalogo), right)),
		col.New(2).Add(text.New(quotation.FormatPrice(line.PrecioCliente), right)),
	))
}

func addQuoteSummary(m core.Maroto, q entities.ExamQuote) {
	m.AddRows(row.New(6))

	label := props.Text{Size: 9, Align: align.Right}
	value := props.Text{Size: 9, Align: align.Right}
	cell := &props.Cell{BackgroundColor: summaryBg}

	for _, s := range summaryLines(q) {
		l, v := label, value
		if s.total {
			l.Style, v.Style = fontstyle.Bold, fontstyle.Bold
		}
		m.AddRows(row.New(7).Add(
			col.New(8).Add(text.New(s.label, l)).WithStyle(cell),
			col.New(4).Add(text.New(quotation.FormatPrice(s.amount), v)).WithStyle(cell),
		))
	}
}

func addGeneratedFooter(m core.Maroto, doc entities.ProformaDocument) {
	m.AddRows(
		row.New(6),
		row.New(6).Add(col.New(12).Add(text.New(
			"Generado el "+doc.GeneratedAt.Format(generatedAtFmt),
			props.Text{Size: 7, Align: align.Left, Color: &props.Color{Red: 140, Green: 140, Blue: 140}},
		))),
	)
}
