package export

import (
	"bytes"
	"fmt"

	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
	"healthathome/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName       = "Proforma"
	headerRow       = 7
)

// ExcelRenderer renders a proforma as a single-sheet workbook.
type ExcelRenderer struct{}

var _ interfaces.IDocumentRenderer = ExcelRenderer{}

func (ExcelRenderer) ContentType() string { return xlsxContentType }
func (ExcelRenderer) Extension() string   { return "xlsx" }

func (ExcelRenderer) Render(doc entities.ProformaDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	widths := []float64{6, 14, 44, 18, 18}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}
	lastCol := columns[len(columns)-1]

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	lineStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	p := doc.Proforma
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", documentTitle)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	header := [][2]string{
		{"Proforma", p.ID},
		{"Paciente", p.PacienteNombre},
		{"Documento", p.PacienteDocumento},
		{"Dirección", p.Direccion},
		{"Visita", doc.FechaDisplay + " " + p.HoraVisita},
	}
	for i, h := range header {
		r := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), h[0])
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), sanitizeExcelCell(h[1]))
	}

	for i, h := range []string{"#", "Código", "Examen", "Precio lista", "Precio cliente"} {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], headerRow), h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), headerStyle)

	r := headerRow + 1
	for i, line := range doc.Lines {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), sanitizeExcelCell(line.Codigo))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), sanitizeExcelCell(line.Nombre))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), quotation.FormatPrice(line.PrecioCatalogo))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), quotation.FormatPrice(line.PrecioCliente))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("%s%d", lastCol, r), lineStyle)
		r++
	}

	r++
	for _, s := range summaryLines(doc.Quote) {
		style := labelStyle
		if s.total {
			style = totalStyle
		}
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), s.label)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), quotation.FormatPrice(s.amount))
		f.SetCellStyle(sheetName, fmt.Sprintf("D%d", r), fmt.Sprintf("E%d", r), style)
		r++
	}
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", r+1), "Generado el "+doc.GeneratedAt.Format(generatedAtFmt))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes values Excel would evaluate as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
