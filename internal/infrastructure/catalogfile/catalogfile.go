// Package catalogfile reads laboratory exam catalogs from CSV or XLSX files.
//
// The first row is the header. codigo, nombre and precio are required
// columns; categoria, descripcion, tiempo_resultado and preparacion are
// optional. Header matching ignores case, surrounding blanks and a UTF-8 BOM,
// and treats spaces as underscores. Values are returned untouched apart from
// trimming: validation belongs to the import use case.
package catalogfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"healthathome/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format: must be .csv or .xlsx")
	ErrEmptyFile         = errors.New("catalog file must contain a header row and at least one data row")
	ErrMissingColumns    = errors.New("catalog header is missing required columns")
)

const (
	colCodigo          = "codigo"
	colNombre          = "nombre"
	colPrecio          = "precio"
	colCategoria       = "categoria"
	colDescripcion     = "descripcion"
	colTiempoResultado = "tiempo_resultado"
	colPreparacion     = "preparacion"
)

var requiredColumns = []string{colCodigo, colNombre, colPrecio}

var knownColumns = map[string]bool{
	colCodigo: true, colNombre: true, colPrecio: true, colCategoria: true,
	colDescripcion: true, colTiempoResultado: true, colPreparacion: true,
}

// Parse picks the reader from the file extension.
func Parse(r io.Reader, filename string) ([]entities.CatalogRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".xlsx":
		return ParseXLSX(r)
	}
	return nil, ErrUnsupportedFormat
}

func ParseCSV(r io.Reader) ([]entities.CatalogRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var records [][]string
	var lines []int
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		// empty lines are skipped by the reader, so keep the real line numbers
		line, _ := reader.FieldPos(0)
		records = append(records, rec)
		lines = append(lines, line)
	}
	return toRows(records, lines)
}

// ParseXLSX reads the first sheet of the workbook.
func ParseXLSX(r io.Reader) ([]entities.CatalogRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	records, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	lines := make([]int, len(records))
	for i := range records {
		lines[i] = i + 1
	}
	return toRows(records, lines)
}

// toRows maps data records to catalog rows; lines holds the 1-based file
// line of each record.
func toRows(records [][]string, lines []int) ([]entities.CatalogRow, error) {
	if len(records) < 2 {
		return nil, ErrEmptyFile
	}

	index, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]entities.CatalogRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		get := func(col string) string {
			pos, ok := index[col]
			if !ok || pos >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[pos])
		}
		rows = append(rows, entities.CatalogRow{
			Row:             lines[i+1],
			Codigo:          get(colCodigo),
			Nombre:          get(colNombre),
			Precio:          get(colPrecio),
			Categoria:       get(colCategoria),
			Descripcion:     get(colDescripcion),
			TiempoResultado: get(colTiempoResultado),
			Preparacion:     get(colPreparacion),
		})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if !knownColumns[name] {
			continue
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return index, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Join(strings.Fields(h), "_")
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
