package entities

// CatalogRow is a raw data row read from a catalog CSV or XLSX file. Row is
// the 1-based line number in the source, header included.
type CatalogRow struct {
	Row             int
	Codigo          string
	Nombre          string
	Precio          string
	Categoria       string
	Descripcion     string
	TiempoResultado string
	Preparacion     string
}

// ImportRowResult reports what happened to one CatalogRow.
type ImportRowResult struct {
	Row    int    `json:"row"`
	Codigo string `json:"codigo"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}
