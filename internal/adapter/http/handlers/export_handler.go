package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"healthathome/internal/usecase"
	"healthathome/pkg"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves printable proforma documents.
type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportPDF godoc
// @Summary  Download a proforma as PDF
// @Tags     proformas
// @Produce  application/pdf
// @Param    id path string true "Proforma ID"
// @Success  200 {file} file
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas/{id}/pdf [get]
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	h.export(c, usecase.ExportFormatPDF)
}

// ExportXLSX godoc
// @Summary  Download a proforma as an Excel workbook
// @Tags     proformas
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id path string true "Proforma ID"
// @Success  200 {file} file
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas/{id}/xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	h.export(c, usecase.ExportFormatXLSX)
}

func (h *ExportHandler) export(c *gin.Context, format string) {
	file, err := h.usecase.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func mapExportError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrUnsupportedExportFormat) {
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Unsupported export format", http.StatusBadRequest)
	}
	return mapProformaError(err)
}
