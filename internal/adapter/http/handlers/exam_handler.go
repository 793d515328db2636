package handlers

import (
	"errors"
	"net/http"

	request "healthathome/internal/adapter/http/dto/request"
	response "healthathome/internal/adapter/http/dto/response"
	"healthathome/internal/infrastructure/catalogfile"
	"healthathome/internal/usecase"
	"healthathome/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const maxCatalogUploadBytes = 10 << 20

var (
	errInvalidExamPayload = pkg.NewDomainErrorSimple("INVALID_EXAM_INPUT", "Invalid exam payload", http.StatusBadRequest)
	errMissingCatalogFile = pkg.NewDomainErrorSimple("INVALID_REQUEST", "A catalog file is required in the 'file' field", http.StatusBadRequest)
)

// ExamHandler serves the laboratory exam catalog.
type ExamHandler struct {
	usecase usecase.IExamUseCase
}

func NewExamHandler(uc usecase.IExamUseCase) *ExamHandler {
	return &ExamHandler{usecase: uc}
}

// CreateExam godoc
// @Summary  Create a catalog exam
// @Tags     exams
// @Accept   json
// @Produce  json
// @Param    exam body request.ExamRequest true "Exam"
// @Success  201 {object} response.ExamResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /exams [post]
func (h *ExamHandler) CreateExam(c *gin.Context) {
	var payload request.ExamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExamPayload.HTTPStatus, errInvalidExamPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapExamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExam(created))
}

// UpdateExam godoc
// @Summary  Replace a catalog exam
// @Tags     exams
// @Accept   json
// @Produce  json
// @Param    codigo path string true "Exam code"
// @Param    exam body request.ExamRequest true "Exam"
// @Success  200 {object} response.ExamResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /exams/{codigo} [put]
func (h *ExamHandler) UpdateExam(c *gin.Context) {
	var payload request.ExamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExamPayload.HTTPStatus, errInvalidExamPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("codigo"), payload.ToEntity())
	if err != nil {
		appErr := mapExamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExam(updated))
}

// GetExam godoc
// @Summary  Get a catalog exam
// @Tags     exams
// @Produce  json
// @Param    codigo path string true "Exam code"
// @Success  200 {object} response.ExamResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /exams/{codigo} [get]
func (h *ExamHandler) GetExam(c *gin.Context) {
	e, err := h.usecase.GetByCode(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		appErr := mapExamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExam(e))
}

// ListExams godoc
// @Summary  List the catalog
// @Tags     exams
// @Produce  json
// @Param    categoria query string false "Filter by category"
// @Success  200 {array} response.ExamResponse
// @Security Bearer
// @Router   /exams [get]
func (h *ExamHandler) ListExams(c *gin.Context) {
	exams, err := h.usecase.List(c.Request.Context(), c.Query("categoria"))
	if err != nil {
		appErr := mapExamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExams(exams))
}

// DeleteExam godoc
// @Summary  Delete a catalog exam
// @Tags     exams
// @Param    codigo path string true "Exam code"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /exams/{codigo} [delete]
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("codigo")); err != nil {
		appErr := mapExamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportExams godoc
// @Summary  Import the catalog from a CSV or XLSX file
// @Tags     exams
// @Accept   multipart/form-data
// @Produce  json
// @Param    file formData file true "Catalog file (.csv or .xlsx)"
// @Success  200 {object} response.ImportResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /exams/import [post]
func (h *ExamHandler) ImportExams(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCatalogUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingCatalogFile.HTTPStatus, errMissingCatalogFile.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	rows, err := catalogfile.Parse(f, fh.Filename)
	if err != nil {
		log.Warn().Err(err).Str("filename", fh.Filename).Msg("[exam][handler] catalog file rejected")
		appErr := pkg.NewDomainError("INVALID_CATALOG_FILE", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	results, err := h.usecase.Import(c.Request.Context(), rows)
	if err != nil {
		appErr := mapExamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImportResults(results))
}

func mapExamError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExamCode), errors.Is(err, usecase.ErrInvalidExamName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExamPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Precio must be a non-negative amount such as S/ 150.00", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExamAlreadyExists):
		return pkg.NewDomainErrorSimple("EXAM_ALREADY_EXISTS", "An exam with this codigo already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrExamNotFound):
		return pkg.NewDomainErrorSimple("EXAM_NOT_FOUND", "Exam not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExamInactive):
		return pkg.NewDomainErrorSimple("EXAM_INACTIVE", "Exam is no longer offered", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
