package handlers

import (
	"context"
	"errors"
	"net/http"

	request "healthathome/internal/adapter/http/dto/request"
	response "healthathome/internal/adapter/http/dto/response"
	"healthathome/internal/domain/entities"
	"healthathome/internal/usecase"
	"healthathome/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProformaPayload = pkg.NewDomainErrorSimple("INVALID_PROFORMA_INPUT", "Invalid proforma payload", http.StatusBadRequest)
)

// ProformaHandler handles the proforma lifecycle over HTTP.
type ProformaHandler struct {
	usecase usecase.IProformaUseCase
}

func NewProformaHandler(uc usecase.IProformaUseCase) *ProformaHandler {
	return &ProformaHandler{usecase: uc}
}

// CreateProforma godoc
// @Summary  Create a proforma
// @Tags     proformas
// @Accept   json
// @Produce  json
// @Param    proforma body request.CreateProformaRequest true "Proforma"
// @Success  201 {object} response.ProformaResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas [post]
func (h *ProformaHandler) CreateProforma(c *gin.Context) {
	var payload request.CreateProformaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProformaPayload.HTTPStatus, errInvalidProformaPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapProformaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProforma(p))
}

// ApproveProforma godoc
// @Summary  Approve a pending proforma
// @Tags     proformas
// @Produce  json
// @Param    id path string true "Proforma ID"
// @Success  200 {object} response.ProformaResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas/{id}/approve [patch]
func (h *ProformaHandler) ApproveProforma(c *gin.Context) {
	h.patchProformaStatus(c, h.usecase.Approve)
}

// RejectProforma godoc
// @Summary  Reject a pending proforma
// @Tags     proformas
// @Produce  json
// @Param    id path string true "Proforma ID"
// @Success  200 {object} response.ProformaResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas/{id}/reject [patch]
func (h *ProformaHandler) RejectProforma(c *gin.Context) {
	h.patchProformaStatus(c, h.usecase.Reject)
}

// CancelProforma godoc
// @Summary  Cancel a pending proforma
// @Tags     proformas
// @Produce  json
// @Param    id path string true "Proforma ID"
// @Success  200 {object} response.ProformaResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas/{id}/cancel [patch]
func (h *ProformaHandler) CancelProforma(c *gin.Context) {
	h.patchProformaStatus(c, h.usecase.Cancel)
}

func (h *ProformaHandler) patchProformaStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proforma, error),
) {
	p, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProformaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProforma(p))
}

// UpdateProformaExams godoc
// @Summary  Change the exams of a pending proforma
// @Tags     proformas
// @Accept   json
// @Produce  json
// @Param    id path string true "Proforma ID"
// @Param    exams body request.UpdateProformaExamsRequest true "Exam codes"
// @Success  200 {object} response.ProformaResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas/{id}/exams [put]
func (h *ProformaHandler) UpdateProformaExams(c *gin.Context) {
	var payload request.UpdateProformaExamsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProformaPayload.HTTPStatus, errInvalidProformaPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateExams(c.Request.Context(), c.Param("id"), payload.CodigosExamen)
	if err != nil {
		appErr := mapProformaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProforma(p))
}

// GetProforma godoc
// @Summary  Get a proforma
// @Tags     proformas
// @Produce  json
// @Param    id path string true "Proforma ID"
// @Success  200 {object} response.ProformaResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas/{id} [get]
func (h *ProformaHandler) GetProforma(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProformaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProforma(p))
}

// ListProformas godoc
// @Summary  List proformas
// @Tags     proformas
// @Produce  json
// @Param    status query string false "pendiente, aprobada, rechazada or anulada"
// @Success  200 {array} response.ProformaResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas [get]
func (h *ProformaHandler) ListProformas(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapProformaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProformas(list))
}

// GetProformaQuote godoc
// @Summary  Price breakdown of a proforma
// @Tags     proformas
// @Produce  json
// @Param    id path string true "Proforma ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /proformas/{id}/quote [get]
func (h *ProformaHandler) GetProformaQuote(c *gin.Context) {
	q, err := h.usecase.Quote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProformaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapProformaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProformaID), errors.Is(err, usecase.ErrInvalidPatientName),
		errors.Is(err, usecase.ErrNoExamsSelected), errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVisitDate):
		return pkg.NewDomainErrorSimple("INVALID_VISIT_DATE", "fecha_visita must be a valid date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitDateInPast):
		return pkg.NewDomainErrorSimple("VISIT_DATE_IN_PAST", "fecha_visita cannot be in the past", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVisitTime):
		return pkg.NewDomainErrorSimple("INVALID_VISIT_TIME", "hora_visita must be a valid time", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProformaNotFound):
		return pkg.NewDomainErrorSimple("PROFORMA_NOT_FOUND", "Proforma not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Proforma is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidExamCode), errors.Is(err, usecase.ErrExamNotFound), errors.Is(err, usecase.ErrExamInactive):
		return mapExamError(err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
