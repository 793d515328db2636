package handlers

import (
	"net/http"

	request "healthathome/internal/adapter/http/dto/request"
	response "healthathome/internal/adapter/http/dto/response"
	"healthathome/internal/usecase"
	"healthathome/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Send either codigos or examenes", http.StatusBadRequest)

// QuoteHandler previews quotes without creating a proforma.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// PreviewQuote godoc
// @Summary  Preview a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote body request.QuotePreviewRequest true "Exam codes or inline exams"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes/preview [post]
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.QuotePreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if payload.IsInline() {
		c.JSON(http.StatusOK, response.FromQuote(h.usecase.PreviewExams(payload.InlineExams())))
		return
	}

	quote, err := h.usecase.PreviewByCodes(c.Request.Context(), payload.Codigos)
	if err != nil {
		appErr := mapExamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}
