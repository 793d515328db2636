package routes

import (
	"healthathome/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathExams     = "/exams"
	PathQuotes    = "/quotes"
	PathProformas = "/proformas"
	PathPayments  = "/payments"
)

var (
	catalogReaders  = []string{middleware.RoleLaboratorio, middleware.RoleRecepcion, middleware.RoleEnfermeria}
	catalogWriters  = []string{middleware.RoleLaboratorio}
	proformaStaff   = []string{middleware.RoleRecepcion, middleware.RoleLaboratorio}
	paymentCashiers = []string{middleware.RoleRecepcion}
)

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	exams := rg.Group(PathExams)
	{
		exams.GET("", middleware.RequireRole(catalogReaders...), h.Exam.ListExams)
		exams.GET("/:codigo", middleware.RequireRole(catalogReaders...), h.Exam.GetExam)
		exams.POST("", middleware.RequireRole(catalogWriters...), h.Exam.CreateExam)
		exams.POST("/import", middleware.RequireRole(catalogWriters...), h.Exam.ImportExams)
		exams.PUT("/:codigo", middleware.RequireRole(catalogWriters...), h.Exam.UpdateExam)
		exams.DELETE("/:codigo", middleware.RequireRole(catalogWriters...), h.Exam.DeleteExam)
	}

	quotes := rg.Group(PathQuotes, middleware.RequireRole(proformaStaff...))
	{
		quotes.POST("/preview", h.Quote.PreviewQuote)
	}
}

func addBillingRoutes(rg *gin.RouterGroup, h Handlers) {
	proformas := rg.Group(PathProformas, middleware.RequireRole(proformaStaff...))
	{
		proformas.POST("", h.Proforma.CreateProforma)
		proformas.GET("", h.Proforma.ListProformas)
		proformas.GET("/:id", h.Proforma.GetProforma)
		proformas.GET("/:id/quote", h.Proforma.GetProformaQuote)
		proformas.GET("/:id/pdf", h.Export.ExportPDF)
		proformas.GET("/:id/xlsx", h.Export.ExportXLSX)
		proformas.PUT("/:id/exams", h.Proforma.UpdateProformaExams)
		proformas.PATCH("/:id/approve", h.Proforma.ApproveProforma)
		proformas.PATCH("/:id/reject", h.Proforma.RejectProforma)
		proformas.PATCH("/:id/cancel", h.Proforma.CancelProforma)
	}

	payments := rg.Group(PathPayments, middleware.RequireRole(paymentCashiers...))
	{
		payments.POST("/:proforma_id", h.Payment.CreatePaymentByProformaID)
		payments.GET("/:proforma_id", h.Payment.GetPaymentByProformaID)
	}
}
