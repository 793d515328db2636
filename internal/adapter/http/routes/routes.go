package routes

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "healthathome/docs"
	"healthathome/internal/adapter/http/handlers"
	"healthathome/internal/adapter/http/middleware"
	"healthathome/internal/adapter/persistence/repository"
	"healthathome/internal/config"
	"healthathome/internal/infrastructure/cache"
	"healthathome/internal/infrastructure/database"
	"healthathome/internal/infrastructure/export"
	"healthathome/internal/infrastructure/payments"
	"healthathome/internal/usecase"
	"healthathome/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Exam     *handlers.ExamHandler
	Quote    *handlers.QuoteHandler
	Proforma *handlers.ProformaHandler
	Export   *handlers.ExportHandler
	Payment  *handlers.BillingPaymentHandler
}

// Run wires the application from cfg and serves HTTP until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}

	auth := middleware.DevAuth()
	if !cfg.AuthDisabled {
		auth = middleware.Authenticate([]byte(cfg.AuthJWTSecret))
	} else {
		log.Warn().Msg("[http] AUTH_DISABLED is set: every request runs as admin")
	}

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(h, auth),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("[http] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts the public routes and the authenticated /v1 API.
func NewRouter(h Handlers, auth gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log.Logger), middleware.Recovery(log.Logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("", auth)
	addCatalogRoutes(api, h)
	addBillingRoutes(api, h)

	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	quoteCfg, err := cfg.Quote()
	if err != nil {
		return Handlers{}, err
	}
	dates, err := cfg.Normalizer()
	if err != nil {
		return Handlers{}, err
	}

	ddb, err := database.NewDynamoDBClient(ctx, database.Settings{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		SessionToken:    cfg.AWSSessionToken,
		Endpoint:        cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return Handlers{}, err
	}

	var examRepo interfaces.IExamRepository = repository.NewExamDynamoRepository(ddb, cfg.ExamsTable)
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return Handlers{}, err
		}
		examRepo = repository.NewCachedExamRepository(examRepo, cache.NewRedisCache(client, cfg.CatalogCacheTTL()))
		log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CatalogCacheTTL()).Msg("[catalog][cache] redis enabled")
	}
	proformaRepo := repository.NewProformaDynamoRepository(ddb, cfg.ProformasTable, dates)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	var gateway interfaces.IPaymentGateway
	if !cfg.PaymentGatewayMock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Warn().Err(err).Msg("[payment][gateway] Mercado Pago gateway not configured")
		} else {
			gateway = mpGateway
		}
	}

	examUseCase := usecase.NewExamUseCase(examRepo)
	quoteUseCase := usecase.NewQuoteUseCase(examRepo, quoteCfg)
	proformaUseCase := usecase.NewProformaUseCase(proformaRepo, examRepo, quoteCfg, dates)
	exportUseCase := usecase.NewExportUseCase(proformaUseCase, export.PDFRenderer{}, export.ExcelRenderer{})
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, proformaRepo, gateway, usecase.PaymentOptions{
		MockMode:          cfg.PaymentGatewayMock,
		SandboxPayerEmail: cfg.MercadoPagoTestPayerEmail,
	})

	return Handlers{
		Exam:     handlers.NewExamHandler(examUseCase),
		Quote:    handlers.NewQuoteHandler(quoteUseCase),
		Proforma: handlers.NewProformaHandler(proformaUseCase),
		Export:   handlers.NewExportHandler(exportUseCase),
		Payment:  handlers.NewBillingPaymentHandler(paymentUseCase),
	}, nil
}
