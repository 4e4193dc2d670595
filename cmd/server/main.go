package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	certificateapp "github.com/schoolms/backend/internal/application/certificate"
	"github.com/schoolms/backend/internal/application/common"
	frontofficeapp "github.com/schoolms/backend/internal/application/frontoffice"
	libraryapp "github.com/schoolms/backend/internal/application/library"
	payrollapp "github.com/schoolms/backend/internal/application/payroll"
	settingapp "github.com/schoolms/backend/internal/application/setting"
	"github.com/schoolms/backend/internal/infrastructure/config"
	"github.com/schoolms/backend/internal/infrastructure/logger"
	"github.com/schoolms/backend/internal/infrastructure/persistence"
	"github.com/schoolms/backend/internal/infrastructure/persistence/models"
	"github.com/schoolms/backend/internal/infrastructure/storage"
	"github.com/schoolms/backend/internal/infrastructure/telemetry"
	"github.com/schoolms/backend/internal/interfaces/http/handler"
	"github.com/schoolms/backend/internal/interfaces/http/middleware"
	"github.com/schoolms/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/schoolms/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			School Records API
//	@version		1.0
//	@description	Record keeping for school settings, library cards, payroll templates, postal records and student certificates.

//	@contact.name	API Support
//	@contact.url	https://github.com/schoolms/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}

	// Bootstrap logger for telemetry setup; replaced once the OTLP bridge exists
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()

	export := telemetry.ExportConfig{
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}
	logExport := export
	logExport.Enabled = cfg.Telemetry.LogsEnabled
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, logExport, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize OTLP log exporter", zap.Error(err))
	}

	otelCore := loggerProvider.ZapCore(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level))
	log, err := logger.New(logCfg, otelCore)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting school records backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", cfg.App.Version),
	)

	traceExport := export
	traceExport.Enabled = cfg.Telemetry.Enabled
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.TraceConfig{
		ExportConfig:  traceExport,
		SamplingRatio: cfg.Telemetry.SamplingRatio,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	metricExport := export
	metricExport.Enabled = cfg.Telemetry.MetricsEnabled
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		ExportConfig:   metricExport,
		ExportInterval: cfg.Telemetry.ExportInterval,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// each pipeline logs its own shutdown failure
		for _, stop := range []func(context.Context) error{
			meterProvider.Shutdown, tracerProvider.Shutdown, loggerProvider.Shutdown,
		} {
			_ = stop(shutdownCtx)
		}
	}()

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
	)

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Postgres schemas are owned by cmd/migrate
	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate sqlite schema", zap.Error(err))
		}
	}

	dbSystem := "postgresql"
	if cfg.Database.Driver == config.DriverSQLite {
		dbSystem = "sqlite"
	}
	tracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        dbSystem,
	}, log)
	if err := tracing.RegisterOtelGorm(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	var recordMetrics *telemetry.RecordMetrics
	if meterProvider.IsEnabled() {
		recordMetrics, err = telemetry.NewRecordMetrics(telemetry.RecordMetricsConfig{
			Meter:              meterProvider.Meter("school.records"),
			Logger:             log,
			CountProvider:      telemetry.NewGormRecordCountProvider(db.DB, models.All()...),
			SlowQueryThreshold: cfg.Telemetry.DBSlowQueryThresh,
		})
		if err != nil {
			log.Fatal("Failed to initialize record metrics", zap.Error(err))
		}
		if err := recordMetrics.Instrument(db.DB); err != nil {
			log.Fatal("Failed to instrument database statements", zap.Error(err))
		}
		recordMetrics.StartPeriodicCollection(ctx, time.Minute)
		defer recordMetrics.Stop()
	}

	resolver, err := storage.NewFilePathResolver(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	obs := common.NewObserver(log, recordMetrics)

	// Repositories
	keywordRepo := persistence.NewGormKeywordRepository(db.DB)
	backgroundImageRepo := persistence.NewGormBackgroundImageRepository(db.DB)
	libraryCardRepo := persistence.NewGormLibraryCardRepository(db.DB)
	payrollTemplateRepo := persistence.NewGormPayrollTemplateRepository(db.DB)
	salaryItemRepo := persistence.NewGormSalaryItemRepository(db.DB)
	payslipItemRepo := persistence.NewGormPayslipItemRepository(db.DB)
	postalRecordRepo := persistence.NewGormPostalRecordRepository(db.DB)
	certificateRepo := persistence.NewGormStudentCertificateRepository(db.DB)

	// Application services
	keywordService := settingapp.NewKeywordService(keywordRepo, obs)
	backgroundImageService := settingapp.NewBackgroundImageService(backgroundImageRepo, resolver, obs)
	libraryCardService := libraryapp.NewLibraryCardService(libraryCardRepo, obs)
	payrollTemplateService := payrollapp.NewPayrollTemplateService(payrollTemplateRepo, obs)
	salaryItemService := payrollapp.NewSalaryItemService(salaryItemRepo, obs)
	payslipItemService := payrollapp.NewPayslipItemService(payslipItemRepo, obs)
	postalRecordService := frontofficeapp.NewPostalRecordService(postalRecordRepo, resolver, obs)
	certificateService := certificateapp.NewStudentCertificateService(certificateRepo, obs)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.SetHTMLTemplate(handler.Templates())

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order: request id and logging first so recovery and
	// tracing see both, then tracing before the metrics that read its span
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		Logger:        log,
		Enabled:       cfg.Telemetry.MetricsEnabled,
	}))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfigFrom(cfg.HTTP)))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any",
			middleware.SwaggerProtection(cfg.Swagger),
			ginSwagger.WrapHandler(swaggerFiles.Handler),
		)
		log.Info("Swagger documentation enabled", zap.Strings("allowed_ips", cfg.Swagger.AllowedIPs))
	}

	router.Mount(engine, router.Handlers{
		System:             handler.NewSystemHandler(cfg.App.Name, cfg.App.Version),
		Welcome:            handler.NewWelcomeHandler(cfg.App.Name, cfg.App.Version, cfg.Swagger.Enabled),
		Keyword:            handler.NewKeywordHandler(keywordService),
		BackgroundImage:    handler.NewBackgroundImageHandler(backgroundImageService),
		LibraryCard:        handler.NewLibraryCardHandler(libraryCardService),
		PayrollTemplate:    handler.NewPayrollTemplateHandler(payrollTemplateService),
		SalaryItem:         handler.NewSalaryItemHandler(salaryItemService),
		PayslipItem:        handler.NewPayslipItemHandler(payslipItemService),
		PostalRecord:       handler.NewPostalRecordHandler(postalRecordService),
		StudentCertificate: handler.NewStudentCertificateHandler(certificateService),
	}, router.WithAPIVersion("v1"))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
