package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Gastos-api/internal/application/auth"
	"github.com/jhoicas/Gastos-api/internal/application/expense"
	"github.com/jhoicas/Gastos-api/internal/application/usecase"
	"github.com/jhoicas/Gastos-api/internal/domain/approval"
	infracountries "github.com/jhoicas/Gastos-api/internal/infrastructure/countries"
	infrafx "github.com/jhoicas/Gastos-api/internal/infrastructure/fx"
	infraocr "github.com/jhoicas/Gastos-api/internal/infrastructure/ocr"
	infrapdf "github.com/jhoicas/Gastos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gastos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gastos-api/internal/interfaces/http"
	"github.com/jhoicas/Gastos-api/pkg/config"
	"github.com/jhoicas/Gastos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	ruleRepo := postgres.NewRuleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	approvalRepo := postgres.NewApprovalRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Adaptadores externos
	fxService := infrafx.NewExchangeRateService(cfg.FX, log.Zerolog())
	countriesService := infracountries.NewRestCountriesService(cfg.Countries)
	ocrParser := infraocr.NewSimulatedParser()
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	// Núcleo de aprobación
	resolver := approval.NewDynamicResolver(userRepo)
	policy := approval.AdminOverridePolicy

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, ruleRepo, countriesService, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	ruleUC := usecase.NewRuleUseCase(ruleRepo)
	submitUC := expense.NewSubmitUseCase(expenseRepo, companyRepo, fxService, ocrParser, log.Zerolog())
	decisionUC := expense.NewDecisionUseCase(txRunner, ruleRepo, resolver, policy, log.Zerolog())
	pendingUC := expense.NewPendingUseCase(expenseRepo, ruleRepo, resolver)
	queryUC := expense.NewQueryUseCase(expenseRepo, userRepo, approvalRepo, fxService, log.Zerolog())
	reportUC := expense.NewReportUseCase(queryUC, companyRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gastos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		RuleUC:     ruleUC,
		SubmitUC:   submitUC,
		DecisionUC: decisionUC,
		PendingUC:  pendingUC,
		QueryUC:    queryUC,
		ReportUC:   reportUC,
		OCR:        ocrParser,
		UserRepo:   userRepo,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
