package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gastos-api/internal/application/auth"
	"github.com/jhoicas/Gastos-api/internal/application/expense"
	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/application/usecase"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	RuleUC     *usecase.RuleUseCase
	SubmitUC   *expense.SubmitUseCase
	DecisionUC *expense.DecisionUseCase
	PendingUC  *expense.PendingUseCase
	QueryUC    *expense.QueryUseCase
	ReportUC   *expense.ReportUseCase
	OCR        ports.ReceiptParser
	UserRepo   repository.UserRepository
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (alta y edición solo Admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", RequireRole(entity.RoleAdmin), userHandler.Update)

	// Approval rules (edición solo Admin)
	rules := protected.Group("/approval-rules")
	ruleHandler := NewRuleHandler(deps.RuleUC)
	rules.Post("/", RequireRole(entity.RoleAdmin), ruleHandler.Create)
	rules.Get("/", ruleHandler.List)
	rules.Put("/:id", RequireRole(entity.RoleAdmin), ruleHandler.Update)

	// Expenses
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(
		deps.SubmitUC, deps.DecisionUC, deps.PendingUC,
		deps.QueryUC, deps.ReportUC, deps.OCR, deps.UserRepo,
	)
	expenses.Post("/", RequireRole(entity.RoleEmployee, entity.RoleAdmin), expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/pending", expenseHandler.Pending)
	expenses.Get("/report/pdf", expenseHandler.ReportPDF)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id/approve", RequireRole(entity.RoleManager, entity.RoleAdmin), expenseHandler.Approve)
	expenses.Put("/:id/reject", RequireRole(entity.RoleManager, entity.RoleAdmin), expenseHandler.Reject)

	// Approvals (bandeja y historial del aprobador)
	approvals := protected.Group("/approvals")
	approvals.Get("/pending", expenseHandler.Pending)
	approvals.Get("/history", expenseHandler.History)

	// OCR
	api.Post("/ocr/parse", AuthMiddleware(deps.JWTSecret), expenseHandler.ParseReceipt)
}
