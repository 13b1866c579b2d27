package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	"github.com/BruksfildServices01/connect-marketplace/internal/auth"
	"github.com/BruksfildServices01/connect-marketplace/internal/config"
	"github.com/BruksfildServices01/connect-marketplace/internal/handlers"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	infraRepo "github.com/BruksfildServices01/connect-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/connect-marketplace/internal/middleware"
	ucAccount "github.com/BruksfildServices01/connect-marketplace/internal/usecase/account"
	ucCatalog "github.com/BruksfildServices01/connect-marketplace/internal/usecase/catalog"
)

// Route pairs a method and path with the access level the guard enforces.
type Route struct {
	Method  string
	Path    string
	Access  middleware.Access
	Handler handlers.Handler
}

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
	Hasher auth.PasswordHasher
}

// NewEngine builds the gin engine with the shared middleware chain and
// every route registered.
func NewEngine(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Metrics(),
		middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(deps.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(deps.DB)

	tokens := auth.NewTokenIssuer(
		deps.Config.JWTSecret,
		deps.Config.AccessTokenTTL,
		deps.Config.RefreshTokenTTL,
	)
	hasher := deps.Hasher
	if hasher == nil {
		hasher = auth.NewBcryptHasher()
	}
	auditLogger := audit.New(deps.Logger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerProviderUC := ucAccount.NewRegisterServiceProvider(accountRepo, hasher, auditLogger)
	registerManagerUC := ucAccount.NewRegisterSystemManager(accountRepo, hasher, auditLogger)
	loginUC := ucAccount.NewLogin(accountRepo, hasher, tokens)
	refreshUC := ucAccount.NewRefreshAccess(tokens)
	updateInfoUC := ucAccount.NewUpdateInfo(accountRepo, auditLogger)
	changePasswordUC := ucAccount.NewChangePassword(accountRepo, hasher, auditLogger)
	updateManagerUC := ucAccount.NewUpdateSystemManager(accountRepo, auditLogger)
	deleteManagerUC := ucAccount.NewDeleteSystemManager(accountRepo, auditLogger)

	createCategoryUC := ucCatalog.NewCreateCategory(catalogRepo, auditLogger)
	updateCategoryUC := ucCatalog.NewUpdateCategory(catalogRepo, auditLogger)
	deleteCategoryUC := ucCatalog.NewDeleteCategory(catalogRepo, auditLogger)
	createServiceUC := ucCatalog.NewCreateService(catalogRepo, auditLogger)
	updateServiceUC := ucCatalog.NewUpdateService(catalogRepo, auditLogger)
	deleteServiceUC := ucCatalog.NewDeleteService(catalogRepo, auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerProviderUC, registerManagerUC, loginUC, refreshUC)
	meHandler := handlers.NewMeHandler(accountRepo, updateInfoUC, changePasswordUC)
	managerHandler := handlers.NewSystemManagerHandler(accountRepo, updateManagerUC, deleteManagerUC)
	categoryHandler := handlers.NewCategoryHandler(catalogRepo, createCategoryUC, updateCategoryUC, deleteCategoryUC)
	serviceHandler := handlers.NewServiceHandler(catalogRepo, createServiceUC, updateServiceUC, deleteServiceUC)

	// ======================================================
	// ROUTE TABLE
	// ======================================================
	const (
		public = middleware.Public
		authed = middleware.Authenticated
		admin  = middleware.AdminOnly
	)

	table := []Route{
		// ------------------------------
		// Service categories
		// ------------------------------
		{http.MethodPost, "/services/add-new-category/", authed, categoryHandler.Create},
		{http.MethodGet, "/services/get-all-categories/", public, categoryHandler.List},
		{http.MethodGet, "/services/get-category/:id/", public, categoryHandler.Get},
		{http.MethodPut, "/services/categories/:id/update/", authed, categoryHandler.Update},
		{http.MethodPatch, "/services/categories/:id/update/", authed, categoryHandler.Update},
		{http.MethodDelete, "/services/categories/:id/delete/", authed, categoryHandler.Delete},

		// ------------------------------
		// Services
		// ------------------------------
		{http.MethodGet, "/services/get-all-services/", public, serviceHandler.List},
		{http.MethodGet, "/services/get-service/:id/", public, serviceHandler.Get},
		{http.MethodPost, "/services/add-new-service/", authed, serviceHandler.Create},
		{http.MethodPut, "/services/:id/update/", authed, serviceHandler.Update},
		{http.MethodPatch, "/services/:id/update/", authed, serviceHandler.Update},
		{http.MethodDelete, "/services/:id/delete/", authed, serviceHandler.Delete},

		// ------------------------------
		// Accounts
		// ------------------------------
		{http.MethodPost, "/users/create-service-provider/", public, authHandler.RegisterServiceProvider},
		{http.MethodPost, "/users/create-system-manager/", admin, authHandler.RegisterSystemManager},
		{http.MethodPost, "/users/auth/token/", public, authHandler.Login},
		{http.MethodPost, "/users/auth/token/refresh/", public, authHandler.Refresh},
		{http.MethodGet, "/users/fetch-service-provider/", authed, meHandler.FetchServiceProvider},
		{http.MethodGet, "/users/fetch-system-manager/", authed, meHandler.FetchSystemManager},
		{http.MethodPatch, "/users/update-info/", authed, meHandler.UpdateInfo},
		{http.MethodPatch, "/users/update-password/", authed, meHandler.UpdatePassword},

		// ------------------------------
		// System manager administration
		// ------------------------------
		{http.MethodGet, "/users/system-managers/", admin, managerHandler.List},
		{http.MethodGet, "/users/system-managers/:id/", admin, managerHandler.Get},
		{http.MethodPatch, "/users/system-managers/:id/update/", admin, managerHandler.Update},
		{http.MethodDelete, "/users/system-managers/:id/delete/", admin, managerHandler.Delete},
	}

	for _, rt := range table {
		r.Handle(rt.Method, rt.Path, middleware.Guard(rt.Access, tokens, accountRepo), rt.Handler.Gin())
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "Not found.")
	})
}
