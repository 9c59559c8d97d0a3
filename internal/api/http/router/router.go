package router

import (
	"github.com/gin-gonic/gin"

	"github.com/piyussh25/misinformation-checker/internal/api/http/handler"
	"github.com/piyussh25/misinformation-checker/internal/api/http/middleware"
	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

// Router composes the HTTP route table: public auth routes, the
// authenticated history group, and the analyze route whose auth
// requirement is a configuration choice.
type Router struct {
	authService     handler.AuthService
	analysisService handler.AnalysisService
	tokens          middleware.SessionParser
	contextManager  model.ContextManager
	db              handler.Pinger
	analyzeAuth     bool
	logger          *logger.Logger
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	analysisService handler.AnalysisService,
	tokens middleware.SessionParser,
	contextManager model.ContextManager,
	db handler.Pinger,
	analyzeAuth bool,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		analysisService: analysisService,
		tokens:          tokens,
		contextManager:  contextManager,
		db:              db,
		analyzeAuth:     analyzeAuth,
		logger:          logger,
	}
}

// Register builds the gin engine with middleware and all routes.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle)

	authHandler := handler.NewAuth(r.authService, r.logger)
	analysisHandler := handler.NewAnalysis(r.analysisService, r.contextManager, r.logger)
	historyHandler := handler.NewHistory(r.analysisService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.db)

	auth := engine.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-username", authHandler.ForgotUsername)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	api := engine.Group("/api")
	api.Use(authenticate.Handle)
	{
		api.GET("/search-history", historyHandler.List)
		api.DELETE("/search-history", historyHandler.Clear)
	}

	if r.analyzeAuth {
		engine.POST("/analyze", authenticate.Handle, analysisHandler.Analyze)
	} else {
		engine.POST("/analyze", authenticate.HandleOptional, analysisHandler.Analyze)
	}

	engine.GET("/healthz", healthHandler.Check)

	return engine
}
