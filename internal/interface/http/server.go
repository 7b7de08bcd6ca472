package httpapi

import (
	"database/sql"
	"net/http"
	"time"

	appAuth "dropout-risk-api/internal/application/auth"
	appExpert "dropout-risk-api/internal/application/expert"
	"dropout-risk-api/internal/infra/memory"
	authinfra "dropout-risk-api/internal/infrastructure/auth"
	"dropout-risk-api/internal/infrastructure/config"
	filestore "dropout-risk-api/internal/infrastructure/persistence/file"
	pgstore "dropout-risk-api/internal/infrastructure/persistence/postgres"

	"github.com/gin-gonic/gin"
)

const (
	errCodeBadRequest         = "BAD_REQUEST"
	errCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	errCodeUnauthorized       = "AUTH_UNAUTHORIZED"
	errCodeForbidden          = "AUTH_FORBIDDEN"
	errCodeKnowledgeLoad      = "KNOWLEDGE_LOAD_FAILED"
	errCodeInternal           = "INTERNAL_ERROR"
)

// Server 封裝 HTTP 路由與依賴。
type Server struct {
	engine   *gin.Engine
	db       *sql.DB
	store    *memory.Store
	loginUC  *appAuth.LoginUseCase
	authz    *appAuth.Authorizer
	assessUC *appExpert.AssessUseCase
	factsUC  *appExpert.ListFactsUseCase
	rulesUC  *appExpert.ListRulesUseCase
	tokenSvc *authinfra.JWTIssuer
	tokenTTL time.Duration
}

// NewServer 建立 API 伺服器。知識庫預設讀取靜態 JSON 檔；
// 若 db 可用則改用 Postgres 知識庫。
func NewServer(cfg config.Config, db *sql.DB) *Server {
	cfg.Auth = seedDefaults(cfg.Auth)

	store := memory.NewStore()
	store.SeedUser(cfg.Auth.SeedEmail, cfg.Auth.SeedPassword, cfg.Auth.SeedName)

	var knowledge appExpert.KnowledgeRepository
	if db != nil {
		knowledge = pgstore.NewKnowledgeRepo(db)
	} else {
		knowledge = filestore.NewKnowledgeRepo(cfg.Expert.RulesPath, cfg.Expert.FactsPath)
	}

	ttl := cfg.Auth.TokenTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	tokenSvc := authinfra.NewJWTIssuer(cfg.Auth.Secret, ttl)

	s := &Server{
		engine:   gin.New(),
		db:       db,
		store:    store,
		loginUC:  appAuth.NewLoginUseCase(store, authinfra.BcryptHasher{}, tokenSvc),
		authz:    appAuth.NewAuthorizer(store),
		assessUC: appExpert.NewAssessUseCase(knowledge, cfg.Expert.MinFacts),
		factsUC:  appExpert.NewListFactsUseCase(knowledge),
		rulesUC:  appExpert.NewListRulesUseCase(knowledge),
		tokenSvc: tokenSvc,
		tokenTTL: ttl,
	}
	s.registerRoutes()
	return s
}

func seedDefaults(cfg config.AuthConfig) config.AuthConfig {
	if cfg.SeedEmail == "" {
		cfg.SeedEmail = "user@gmail.com"
	}
	if cfg.SeedPassword == "" {
		cfg.SeedPassword = "Pwd4516"
	}
	if cfg.SeedName == "" {
		cfg.SeedName = "User"
	}
	if cfg.Secret == "" {
		cfg.Secret = "dev-secret-change-me"
	}
	return cfg
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.Use(s.ginLogger(), corsMiddleware())

	s.engine.GET("/", s.handleIndex)
	s.engine.POST("/auth/login", s.handleLogin)
	s.engine.POST("/expert-system/dropout-risk", s.handleDropoutRisk)
	s.engine.GET("/expert-system/facts", s.handleFacts)
	s.engine.GET("/admin/rules", s.requireAuth(appAuth.PermKnowledgeView), s.handleRules)
}
