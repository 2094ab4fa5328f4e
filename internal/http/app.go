package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ton-mini-app-backend/docs"
	"ton-mini-app-backend/internal/common/config"
	"ton-mini-app-backend/internal/common/middleware"
	apphttp "ton-mini-app-backend/internal/features/app/delivery/http"
	appmodels "ton-mini-app-backend/internal/features/app/models"
	transfer "ton-mini-app-backend/internal/features/transfer/service"
	userhttp "ton-mini-app-backend/internal/features/user/delivery/http"
	"ton-mini-app-backend/internal/features/user/repository"
	userpg "ton-mini-app-backend/internal/features/user/repository/postgres"
	usercache "ton-mini-app-backend/internal/features/user/repository/redis"
	usersvc "ton-mini-app-backend/internal/features/user/service"
	"ton-mini-app-backend/internal/platform/postgres"
	redisp "ton-mini-app-backend/internal/platform/redis"
)

// NewApp builds the gin engine with all routes and middlewares wired.
// rdb may be nil, in which case users are read straight from postgres.
func NewApp(cfg *config.Config, pg *postgres.Client, rdb *redisp.Client) *gin.Engine {
	checks := map[string]apphttp.HealthChecker{"postgres": pg}

	var cache repository.UserCache
	if rdb != nil {
		cache = usercache.NewUserCache(rdb, cfg.Redis.UserTTL)
		checks["redis"] = rdb
	}

	users := usersvc.NewUserService(
		userpg.NewPostgresRepository(pg.DB()),
		cache,
		transfer.NewStubInitiator(),
		usersvc.Options{
			SignupBalance: cfg.Wallet.SignupBalance,
			WalletBonus:   cfg.Wallet.Bonus,
		},
	)

	manifest := appmodels.NewManifest(cfg.App.URL, cfg.App.Name, cfg.App.IconURL)

	return NewRouter(cfg, userhttp.NewUserHandler(users), apphttp.NewAppHandler(manifest, checks))
}

func NewRouter(cfg *config.Config, users *userhttp.UserHandler, app *apphttp.AppHandler) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.ErrorResponder())
	router.Use(middleware.TelegramInitData())

	app.RegisterRoutes(router)
	users.RegisterRoutes(router.Group("/api"))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
