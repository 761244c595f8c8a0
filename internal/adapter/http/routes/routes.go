package routes

import (
	"log"
	"net/http"
	_ "tender_finder/docs" // This will be auto-generated
	"tender_finder/internal/adapter/http/handlers"
	"tender_finder/internal/adapter/http/middleware"
	repository2 "tender_finder/internal/adapter/persistence/repository"
	"tender_finder/internal/infrastructure/database"
	"tender_finder/internal/usecase"
	"tender_finder/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := LoadServerConfig()

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	log.Printf("[tender][server] listening port=%s store=%s", cfg.Port, cfg.Store)
	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg ServerConfig) {
	tenderRepo := newTenderRepository(cfg.Store)

	ucCfg := usecase.DefaultTenderUseCaseConfig()
	ucCfg.DefaultReference = cfg.DefaultReference
	tenderUseCase := usecase.NewTenderUseCase(tenderRepo, ucCfg)

	tenderHandler := handlers.NewTenderHandler(tenderUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addTenderRoutes(api, tenderHandler)
}

func newTenderRepository(store string) interfaces.ITenderRepository {
	switch store {
	case StoreDynamoDB:
		return repository2.NewTenderDynamoRepository(database.ConnectDynamoDB())
	default:
		return repository2.NewTenderPostgresRepository(database.ConnectPostgres())
	}
}

func setMiddlewares(cfg ServerConfig) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v request_id=%s", recovered, middleware.GetRequestID(c))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
