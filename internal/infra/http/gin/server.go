package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayops/internal/infra/config"
	"stayops/internal/infra/obs"
)

type PricingHTTP interface {
	Daily(c *gin.Context)
	Range(c *gin.Context)
	SetPriceForRange(c *gin.Context)
}

type CalendarHTTP interface {
	Row(c *gin.Context)
}

type RulesHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Duplicate(c *gin.Context)
	ApplyToAll(c *gin.Context)
}

type Handlers struct {
	Pricing  PricingHTTP
	Calendar CalendarHTTP
	Rules    RulesHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Pricing != nil {
		api.GET("/properties/:id/pricing", h.Pricing.Daily)
		api.GET("/properties/:id/pricing-range", h.Pricing.Range)
		api.POST("/properties/:id/price-range", h.Pricing.SetPriceForRange)
	}
	if h.Calendar != nil {
		api.GET("/properties/:id/calendar", h.Calendar.Row)
	}
	if h.Rules != nil {
		rulesGroup := api.Group("/rules")
		rulesGroup.GET("", h.Rules.List)
		rulesGroup.POST("", h.Rules.Create)
		rulesGroup.PATCH("/:id", h.Rules.Update)
		rulesGroup.DELETE("/:id", h.Rules.Delete)
		rulesGroup.POST("/:id/duplicate", h.Rules.Duplicate)
		rulesGroup.POST("/:id/apply-to-all", h.Rules.ApplyToAll)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
