package api

import (
	"strconv"
	"time"

	"siddhartha-be/internal/config"
	"siddhartha-be/internal/logger"
	"siddhartha-be/internal/metrics"
	"siddhartha-be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires middleware and routes. The verify endpoint stays public;
// everything mutating under /api otherwise requires a bearer token.
func NewRouter(h *Handler, cfg *config.Config) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(httpMetrics())
	r.Use(middleware.RateLimit())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth([]byte(cfg.JWTSecret))

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", h.Register)
			users.POST("/login", h.Login)
			users.GET("/profile", auth, h.Profile)
		}

		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/categories", h.ListCategories)

		carts := api.Group("/cart", auth)
		{
			carts.GET("", h.GetCart)
			carts.POST("", h.AddToCart)
		}

		wish := api.Group("/wishlist", auth)
		{
			wish.GET("", h.GetWishlist)
			wish.POST("", h.AddToWishlist)
			wish.DELETE("/:id", h.RemoveFromWishlist)
		}

		orders := api.Group("/orders", auth)
		{
			orders.POST("", h.CreateOrder)
			orders.GET("/mine", h.ListMyOrders)
			orders.GET("/:id", h.GetOrder)
			orders.PUT("/:id/status", middleware.AdminOnly(), h.UpdateOrderStatus)
		}

		pay := api.Group("/payment/esewa")
		{
			pay.POST("/config", auth, h.EsewaConfig)
			pay.POST("/verify", h.EsewaVerify)
		}
	}

	return r
}

func httpMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
