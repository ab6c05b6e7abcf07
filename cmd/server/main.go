package main

import (
	"siddhartha-be/internal/api"
	"siddhartha-be/internal/cart"
	"siddhartha-be/internal/category"
	"siddhartha-be/internal/config"
	"siddhartha-be/internal/db"
	"siddhartha-be/internal/logger"
	"siddhartha-be/internal/order"
	"siddhartha-be/internal/payment"
	"siddhartha-be/internal/product"
	"siddhartha-be/internal/user"
	"siddhartha-be/internal/wishlist"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, []byte(cfg.JWTSecret))

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	wishlistRepo := wishlist.NewRepository(database)
	wishlistSvc := wishlist.NewService(wishlistRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productRepo, cfg.Pricing)

	paymentSvc := payment.NewService(orderRepo, cfg.Esewa)

	h := api.NewHandler(userSvc, productSvc, categorySvc, cartSvc, wishlistSvc, orderSvc, paymentSvc)
	router := api.NewRouter(h, cfg)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
