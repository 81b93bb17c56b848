package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodpoint-pos/config"
	"github.com/yeremiapane/foodpoint-pos/controllers"
	"github.com/yeremiapane/foodpoint-pos/kds"
	"github.com/yeremiapane/foodpoint-pos/repositories"
	"github.com/yeremiapane/foodpoint-pos/router"
	"github.com/yeremiapane/foodpoint-pos/services"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger(cfg.LogLevel)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	hub := kds.NewHub()
	clock := services.RealClock{}
	images := services.NewImageStore(cfg.UploadDir)

	menuRepo := repositories.NewMenuItemGormRepository(db)
	orderRepo := repositories.NewOrderGormRepository(db)
	saleRepo := repositories.NewSaleGormRepository(db)
	txManager := repositories.NewTxManagerGorm(db)

	menuSvc := services.NewMenuService(menuRepo, images, hub)
	orderSvc := services.NewOrderService(orderRepo, txManager, clock, hub, services.OrderServiceConfig{
		RecordSaleOnPayment: cfg.RecordSaleOnPayment,
		RestaurantName:      cfg.RestaurantName,
	})
	salesSvc := services.NewSalesService(saleRepo, clock, hub)

	r := router.SetupRouter(router.Controllers{
		Menu:   controllers.NewMenuController(menuSvc, cfg.MaxUploadMB<<20),
		Order:  controllers.NewOrderController(orderSvc),
		Sales:  controllers.NewSalesController(salesSvc),
		Image:  controllers.NewImageController(images),
		Events: controllers.NewEventsController(hub, cfg.AllowedOrigin),
	}, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Errorf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
