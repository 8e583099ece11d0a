package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"anuncia/cmd/fx/account_fx"
	"anuncia/cmd/fx/assistant_fx"
	"anuncia/cmd/fx/cache_fx"
	"anuncia/cmd/fx/config_fx"
	"anuncia/cmd/fx/controllers_fx"
	"anuncia/cmd/fx/db_fx"
	"anuncia/cmd/fx/payment_fx"
	"anuncia/cmd/fx/plan_fx"
	"anuncia/cmd/fx/post_fx"
	"anuncia/cmd/fx/refresh_fx"
	"anuncia/cmd/fx/site_fx"
	"anuncia/cmd/fx/store_fx"
	"anuncia/internal/api/controllers"
	"anuncia/internal/config"
	"anuncia/internal/models/db_models"
	"anuncia/pkg/middleware"
	"anuncia/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		cache_fx.Module,
		store_fx.Module,
		account_fx.Module,
		post_fx.Module,
		plan_fx.Module,
		site_fx.Module,
		payment_fx.Module,
		assistant_fx.Module,
		refresh_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	issuer *utils.TokenIssuer,
	accountController *controllers.AccountController,
	postController *controllers.PostController,
	planController *controllers.PlanController,
	siteController *controllers.SiteController,
	paymentController *controllers.PaymentController,
	assistantController *controllers.AssistantController,
	refreshController *controllers.RefreshController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, issuer,
		accountController, postController, planController,
		siteController, paymentController, assistantController, refreshController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	issuer *utils.TokenIssuer,
	accountController *controllers.AccountController,
	postController *controllers.PostController,
	planController *controllers.PlanController,
	siteController *controllers.SiteController,
	paymentController *controllers.PaymentController,
	assistantController *controllers.AssistantController,
	refreshController *controllers.RefreshController) {

	// Public surface: everything a visitor sees before logging in.
	r.POST("/accounts/register", accountController.Register)
	r.POST("/accounts/login", accountController.Login)
	r.GET("/site/config", siteController.GetConfig)
	r.GET("/categories", siteController.ListCategories)
	r.GET("/plans", planController.List)
	r.GET("/posts", postController.Feed)
	r.POST("/assistant/chat", assistantController.Chat)
	r.GET("/refresh", middleware.OptionalJWTAuthMiddleware(issuer), refreshController.Refresh)

	authed := r.Group("/", middleware.JWTAuthMiddleware(issuer))
	authed.GET("/accounts/me", accountController.Me)
	authed.POST("/posts", postController.Create)
	authed.POST("/payments/checkout", paymentController.Checkout)
	authed.POST("/payments/confirm", paymentController.Confirm)
	authed.POST("/assistant/ad-copy", assistantController.GenerateAdCopy)

	admin := r.Group("/admin",
		middleware.JWTAuthMiddleware(issuer),
		middleware.RoleMiddleware(string(db_models.RoleAdmin)))
	admin.GET("/users", accountController.GetAllAccounts)
	admin.PUT("/users/:id", accountController.UpdateAccount)
	admin.DELETE("/users/:id", accountController.DeleteAccount)
	admin.POST("/plans", planController.Create)
	admin.PUT("/plans/:id", planController.Update)
	admin.DELETE("/plans/:id", planController.Delete)
	admin.POST("/categories", siteController.AddCategory)
	admin.DELETE("/categories/:id", siteController.DeleteCategory)
	admin.PUT("/site/config", siteController.SaveConfig)
	admin.PUT("/posts/:id", postController.Update)
	admin.DELETE("/posts/:id", postController.Delete)
}
