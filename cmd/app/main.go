package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soko/cmd/fx/auth_fx"
	"soko/cmd/fx/categories_fx"
	"soko/cmd/fx/controllers_fx"
	"soko/cmd/fx/db_fx"
	"soko/cmd/fx/mail_fx"
	"soko/cmd/fx/products_fx"
	"soko/cmd/fx/redis_fx"
	"soko/cmd/fx/search_fx"
	"soko/cmd/fx/storage_fx"
	"soko/cmd/fx/stores_fx"
	"soko/cmd/fx/subscriptions_fx"
	"soko/cmd/fx/users_fx"
	"soko/internal/api/controllers"
	"soko/internal/infra"
	"soko/internal/models/db_models"
	"soko/pkg/config"
	"soko/pkg/middleware"
	"soko/pkg/ratelimit"
	"soko/pkg/utils"
)

// subscriptionWindow is how long a payment keeps merchant routes open.
const subscriptionWindow = 30 * 24 * time.Hour

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		redis_fx.Module,
		mail_fx.Module,
		storage_fx.Module,
		auth_fx.Module,
		users_fx.Module,
		stores_fx.Module,
		products_fx.Module,
		categories_fx.Module,
		subscriptions_fx.Module,
		search_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
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
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	tokenMaker *utils.TokenMaker,
	principals middleware.PrincipalResolver,
	limiter *ratelimit.FixedWindowLimiter,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	storeController *controllers.StoreController,
	productController *controllers.ProductController,
	categoryController *controllers.CategoryController,
	subscriptionController *controllers.SubscriptionController,
	searchController *controllers.SearchController,
) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ErrorHandler(!cfg.IsProduction()))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimit(limiter))

	r.Static("/public", cfg.PublicDir)
	r.NoRoute(notFoundHandler(!cfg.IsProduction()))

	RegisterRoutes(r, cfg, tokenMaker, principals,
		authController, userController, storeController,
		productController, categoryController, subscriptionController, searchController)

	return r
}

// notFoundHandler renders unknown paths through the same normalization as the
// error middleware, so dev mode keeps its stack traces for 404s too.
func notFoundHandler(verbose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.RenderError(c, utils.NewAppError(http.StatusNotFound,
			fmt.Sprintf("Can't find %s on this server!", c.Request.URL.Path)), verbose)
	}
}

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	tokenMaker *utils.TokenMaker,
	principals middleware.PrincipalResolver,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	storeController *controllers.StoreController,
	productController *controllers.ProductController,
	categoryController *controllers.CategoryController,
	subscriptionController *controllers.SubscriptionController,
	searchController *controllers.SearchController,
) {

	protect := middleware.Protect(tokenMaker, principals)
	adminOnly := middleware.RequireRoles(db_models.RoleAdmin)
	subscribed := middleware.RequireSubscription(subscriptionWindow)

	v1 := r.Group(cfg.APIPrefix + "/v1")

	auth := v1.Group("/auth")
	auth.POST("/signup", authController.Signup)
	auth.POST("/login", authController.Login)
	auth.POST("/refresh", authController.Refresh)
	auth.POST("/logout", authController.Logout)
	auth.POST("/forgotPassword", authController.ForgotPassword)
	auth.PATCH("/resetPassword/:token", authController.ResetPassword)
	auth.PATCH("/updateMyPassword", protect, authController.UpdatePassword)

	users := v1.Group("/users")
	users.GET("/me", protect, userController.GetMe)
	users.PATCH("/updateMe", protect, userController.UpdateMe)
	users.DELETE("/deleteMe", protect, userController.DeleteMe)

	users.GET("", protect, adminOnly, userController.GetAll(nil))
	users.GET("/count", protect, adminOnly, userController.GetCount(nil))
	users.GET("/:id", protect, adminOnly, userController.GetOne())
	users.PATCH("/:id", protect, adminOnly, userController.UpdateOne(userController.BindUpdates))
	users.DELETE("/:id", protect, adminOnly, userController.DeleteOne())

	stores := v1.Group("/stores")
	stores.GET("", storeController.GetAll(nil))
	stores.GET("/count", storeController.GetCount(nil))
	stores.GET("/discover", storeController.GetDistinct())
	stores.GET("/search", storeController.Search())
	stores.GET("/my-store", protect, storeController.MyStore)
	stores.GET("/:id", storeController.GetOne())
	stores.POST("", protect, storeController.CreateOne(storeController.BindCreate))
	stores.PATCH("/:id", protect, storeController.GuardOwner, storeController.UpdateOne(storeController.BindUpdates))
	stores.DELETE("/:id", protect, storeController.GuardOwner, storeController.DeleteOne())
	stores.PATCH("/:id/logo", protect, storeController.GuardOwner, storeController.UploadLogo)

	stores.GET("/:id/products", productController.GetAll(productController.StoreScope))
	stores.POST("/:id/products", protect, subscribed, productController.CreateOne(productController.BindCreate))

	products := v1.Group("/products")
	products.GET("", productController.GetAll(nil))
	products.GET("/count", productController.GetCount(nil))
	products.GET("/discover", productController.GetDistinct())
	products.GET("/search", productController.Search())
	products.GET("/:id", productController.GetOne())
	products.POST("", protect, subscribed, productController.CreateOne(productController.BindCreate))
	products.PATCH("/:id", protect, subscribed, productController.GuardOwner, productController.UpdateOne(productController.BindUpdates))
	products.DELETE("/:id", protect, productController.GuardOwner, productController.DeleteOne())
	products.PATCH("/:id/images", protect, subscribed, productController.GuardOwner, productController.UploadImages)

	categories := v1.Group("/categories")
	categories.GET("", categoryController.GetAll(nil))
	categories.GET("/count", categoryController.GetCount(nil))
	categories.GET("/search", categoryController.Search())
	categories.GET("/:id", categoryController.GetOne())
	categories.POST("", protect, adminOnly, categoryController.CreateOne(categoryController.BindCreate))
	categories.PATCH("/:id", protect, adminOnly, categoryController.UpdateOne(categoryController.BindUpdates))
	categories.DELETE("/:id", protect, adminOnly, categoryController.DeleteOne())

	subscriptions := v1.Group("/subscriptions")
	subscriptions.POST("/pay", protect, subscriptionController.Pay)
	subscriptions.POST("", protect, subscriptionController.CreateRefused)
	subscriptions.GET("/my-subscriptions", protect, subscriptionController.GetAll(subscriptionController.MyScope))
	subscriptions.GET("/my-subscriptionCount", protect, subscriptionController.GetCount(subscriptionController.MyScope))
	subscriptions.GET("", protect, adminOnly, subscriptionController.GetAll(nil))
	subscriptions.GET("/count", protect, adminOnly, subscriptionController.GetCount(nil))
	subscriptions.GET("/:id", protect, adminOnly, subscriptionController.GetOne())
	subscriptions.PATCH("/:id", protect, adminOnly, subscriptionController.UpdateOne(subscriptionController.BindUpdates))
	subscriptions.DELETE("/:id", protect, adminOnly, subscriptionController.DeleteOne())

	v1.GET("/search", searchController.Search)
}
