package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	config "github.com/crosspostr/crosspostr/configs"
	"github.com/crosspostr/crosspostr/internal/api/handlers"
	"github.com/crosspostr/crosspostr/internal/repository"
	"github.com/crosspostr/crosspostr/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	db := client.Database(cfg.DatabaseName)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postRepo := repository.NewPostRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	linkedinUserRepo := repository.NewLinkedinUserRepository(db)
	tiktokVideoRepo := repository.NewTiktokVideoRepository(db)
	statusCheckRepo := repository.NewStatusCheckRepository(db)

	postService := service.NewPostService(postRepo)
	accountService := service.NewSocialAccountService(*cfg, socialAccountRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, postRepo, tiktokVideoRepo)
	statusService := service.NewStatusCheckService(statusCheckRepo)
	twitterService := service.NewTwitterService(cfg.Twitter)
	linkedinService := service.NewLinkedinService(*cfg, linkedinUserRepo)
	tiktokService := service.NewTiktokService(cfg.Tiktok, tiktokVideoRepo)
	publishService := service.NewPublishService(postRepo, analyticsRepo, twitterService, linkedinService, tiktokService)

	api := app.Group("/api")

	status := handlers.NewStatusHandler(statusService)
	api.Get("/", status.Root)
	api.Post("/status", status.Create)
	api.Get("/status", status.List)

	post := handlers.NewPostHandler(postService, publishService)
	api.Post("/posts", post.Create)
	api.Get("/posts", post.List)
	// calendar must be registered before the :id route
	api.Get("/posts/calendar", post.Calendar)
	api.Get("/posts/:id", post.Get)
	api.Put("/posts/:id", post.Update)
	api.Delete("/posts/:id", post.Delete)
	api.Post("/posts/:id/publish", post.Publish)

	account := handlers.NewAccountHandler(accountService)
	api.Post("/social-accounts", account.Create)
	api.Get("/social-accounts", account.List)
	api.Delete("/social-accounts/:id", account.Delete)

	twitter := handlers.NewTwitterHandler(twitterService)
	api.Post("/twitter/post", twitter.DirectPost)
	api.Get("/twitter/analytics/:id", twitter.Analytics)

	linkedin := handlers.NewLinkedinHandler(linkedinService)
	api.Get("/auth/linkedin/login", linkedin.Login)
	api.Get("/auth/linkedin/callback", linkedin.Callback)
	api.Get("/linkedin/profile", linkedin.Profile)
	api.Post("/linkedin/post", linkedin.DirectPost)

	tiktok := handlers.NewTiktokHandler(tiktokService)
	api.Post("/tiktok/upload", tiktok.Upload)
	api.Post("/tiktok/publish/:video_id", tiktok.Publish)
	api.Get("/tiktok/analytics/:video_id", tiktok.Analytics)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Post("/analytics", analytics.Create)
	api.Get("/analytics/dashboard", analytics.Dashboard)
	api.Get("/analytics/post/:post_id", analytics.ForPost)

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, client)
}

func closeDB(client *mongo.Client) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, client *mongo.Client) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(client)
	log.Println("Server shutdown complete.")
}
