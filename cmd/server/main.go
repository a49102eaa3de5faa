package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/lucavs/blog-api/configs"
	"github.com/lucavs/blog-api/internal/api/handlers"
	"github.com/lucavs/blog-api/internal/api/middleware"
	job "github.com/lucavs/blog-api/internal/jobs"
	"github.com/lucavs/blog-api/internal/queue"
	"github.com/lucavs/blog-api/internal/repository"
	"github.com/lucavs/blog-api/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

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
	videoRepo := repository.NewVideoRepository(db)
	loginRepo := repository.NewPersistentLoginRepository(db)

	storageService := service.NewStorageService(*cfg)
	transcoderService := service.NewTranscoderService(*cfg)
	enqueuer := queue.NewEnqueuer(client)
	authService := service.NewAuthService(*cfg, loginRepo)
	mediaService := service.NewMediaService(*cfg, storageService)
	videoService := service.NewVideoService(*cfg, videoRepo, storageService, enqueuer)
	postService := service.NewPostService(*cfg, postRepo, mediaService, videoService)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, authService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/login", auth.Login)
	app.Post("/logout", auth.Logout)

	// Local fallback images land here when the object store is down.
	app.Static("/uploads", cfg.UploadDir)

	post := handlers.NewPostHandler(postService)
	video := handlers.NewVideoHandler(videoService)

	api := app.Group("/api")
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/filter", post.FilterPosts)
	api.Get("/posts/:id", post.GetPost)
	api.Get("/videos/:id", video.GetVideo)

	adminOnly := authMiddleware.AdminRequired()
	api.Post("/posts", adminOnly, post.CreatePost)
	api.Put("/posts/:id", adminOnly, post.UpdatePost)
	api.Delete("/posts/:id", adminOnly, post.DeletePost)
	api.Post("/videos", adminOnly, video.UploadVideo)

	// cron jobs
	loginCleanupJob := job.NewLoginCleanupJob(loginRepo)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", loginCleanupJob.PurgeExpired)
	c.Start()

	// queue worker
	worker := queue.NewWorker(*cfg, videoRepo, storageService, transcoderService)

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			// One transcode at a time per process; the queue is the
			// serialization point for video processing.
			Concurrency: 1,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeProcessVideo, worker.HandleProcessVideoTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
