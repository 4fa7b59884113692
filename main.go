package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopapi/internal/handlers"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/internal/services"
	"shopapi/pkg/events"
)

// App bundles the HTTP application with the resources that need teardown.
type App struct {
	Fiber     *fiber.App
	DB        *gorm.DB
	History   *services.HistoryLogger
	Publisher *events.Publisher
}

// NewApp builds the application from viper configuration: database, event
// publisher, repositories, services, handlers and routes.
func NewApp() (*App, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "shopapi.db")
	viper.SetDefault("JWT_SECRET", "insecure-dev-secret")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables the event publisher
	viper.AutomaticEnv()

	db, err := openDatabase(viper.GetString("DATABASE_DSN"))
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.HistoryAction{},
		&models.User{},
	)
	if err != nil {
		return nil, err
	}

	// The event side channel is optional: without a broker URL the order
	// service runs with a nil publisher and skips publishing.
	var publisher *events.Publisher
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		publisher, err = events.NewPublisher(events.Config{URL: url})
		if err != nil {
			return nil, err
		}
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	historyRepo := repositories.NewGORMHistoryRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	historyLogger := services.NewHistoryLogger(historyRepo)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	catalogService := services.NewCatalogService(categoryRepo, productRepo, historyLogger)
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, cartRepo, publisher)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Ecommerce API is running"})
	})

	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewCatalogHandler(catalogService).RegisterRoutes(app)
	handlers.NewCartHandler(cartService).RegisterRoutes(app)
	handlers.NewOrderHandler(orderService).RegisterRoutes(app)

	return &App{
		Fiber:     app,
		DB:        db,
		History:   historyLogger,
		Publisher: publisher,
	}, nil
}

// Close drains the history logger and closes the event publisher.
func (a *App) Close() {
	a.History.Close()
	if err := a.Publisher.Close(); err != nil {
		log.Printf("Error closing event publisher: %v", err)
	}
}

// openDatabase opens postgres for postgres-style DSNs and sqlite otherwise.
func openDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func main() {
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Fiber.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Fiber.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
