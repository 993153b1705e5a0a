package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ordering/cmd"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/categoryrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/adapters/out/postgres/storerepo"
	"ordering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultBacklogThreshold = 10 * time.Minute

func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateGetPendingBacklogQueryHandler(),
		backlogThreshold(configs),
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		PendingBacklogThresholdMin: goDotEnvVariable("PENDING_BACKLOG_THRESHOLD_MIN"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&storerepo.StoreDTO{},
		&productrepo.ProductDTO{},
		&categoryrepo.CategoryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func backlogThreshold(configs cmd.Config) time.Duration {
	if configs.PendingBacklogThresholdMin == "" {
		return defaultBacklogThreshold
	}

	minutes, err := strconv.Atoi(configs.PendingBacklogThresholdMin)
	if err != nil || minutes <= 0 {
		log.Warnf("Invalid PENDING_BACKLOG_THRESHOLD_MIN %q, using default",
			configs.PendingBacklogThresholdMin)
		return defaultBacklogThreshold
	}

	return time.Duration(minutes) * time.Minute
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderDetailQueryHandler(),
		app.CreateListStoreOrdersQueryHandler(),
		app.CreateListCustomerOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
