package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"bottleshop/cmd"
	apphttp "bottleshop/internal/adapters/in/http"
	"bottleshop/internal/adapters/out/postgres"
	"bottleshop/internal/adapters/out/postgres/accountrepo"
	"bottleshop/internal/adapters/out/postgres/orderrepo"
	"bottleshop/internal/adapters/out/postgres/productrepo"
	"bottleshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		JWTTTL:        durationEnv("JWT_TTL", 24*time.Hour),
		SMTPHost:      goDotEnvVariable("SMTP_HOST"),
		SMTPPort:      intEnv("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      goDotEnvVariable("SMTP_FROM"),
		UploadDir:     goDotEnvVariable("UPLOAD_DIR"),
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

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %s", key, raw)
	}
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %s", key, raw)
	}
	return value
}

func mustConnectDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&postgres.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateAssignCouriersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, config cmd.Config) {
	files, err := apphttp.NewFileStore(config.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload dir: %v", err)
	}

	server := apphttp.NewServer(apphttp.ServerParams{
		RegisterAccountHandler:  app.CreateRegisterAccountCommandHandler(),
		VerifyAccountHandler:    app.CreateVerifyAccountCommandHandler(),
		SendOtpHandler:          app.CreateSendOtpCommandHandler(),
		VerifyOtpHandler:        app.CreateVerifyOtpCommandHandler(),
		CreateProductHandler:    app.CreateCreateProductCommandHandler(),
		UpdateProductHandler:    app.CreateUpdateProductCommandHandler(),
		PlaceOrderHandler:       app.CreatePlaceOrderCommandHandler(),
		VendorDecisionHandler:   app.CreateVendorDecisionCommandHandler(),
		HandOverItemHandler:     app.CreateHandOverItemCommandHandler(),
		CourierDecisionHandler:  app.CreateCourierDecisionCommandHandler(),
		CompleteDeliveryHandler: app.CreateCompleteDeliveryCommandHandler(),
		UpdatePaymentHandler:    app.CreateUpdatePaymentCommandHandler(),

		GetProductsHandler:        app.CreateGetProductsQueryHandler(),
		GetCustomerOrdersHandler:  app.CreateGetCustomerOrdersQueryHandler(),
		GetVendorOrdersHandler:    app.CreateGetVendorOrdersQueryHandler(),
		GetCourierOrdersHandler:   app.CreateGetCourierOrdersQueryHandler(),
		GetPendingAccountsHandler: app.CreateGetPendingAccountsQueryHandler(),

		Accounts: app.CreateAccountFinder(),
		Tokens:   apphttp.NewTokenIssuer(config.JWTSecret, config.JWTTTL),
		Files:    files,
	})

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
