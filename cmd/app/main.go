package main

import (
	"fmt"
	"os"
	"strings"

	"heim/cmd"
	httpin "heim/internal/adapters/in/http"
	"heim/internal/adapters/out/postgres/customerrepo"
	"heim/internal/adapters/out/postgres/paymentrepo"
	"heim/internal/adapters/out/postgres/transactionrepo"
	"heim/internal/adapters/out/postgres/vehiclerepo"
	"heim/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	appLogger, err := logger.New(configs.LogMode)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer appLogger.Sync()

	gormDB, err := openDatabase(configs)
	if err != nil {
		appLogger.Fatal("failed to connect to database", "error", err)
	}

	if err = migrateDatabase(gormDB); err != nil {
		appLogger.Fatal("failed to migrate database", "error", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, appLogger)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBDriver:   goDotEnvVariable("DB_DRIVER"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		SQLitePath: goDotEnvVariable("SQLITE_PATH"),
		LogMode:    goDotEnvVariable("LOG_MODE"),
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

// openDatabase connects to the configured database. TranslateError is
// required: the repositories classify driver errors through gorm's
// translated sentinels.
func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}

	switch configs.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(sqliteDSN(configs.SQLitePath)), gormConfig)
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			configs.DBHost, configs.DBPort, configs.DBUser,
			configs.DBPassword, configs.DBName, configs.DBSslMode)
		return gorm.Open(postgres.Open(dsn), gormConfig)
	}
}

// sqliteDSN turns a database path into a DSN with foreign key
// enforcement enabled. SQLite leaves it off unless the DSN asks for
// it, and the repositories rely on constraint violations surfacing as
// errors.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// migrateDatabase creates the schema. Referencing tables migrate after
// the tables they reference.
func migrateDatabase(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
		&vehiclerepo.VehicleDTO{},
		&transactionrepo.TransactionDTO{},
		&paymentrepo.PaymentDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(app.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
