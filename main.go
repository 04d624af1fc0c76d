package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/editorial-backend/api"
	"github.com/rpupo63/editorial-backend/config"
	"github.com/rpupo63/editorial-backend/database"
	"github.com/rpupo63/editorial-backend/models"
	"github.com/rpupo63/editorial-backend/seed"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	if config.GetBool(c, "LOG_JSON", false) {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Msg("Initializing app...")

	connCfg, err := connConfig(c)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid database configuration")
	}
	log.Info().Str("dbType", connCfg.Type).Bool("replica", connCfg.ReplicaDSN != "").Msg("connecting to database")

	db, err := database.Open(connCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating query helpers...")
		if err := models.GenerateQueries(db, config.GetString(c, "GENERATE_OUT_PATH", "./generated")); err != nil {
			log.Fatal().Err(err).Msg("query generation failed")
		}
		return
	}

	if err := models.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if report, err := models.ColumnMismatches(db); err != nil {
		log.Warn().Err(err).Msg("column report failed")
	} else {
		for table, columns := range report {
			log.Warn().Str("table", table).Strs("columns", columns).Msg("columns not mapped by models")
		}
	}

	store := database.New(db)

	if config.GetBool(c, "SEED", false) {
		if err := runSeed(store, config.GetString(c, "SEED_FILE", "")); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	if config.GetBool(c, "PRINT_ROUTES", false) {
		fmt.Println(api.RoutesDoc(api.NewRouter(store, c)))
		return
	}

	// Room for both senders, so Start can still deliver ErrServerClosed after main stops receiving
	errChannel := make(chan error, 2)

	server, err := api.NewServer(store)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// connConfig picks the primary and replica DSNs for DB_TYPE.
func connConfig(c map[string]string) (database.ConnConfig, error) {
	cfg := database.ConnConfig{
		Type:       config.GetString(c, "DB_TYPE", database.TypePostgres),
		ReplicaDSN: config.GetString(c, "DB_REPLICA_DSN", ""),
	}

	switch cfg.Type {
	case database.TypePostgres:
		cfg.DSN = config.GetString(c, "DATABASE_URL", "")
		if cfg.DSN == "" {
			cfg.DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				config.GetString(c, "DB_HOST", "localhost"),
				config.GetString(c, "DB_USER", "postgres"),
				config.GetString(c, "DB_PASSWORD", ""),
				config.GetString(c, "DB_NAME", "editorial"),
				config.GetString(c, "DB_PORT", "5432"),
				config.GetString(c, "DB_SSLMODE", "disable"),
			)
		}
	case database.TypeSQLite:
		cfg.DSN = config.GetString(c, "SQLITE_PATH", "editorial.db")
	default:
		return cfg, fmt.Errorf("unsupported DB_TYPE %q", cfg.Type)
	}

	return cfg, nil
}

func runSeed(store database.Storage, path string) error {
	doc, err := seed.Default()
	if path != "" {
		doc, err = seed.LoadFile(path)
	}
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	_, err = seed.Run(ctx, store, doc)
	return err
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
