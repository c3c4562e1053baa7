package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ad-hub/config"
	"ad-hub/database"
	"ad-hub/logger"
	"ad-hub/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func initLogger() {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	initLogger()
	defer logger.CloseLogger()

	dbConfig := config.GetDatabaseConfig()
	db, err := database.InitDB(dbConfig)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			logger.Warning("close database err:", err)
		}
	}()

	server := web.NewServer(db, dbConfig)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	logger.Infof("received %v, shutting down", sig)

	if err := server.Stop(); err != nil {
		logger.Warning("stop server err:", err)
	}
}

func runMigration() {
	dbConfig := config.GetDatabaseConfig()
	db, err := database.InitDB(dbConfig)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.CloseDB(db); err != nil {
		log.Println("close database err:", err)
	}
	log.Println("migration complete")
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ad-hub",
		Short: "Classifieds backend: users, ads, comments",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Start the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and exit",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
