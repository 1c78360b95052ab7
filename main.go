package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"inkwell/app/cache"
	"inkwell/app/config"
	applog "inkwell/app/log"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/routes"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog server. Configuration comes from INK_* environment variables.
`
	fmt.Println(helpText)
}

// serve runs the blog server until the process is killed.
func serve() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := applog.NewSugar(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		logger.Fatalw("failed to open database", "path", cfg.DBPath, "error", err)
	}
	defer db.Close()

	store := cache.New(cfg.RedisAddr, logger)

	if err := seedAdmin(db, cfg, logger); err != nil {
		logger.Fatalw("failed to seed admin user", "error", err)
	}

	router := routes.SetupRoutes(db, store, logger, "")

	logger.Infow("starting server", "addr", cfg.HTTPAddr, "env", cfg.Env)
	if err := routes.StartServer(cfg.HTTPAddr, router); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

// seedAdmin guarantees a default author exists so posts and comments
// created through the forms have a valid identity to attach to.
func seedAdmin(db *badger.DB, cfg *config.Config, logger *zap.SugaredLogger) error {
	userRepo := repositories.NewBadgerUserRepository(db)

	_, err := userRepo.GetByUsername(cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	admin := &models.User{
		Username:    cfg.AdminUsername,
		DisplayName: "Administrator",
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return err
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	logger.Infow("seeded admin user", "username", admin.Username, "id", admin.ID)
	return nil
}
