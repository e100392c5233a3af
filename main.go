package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/km-arc/jerkface/framework/app"
	"github.com/km-arc/jerkface/framework/config"
	"github.com/km-arc/jerkface/framework/console"
	"github.com/km-arc/jerkface/framework/container"
	"github.com/km-arc/jerkface/framework/manifest"
)

// ── Demo domain ──────────────────────────────────────────────────────────────

type Database struct {
	DSN string
}

type UserRepository struct {
	Table  string
	DB     *Database
	Logger *zap.Logger
}

type Mailer struct {
	From   string
	Logger *zap.Logger
}

var (
	service    = container.NewType("Service", nil)
	repository = service.Derive("Repository", nil)

	databaseType = container.NewType("Database", func(args ...any) (any, error) {
		deps := args[0].(container.Deps)
		return &Database{DSN: deps["dsn"].(string)}, nil
	})

	userRepositoryType = repository.Derive("UserRepository", func(args ...any) (any, error) {
		deps := args[1].(container.Deps)
		return &UserRepository{
			Table:  args[0].(string),
			DB:     deps["db"].(*Database),
			Logger: deps["logger"].(*zap.Logger),
		}, nil
	})

	mailerType = service.Derive("Mailer", func(args ...any) (any, error) {
		deps := args[0].(container.Deps)
		return &Mailer{
			From:   deps["from"].(string),
			Logger: deps["logger"].(*zap.Logger),
		}, nil
	})
)

func catalog() manifest.Catalog {
	return manifest.Catalog{}.Register(service, repository, databaseType, userRepositoryType, mailerType)
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func register(a *app.Application) error {
	if err := a.Bind("dsn", config.Get("DATABASE_URL", "postgres://localhost/jerkface")); err != nil {
		return err
	}
	if err := a.Bind("mail.from", config.Get("MAIL_FROM", "noreply@localhost")); err != nil {
		return err
	}

	// Every Service gets the logger, every Repository the database.
	if err := a.BindAll(service, map[string]string{"logger": "logger"}); err != nil {
		return err
	}
	if err := a.BindAll(repository, map[string]string{"db": "db"}); err != nil {
		return err
	}

	if err := a.Bind("db", databaseType, container.WithDependency("dsn", "dsn")); err != nil {
		return err
	}
	if err := a.Bind("users", userRepositoryType, container.WithParams("users")); err != nil {
		return err
	}
	return a.Bind("mailer", mailerType,
		container.WithDependency("from", "mail.from"),
		container.WithLifetime(container.Transient))
}

func run() error {
	cfg := config.Load()

	application, err := app.New(cfg, app.WithCatalog(catalog()))
	if err != nil {
		return err
	}
	defer application.Close()

	if err := register(application); err != nil {
		return err
	}
	if err := application.Boot(); err != nil {
		return err
	}

	users, err := container.Get[*UserRepository](application.Container, "users")
	if err != nil {
		return err
	}
	fmt.Printf("users → table %q on %s\n\n", users.Table, users.DB.DSN)

	console.Graph(os.Stdout, application.Container)
	fmt.Println()
	console.Extensions(os.Stdout, application.Container)

	if cfg.Inspect.Addr == "" {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return application.Run(ctx)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
