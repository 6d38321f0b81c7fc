package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundry/cmd"
	apihttp "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres/migrations"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "laundry",
		Usage: "laundry marketplace backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file loaded before reading the environment",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			issueTokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API and the background jobs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "apply pending migrations before serving (postgres only)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, logger, err := setup(c)
			if err != nil {
				return err
			}
			if c.Bool("migrate") && cfg.StorageDriver == cmd.StoragePostgres {
				version, err := migrations.Up(cfg.DSN())
				if err != nil {
					return err
				}
				logger.Info("migrations applied", "version", version)
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg cmd.Config, logger *slog.Logger) error {
	root, err := cmd.NewCompositionRoot(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := root.Close(); err != nil {
			logger.Error("failed to close connections", "error", err)
		}
	}()

	e, err := root.CreateEcho()
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.WARN)

	jobManager := root.CreateJobManager()
	jobManager.RunAllOnce(ctx)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", cfg.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the postgres schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply pending migrations",
				Action: func(c *cli.Context) error {
					cfg, logger, err := setup(c)
					if err != nil {
						return err
					}
					version, err := migrations.Up(cfg.DSN())
					if err != nil {
						return err
					}
					logger.Info("migrations applied", "version", version)
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "roll back every migration",
				Action: func(c *cli.Context) error {
					cfg, logger, err := setup(c)
					if err != nil {
						return err
					}
					if err = migrations.Down(cfg.DSN()); err != nil {
						return err
					}
					logger.Info("migrations rolled back")
					return nil
				},
			},
		},
	}
}

func issueTokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "issue-token",
		Usage: "print a signed bearer token for local testing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "user-id",
				Usage: "user id to embed, a random one when empty",
			},
			&cli.StringFlag{
				Name:     "role",
				Usage:    "customer or shopOwner",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "token lifetime, JWT_TTL when zero",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, _, err := setup(c)
			if err != nil {
				return err
			}

			userID := kernel.NewUUID()
			if raw := c.String("user-id"); raw != "" {
				if userID, err = kernel.ParseID("user-id", raw); err != nil {
					return err
				}
			}
			role, err := kernel.RoleFromString(c.String("role"))
			if err != nil {
				return err
			}
			requester, err := kernel.NewRequester(userID, role)
			if err != nil {
				return err
			}

			ttl := cfg.JWTTTL
			if c.Duration("ttl") > 0 {
				ttl = c.Duration("ttl")
			}
			auth, err := apihttp.NewAuthenticator(cfg.JWTSecret, ttl)
			if err != nil {
				return err
			}
			token, err := auth.IssueToken(requester)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, token)
			return err
		},
	}
}

// setup loads the configuration and installs the JSON logger as the default.
func setup(c *cli.Context) (cmd.Config, *slog.Logger, error) {
	cfg, err := cmd.LoadConfig(c.String("env-file"))
	if err != nil {
		return cmd.Config{}, nil, err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return cmd.Config{}, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
