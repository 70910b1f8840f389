package cmd

import (
	"fmt"
	"log"

	"site-admin/pkg/database"
	"site-admin/pkg/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// NewApp returns the command line application: serve, migrate and seed.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "site-admin",
		Usage: "site administration backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Value:   ".env",
				Usage:   "path to the .env config file (optional)",
				EnvVars: []string{"ENV_FILE"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
		},
		DefaultCommand: "serve",
	}
}

// runtime is what every command needs before doing its work.
type runtime struct {
	config *utils.Config
	logger *zap.Logger
	db     *database.DB
}

func (rt *runtime) Close() {
	if rt.db != nil {
		rt.db.Close()
	}
	rt.logger.Sync()
}

func bootstrap(c *cli.Context) (*runtime, error) {
	config, err := utils.LoadConfig(c.String("env"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using zap production logger.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(c.Context, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		logger.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("database", config.Database.Name),
	)

	return &runtime{config: config, logger: logger, db: db}, nil
}
