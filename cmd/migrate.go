package cmd

import (
	"fmt"

	"site-admin/pkg/database"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending database migrations",
		Action: func(c *cli.Context) error {
			return withMigrator(c, func(m *database.Migrator, log *zap.Logger) error {
				applied, err := m.Up(c.Context)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					log.Info("No new migrations to apply")
				}
				return nil
			})
		},
		Subcommands: []*cli.Command{
			{
				Name:  "rollback",
				Usage: "roll back the last migration group",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *database.Migrator, log *zap.Logger) error {
						reverted, err := m.Down(c.Context)
						if err != nil {
							return err
						}
						if len(reverted) == 0 {
							log.Info("No migration groups to roll back")
						}
						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "list pending migrations",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *database.Migrator, _ *zap.Logger) error {
						pending, err := m.Pending(c.Context)
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "pending migrations: %d\n", len(pending))
						for _, name := range pending {
							fmt.Fprintln(c.App.Writer, "  "+name)
						}
						return nil
					})
				},
			},
		},
	}
}

func withMigrator(c *cli.Context, fn func(*database.Migrator, *zap.Logger) error) error {
	rt, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer rt.Close()

	m := database.NewMigrator(rt.db, rt.logger)
	defer m.Close()

	return fn(m, rt.logger)
}
