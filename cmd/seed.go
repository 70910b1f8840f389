package cmd

import (
	"fmt"
	"time"

	"site-admin/internal/data/repository"
	"site-admin/internal/seed"

	"github.com/urfave/cli/v2"
)

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert an admin with a session token, fake users and default settings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "admin-email", Value: "admin@example.com"},
			&cli.StringFlag{Name: "admin-password", Value: "password"},
			&cli.IntFlag{Name: "users", Value: 25, Usage: "number of fake users"},
			&cli.DurationFlag{Name: "session-ttl", Value: 24 * time.Hour},
			&cli.Uint64Flag{Name: "seed", Usage: "faker seed, 0 for random"},
		},
		Action: func(c *cli.Context) error {
			rt, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer rt.Close()

			seeder := seed.NewSeeder(repository.NewRepository(rt.db, rt.logger), c.Uint64("seed"), rt.logger)
			res, err := seeder.Run(c.Context, seed.Options{
				AdminEmail:    c.String("admin-email"),
				AdminPassword: c.String("admin-password"),
				Users:         c.Int("users"),
				SessionTTL:    c.Duration("session-ttl"),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "admin %s token: %s\n", res.AdminID, res.AdminToken)
			return nil
		},
	}
}
