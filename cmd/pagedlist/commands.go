package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/nrfta/pagedlist"
	"github.com/nrfta/pagedlist/internal/logging"
	"github.com/nrfta/pagedlist/internal/models"
	"github.com/nrfta/pagedlist/source"
	"github.com/nrfta/pagedlist/sqlboiler"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pagedlist",
		Short:         "Scroll through a paginated list in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	bindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newRunCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Render the list frame by frame until its end",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			logger := logging.Setup(logging.Config{
				Level:  cfg.LogLevel,
				Pretty: cfg.Pretty,
				Output: cmd.ErrOrStderr(),
			})
			opts := []pagedlist.Option{
				pagedlist.WithName(cfg.Source),
				pagedlist.WithLogger(logger),
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if cfg.Source == "memory" {
				src := source.New(memoryFetcher(cfg), source.WithPageSize(cfg.PageSize))
				ctl, err := source.NewController(src, opts...)
				if err != nil {
					return err
				}
				return scroll(ctx, ctl, out, cfg, func(s string) string { return s })
			}

			db, err := sql.Open("postgres", cfg.DSN)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			src := source.New(itemFetcher(db),
				source.WithPageSize(cfg.PageSize),
				source.WithOrderBy(source.OrderBy{Column: models.ItemColumns.Position}),
			)
			ctl, err := source.NewController(src, opts...)
			if err != nil {
				return err
			}
			return scroll(ctx, ctl, out, cfg, formatItem)
		},
	}
}

func newSeedCommand() *cobra.Command {
	var truncate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create and fill the items table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.DSN == "" {
				return fmt.Errorf("seed requires --dsn")
			}

			logger := logging.Setup(logging.Config{
				Level:  cfg.LogLevel,
				Pretty: cfg.Pretty,
				Output: cmd.ErrOrStderr(),
			})

			db, err := sql.Open("postgres", cfg.DSN)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			ctx := cmd.Context()
			if err := models.CreateSchema(ctx, db); err != nil {
				return err
			}
			if truncate {
				if err := models.TruncateItems(ctx, db); err != nil {
					return err
				}
			}

			items, err := models.SeedItems(ctx, db, cfg.Total)
			if err != nil {
				return err
			}

			logger.Info().Int("items", len(items)).Msg("Seeded items table")
			return nil
		},
	}

	cmd.Flags().BoolVar(&truncate, "truncate", false, "empty the table before seeding")
	return cmd
}

func memoryFetcher(cfg *Config) *source.SliceFetcher[string] {
	items := make([]string, cfg.Total)
	for i := range items {
		items[i] = fmt.Sprintf("Item %d", i+1)
	}

	fetcher := source.NewSliceFetcher(items)
	if cfg.FailPage > 0 {
		pageSize := source.NewPageConfig().EffectiveSize(cfg.PageSize)
		fetcher.FailAt(source.Offset(cfg.FailPage, pageSize), 1)
	}
	return fetcher
}

func itemFetcher(db *sql.DB) source.Fetcher[*models.Item] {
	return sqlboiler.NewFetcher(
		func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Item, error) {
			return models.Items(mods...).All(ctx, db)
		},
		func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
			return models.Items(mods...).Count(ctx, db)
		},
		sqlboiler.OffsetToQueryMods,
	)
}

func formatItem(item *models.Item) string {
	if item.Subtitle.Valid {
		return fmt.Sprintf("#%d %s (%s)", item.Position, item.Title, item.Subtitle.String)
	}
	return fmt.Sprintf("#%d %s", item.Position, item.Title)
}
