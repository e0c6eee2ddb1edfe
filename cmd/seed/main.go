package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/totegamma/fellowship/core"
	"github.com/totegamma/fellowship/x/seed"
	"github.com/totegamma/fellowship/x/util"
)

var (
	configPath string
	dsn        string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the fellowship database and load fixture data",
	Long: `seed drops the characters and races tables, recreates them and inserts
the fixture races and characters together with their fixed associations.

All existing data is lost.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := util.DefaultConfig()
		if err := config.Load(configPath); err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		if dsn != "" {
			config.Server.Dsn = dsn
		}
		if config.Server.Dsn == "" {
			return errors.New("database dsn is required (--dsn, FELLOWSHIP_DSN or config file)")
		}

		db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			return errors.Wrap(err, "failed to connect database")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to connect database")
		}
		defer sqlDB.Close()

		if err := seed.Run(cmd.Context(), db); err != nil {
			return err
		}

		// cached counts are stale after a reset; the api recounts on the next miss
		if config.Server.MemcachedAddr != "" {
			mc := memcache.New(config.Server.MemcachedAddr)
			defer mc.Close()
			for _, key := range []string{core.CharacterCountCacheKey, core.RaceCountCacheKey} {
				if err := mc.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
					slog.Warn("failed to invalidate cached count", slog.String("key", key), slog.String("error", err.Error()))
				}
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "database populated")
		return nil
	},
}

func init() {
	defaultConfig := os.Getenv("FELLOWSHIP_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "/etc/fellowship/config.yaml"
	}
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfig, "Path to the configuration file")
	rootCmd.Flags().StringVar(&dsn, "dsn", "", "Database connection string (overrides config)")
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
