package cmd

import (
	"log"

	"armory/core/bungie"
	"armory/core/config"
	"armory/core/database"
	"armory/core/logger"
	"armory/core/storage"
	"armory/feature/weapons"
	"armory/feature/weapons/auxdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncForce    bool
	syncClearAux bool
)

// syncCmd runs one sync cycle from the command line, without the HTTP server.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one manifest sync cycle",
	Long: `Checks the manifest version token and, when it changed, downloads the
definition tables, rebuilds the weapon records and swaps them in atomically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Bungie.IsValidLanguage() {
			logg.Fatal("Unsupported manifest language", zap.String("language", cfg.Bungie.Language))
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		if err := storage.EnsureBucket(cmd.Context(), store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}

		client := bungie.NewClient(cfg.Bungie)
		repo := weapons.NewRepository(db)
		if err := repo.Migrate(); err != nil {
			return err
		}

		aux := auxdata.NewLoader(client, store, cfg.Storage.Bucket, cfg.Bungie.AuxBaseURL, logg)
		svc := weapons.NewService(repo, client, aux, store, cfg.Storage.Bucket, cfg.Bungie.Language, logg)

		ctx := cmd.Context()
		if syncClearAux {
			if err := svc.ClearAuxCache(ctx); err != nil {
				logg.Warn("Auxiliary cache clear failed", zap.Error(err))
			}
		}

		var result *weapons.SyncResult
		if syncForce {
			result, err = svc.ForceRefresh(ctx)
		} else {
			result, err = svc.CheckAndSync(ctx)
		}
		if err != nil {
			return err
		}

		logg.Info("Sync finished",
			zap.String("version", result.Version),
			zap.Int("weapons", result.WeaponCount),
			zap.Bool("cached", result.Cached))
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "clear the stored version token and re-download")
	syncCmd.Flags().BoolVar(&syncClearAux, "clear-aux", false, "drop the cached auxiliary data blob first")
	RootCmd.AddCommand(syncCmd)
}
