package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"wingmann/internal/app/server/api"
	"wingmann/internal/config"
	"wingmann/internal/domain/export"
	"wingmann/internal/domain/submission"
	"wingmann/internal/infrastructure/blob"
	"wingmann/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var rootCmd = &cobra.Command{
	Use:           "wingmann",
	Short:         "Wingmann - сервер приема анкет и выгрузки CSV/XLSX",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Пересобрать файл выгрузки из канонических данных",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.Context())
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", submission.FormatCSV, "формат выгрузки: csv или xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "путь выходного файла (по умолчанию имя артефакта)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func runServe() error {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if cfg.Env == config.EnvProd && cfg.Download.Key == config.DefaultDownloadKey {
		return fmt.Errorf("DOWNLOAD_KEY not set or using default value, refusing to start in prod")
	}

	ctx := context.Background()

	blobs, err := blob.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init blob store: %w", err)
	}

	store := submission.NewStore(blobs, log)
	generator := export.NewGenerator(blobs, log)
	service := submission.NewService(store, generator, log)

	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("init submission store: %w", err)
	}
	// Bring the derived files in line with whatever data is already there.
	if err := generator.Regenerate(ctx, store.ReadAll(ctx)); err != nil {
		log.Error("failed to initialize export files", "error", err)
	}

	mux := api.New(service, cfg, log)

	log.Info("server running",
		"address", cfg.Server.RunAddress,
		"storage", cfg.Storage.Backend,
		"download_key_set", cfg.Download.Key != config.DefaultDownloadKey,
	)

	return http.ListenAndServe(cfg.Server.RunAddress, mux)
}

func runExport(ctx context.Context) error {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	blobs, err := blob.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init blob store: %w", err)
	}

	store := submission.NewStore(blobs, log)
	generator := export.NewGenerator(blobs, log)

	records := store.ReadAll(ctx)
	data, err := generator.Build(records, exportFormat)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = export.CSVBlobName
		if exportFormat == submission.FormatXLSX {
			out = export.XLSXBlobName
		}
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	log.Info("export written", "format", exportFormat, "path", out, "records", len(records))
	return nil
}
