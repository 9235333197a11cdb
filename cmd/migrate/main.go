package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"therapist-management-saas/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/ with the atlas CLI, which must be on PATH.
func main() {
	dir := flag.String("dir", "./migrations", "migration directory")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, *dir, cfg.DB.BuildDSN(), *dryRun); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dir, dsn string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		slog.Info("マイグレーションを適用しました", "file", f.Name, "dry_run", dryRun)
	}
	slog.Info("マイグレーション完了", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
