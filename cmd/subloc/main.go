// Command subloc validates subtitle catalogs and reports translation
// coverage gaps. Build tooling runs it as a pre-release gate: a broken
// catalog or (with -strict) a coverage gap fails the build.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"subloc/internal/application"
	"subloc/internal/config"
	"subloc/internal/infrastructure/database"
	"subloc/internal/infrastructure/source"
	"subloc/internal/ports/output"
)

func main() {
	coverageRef := flag.String("coverage", "", "reference locale to diff every other locale against")
	strict := flag.Bool("strict", false, "exit non-zero when the coverage report finds missing keys")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), logger, *coverageRef, *strict); err != nil {
		logger.Fatal("subloc failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, coverageRef string, strict bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fallbacks, err := cfg.Fallbacks()
	if err != nil {
		return err
	}

	var src output.CatalogSource
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		src = database.NewCatalogSource(pool)
	} else {
		src = source.NewDir(cfg.LocalesDir)
	}

	registry, err := application.NewRegistry(ctx, src, fallbacks, logger, nil)
	if err != nil {
		return err
	}
	defer registry.Close()

	for _, catalog := range registry.Catalogs() {
		fmt.Printf("%s: %d entries\n", catalog.Locale(), catalog.Len())
	}

	if coverageRef == "" {
		return nil
	}

	report, err := registry.CoverageReport(coverageRef)
	if err != nil {
		return err
	}

	gaps := 0
	for _, loc := range registry.Locales() {
		missing, ok := report[loc]
		if !ok {
			continue
		}
		if len(missing) == 0 {
			fmt.Printf("%s: complete\n", loc)
			continue
		}
		gaps += len(missing)
		fmt.Printf("%s: missing %d key(s)\n", loc, len(missing))
		for _, key := range missing {
			fmt.Printf("  %s\n", key)
		}
	}

	if strict && gaps > 0 {
		return fmt.Errorf("coverage gate: %d missing key(s) against reference %q", gaps, coverageRef)
	}
	return nil
}
