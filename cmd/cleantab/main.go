package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"cleantab/adapters/ingest"
	"cleantab/internal"
	"cleantab/internal/config"
	"cleantab/internal/profiling"
	"cleantab/internal/report"
)

type result struct {
	name    string
	profile *profiling.TableProfile
}

func main() {
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config: %v", err)
		os.Exit(1)
	}

	maxCat := flag.Int("max-cat", cfg.Profile.MaxCategories,
		"max distinct values for a column to be suggested as categorical")
	ratio := flag.Float64("ratio", cfg.Profile.MinMissingRatio,
		"min missing-value ratio at which clean drops a column")
	doClean := flag.Bool("clean", false, "drop high-missing columns, duplicate rows and rows with missing values")
	keepRows := flag.Bool("keep-missing-rows", false, "with -clean, keep rows that contain missing values")
	doOptimize := flag.Bool("optimize", false, "apply storage casts and categorical tagging")
	out := flag.String("out", "", "write the resulting table as CSV (single input only)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cleantab [flags] file.csv [file2.xlsx ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *out != "" && len(files) > 1 {
		logger.Error("-out needs exactly one input file")
		os.Exit(2)
	}

	// Profile every input concurrently; each profile owns its own table.
	results := make([]result, len(files))
	var g errgroup.Group
	for i, path := range files {
		g.Go(func() error {
			tbl, err := ingest.NewDataReader(path).Read()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			p, err := profiling.New(tbl, *maxCat)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = result{name: path, profile: p}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	for _, res := range results {
		if *doClean {
			opts := profiling.DefaultCleanOptions()
			opts.MinMissingRatio = *ratio
			opts.DropMissingRows = !*keepRows
			if err := res.profile.Clean(opts); err != nil {
				logger.Error("%s: clean: %v", res.name, err)
				os.Exit(1)
			}
			logger.Info("%s: cleaned, %d rows x %d columns remain",
				res.name, res.profile.Table().NumRows(), res.profile.Table().NumCols())
		}

		if *doOptimize {
			optRes, err := res.profile.Optimize()
			if err != nil {
				logger.Error("%s: optimize: %v", res.name, err)
				os.Exit(1)
			}
			if w := optRes.Warning(); w != nil {
				logger.Warn("%s: %v", res.name, w)
			}
			logger.Info("%s: %d columns cast, %d tagged categorical",
				res.name, len(optRes.Casts), len(optRes.Tagged))
		}

		fmt.Printf("# Profile: %s\n\n", res.name)
		fmt.Print(report.Render(res.profile.Table(), res.profile.Snapshot()))
	}

	if *out != "" {
		if err := ingest.WriteCSV(results[0].profile.Table(), *out); err != nil {
			logger.Error("write %s: %v", *out, err)
			os.Exit(1)
		}
		logger.Info("wrote %s", *out)
	}
}
