// Package batch walks a directory of flag SVGs, classifies each one,
// and persists the aggregate color artifact. Per-file failures are
// logged and skipped; the batch always covers the full file set.
package batch

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/flagcolors/internal/config"
	"github.com/codr1/flagcolors/internal/palette"
	"github.com/codr1/flagcolors/internal/svgscan"
)

// Record is one flag's classified colors, as written to the artifact.
// Built once per file and never mutated afterwards.
type Record struct {
	Colors        []palette.Color `json:"colors"`
	ColorCount    int             `json:"colorCount"`
	RawColorCount int             `json:"rawColorCount"`

	// Blue-ish triple count, kept for the report only.
	rawBlueCount int
}

// Summary counts the outcomes of one batch run.
type Summary struct {
	Processed int
	Skipped   int
	Empty     int
}

// Runner executes one classification batch.
type Runner struct {
	cfg   *config.Config
	runID string
}

func New(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg, runID: uuid.NewString()}
}

// RunID identifies this batch in logs and the report header.
func (r *Runner) RunID() string { return r.runID }

// flag files are named by their lowercase two-letter identifier
var flagIDRe = regexp.MustCompile(`^[a-z]{2}$`)

// Run classifies every flag file and returns the aggregate record map.
// Individual files that cannot be read or scanned are skipped; the only
// errors Run itself returns are context cancellation and the inability
// to list the input directory or write the artifact.
func (r *Runner) Run(ctx context.Context) (map[string]Record, Summary, error) {
	logger := log.Ctx(ctx).With().
		Str("component", "batch").
		Str("run_id", r.runID).
		Logger()

	ids, err := r.discover(logger)
	if err != nil {
		return nil, Summary{}, err
	}
	logger.Info().Int("files", len(ids)).Str("dir", r.cfg.Input.Dir).Msg("Starting classification batch")

	var (
		mu      sync.Mutex
		records = make(map[string]Record, len(ids))
		summary Summary
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Batch.Workers)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rec, err := r.classifyFile(id)
			if err != nil {
				logger.Warn().Err(err).Str("flag", id).Msg("Skipping flag file")
				mu.Lock()
				summary.Skipped++
				mu.Unlock()
				return nil
			}

			if rec.ColorCount == 0 {
				logger.Info().Str("flag", id).Msg("No parseable colors in flag")
			}

			mu.Lock()
			records[id] = rec
			summary.Processed++
			if rec.ColorCount == 0 {
				summary.Empty++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	if err := writeArtifact(r.cfg.Output.Artifact, records); err != nil {
		return nil, Summary{}, err
	}

	logger.Info().
		Int("processed", summary.Processed).
		Int("skipped", summary.Skipped).
		Int("empty", summary.Empty).
		Str("artifact", r.cfg.Output.Artifact).
		Msg("Batch complete")

	return records, summary, nil
}

// discover lists the two-letter flag identifiers present in the input
// directory, sorted for a stable processing order.
func (r *Runner) discover(logger zerolog.Logger) ([]string, error) {
	entries, err := os.ReadDir(r.cfg.Input.Dir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".svg") {
			continue
		}
		id := strings.TrimSuffix(name, ".svg")
		if !flagIDRe.MatchString(id) {
			logger.Debug().Str("file", name).Msg("Ignoring file without a flag identifier name")
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *Runner) classifyFile(id string) (Record, error) {
	path := filepath.Join(r.cfg.Input.Dir, id+".svg")
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}

	res, err := svgscan.Scan(string(data))
	if err != nil {
		return Record{}, err
	}

	return Record{
		Colors:        res.Colors,
		ColorCount:    len(res.Colors),
		RawColorCount: res.RawCount,
		rawBlueCount:  len(res.Blues),
	}, nil
}
