package cmd

import (
	"context"

	"git.sr.ht/~mariusor/lw"
	"github.com/go-ap/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	timetable "github.com/shadowforce78/TimeTableLib"
	"github.com/shadowforce78/TimeTableLib/config"
	"github.com/shadowforce78/TimeTableLib/source/icsfeed"
	"github.com/shadowforce78/TimeTableLib/source/jsonrec"
	"github.com/shadowforce78/TimeTableLib/source/webgrid"
)

// Version is stamped by the binaries.
var Version = "(devel)"

var logger = lw.Dev()

func loadConfig(c *cli.Context) (*config.Config, error) {
	return config.Load(c.GlobalString("config"))
}

// loadRecords loads every configured source concurrently and merges the
// batches in source order, so that the relative order of records stays
// deterministic. The assignment pass depends on that for tie stability.
func loadRecords(ctx context.Context, cfg *config.Config, extra ...string) ([]timetable.RawRecord, error) {
	sources := make([]config.Source, 0, len(cfg.Sources)+len(extra))
	sources = append(sources, cfg.Sources...)
	for _, p := range extra {
		sources = append(sources, config.Source{Type: config.SourceJSON, Path: p})
	}
	if len(sources) == 0 {
		return nil, errors.Newf("no record sources configured")
	}

	batches := make([][]timetable.RawRecord, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			recs, err := loadSource(gctx, src)
			if err != nil {
				return err
			}
			logger.Infof("loaded %d records from %s source %s", len(recs), src.Type, sourceName(src))
			batches[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]timetable.RawRecord, 0)
	for _, b := range batches {
		records = append(records, b...)
	}
	return records, nil
}

func loadSource(ctx context.Context, src config.Source) ([]timetable.RawRecord, error) {
	switch src.Type {
	case config.SourceJSON:
		return jsonrec.LoadFile(src.Path)
	case config.SourceICS:
		return icsfeed.Fetch(ctx, src.URL)
	case config.SourceWeb:
		return webgrid.LoadURL(src.URL)
	}
	return nil, errors.Newf("unknown source type %q", src.Type)
}

func sourceName(src config.Source) string {
	if src.Name != "" {
		return src.Name
	}
	if src.Path != "" {
		return src.Path
	}
	return src.URL
}
