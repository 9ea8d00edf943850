package cmd

import (
	"context"
	"os"

	"github.com/go-ap/errors"
	"github.com/urfave/cli"

	timetable "github.com/shadowforce78/TimeTableLib"
	"github.com/shadowforce78/TimeTableLib/web"
)

var Render = cli.Command{
	Name:  "render",
	Usage: "Renders the timetable grid as a standalone HTML page",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "records",
			Usage: "JSON record feed(s) to load in addition to configured sources",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "Write the HTML here instead of stdout",
		},
	},
	Action: renderGrid,
}

func renderGrid(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	records, err := loadRecords(context.Background(), cfg, c.StringSlice("records")...)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	sched, layout, err := timetable.Build(records, opts)
	if err != nil {
		return errors.Annotatef(err, "unable to build timetable")
	}
	logger.Infof("built layout: %d events, %d slots, %d day columns",
		sched.Len(), len(layout.Slots), len(layout.Days))

	h := web.New(web.Config{
		Templates: cfg.Templates,
		Version:   Version,
		LogFn:     logger.Infof,
		ErrFn:     logger.Errorf,
	}, opts)
	h.Update(sched, layout)

	out := os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Annotatef(err, "unable to open output %s", path)
		}
		defer f.Close()
		out = f
	}
	return h.RenderGridTo(out)
}
