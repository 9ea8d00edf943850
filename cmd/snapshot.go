package cmd

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/go-ap/errors"
	"github.com/urfave/cli"
)

var Snapshot = cli.Command{
	Name:  "snapshot",
	Usage: "Captures a PNG of the served grid through headless Chromium",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Usage: "Grid page to capture",
			Value: "http://localhost:9999/",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "Where to write the PNG",
			Value: "timetable.png",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "Viewport width in pixels",
			Value: 1280,
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "Viewport height in pixels",
			Value: 960,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Bound for the whole capture",
			Value: 30 * time.Second,
		},
	},
	Action: snapshotGrid,
}

func snapshotGrid(c *cli.Context) error {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, c.Duration("timeout"))
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(c.Int("width")), int64(c.Int("height"))),
		chromedp.Navigate(c.String("url")),
		chromedp.WaitVisible("table.timetable", chromedp.ByQuery),
		// Small extra delay to allow final paints.
		chromedp.Sleep(500 * time.Millisecond),
		chromedp.FullScreenshot(&png, 100),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return errors.Annotatef(err, "capture failed for %s", c.String("url"))
	}

	out := c.String("output")
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return errors.Annotatef(err, "unable to write PNG %s", out)
	}
	logger.Infof("snapshot written to %s (%d bytes)", out, len(png))
	return nil
}
