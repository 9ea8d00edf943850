package cmd

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/urfave/cli"

	w "git.sr.ht/~mariusor/wrapper"

	timetable "github.com/shadowforce78/TimeTableLib"
	"github.com/shadowforce78/TimeTableLib/web"
)

var Serve = cli.Command{
	Name:  "serve",
	Usage: "Starts the timetable HTTP server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "Set hostname on which to listen to",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "Set port on which to listen to",
		},
		&cli.StringSliceFlag{
			Name:  "records",
			Usage: "JSON record feed(s) to load in addition to configured sources",
		},
	},
	Action: serveStart,
}

var wait = 100 * time.Millisecond

func serveStart(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	listen := cfg.Listen
	if host := c.String("host"); host != "" {
		listen = fmt.Sprintf("%s:%d", host, c.Int("port"))
	}

	opts := cfg.Options()
	h := web.New(web.Config{
		Templates: cfg.Templates,
		Version:   Version,
		LogFn:     logger.Infof,
		ErrFn:     logger.Errorf,
	}, opts)

	extra := c.StringSlice("records")
	refresh := func(ctx context.Context) error {
		records, err := loadRecords(ctx, cfg, extra...)
		if err != nil {
			return err
		}
		sched, layout, err := timetable.Build(records, opts)
		if err != nil {
			return err
		}
		h.Update(sched, layout)
		logger.Infof("timetable refreshed: %d events on %d slots", sched.Len(), len(layout.Slots))
		return nil
	}
	// The first pass is fail-fast: a malformed feed aborts startup
	// instead of serving a partial schedule.
	if err := refresh(context.Background()); err != nil {
		return err
	}

	logger.Infof("listening on http://%s", listen)

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	srvRun, srvStop := w.HttpServer(w.Handler(h.Routes()), w.OnTCP(listen))
	w.RegisterSignalHandlers(w.SignalHandlers{
		syscall.SIGHUP: func(_ chan int) {
			logger.Infof("SIGHUP received, reloading timetable")
			if err := refresh(context.Background()); err != nil {
				logger.Errorf("unable to reload: %s", err)
			}
		},
		syscall.SIGINT: func(exit chan int) {
			logger.Infof("SIGINT received, stopping")
			exit <- 0
		},
		syscall.SIGTERM: func(exit chan int) {
			logger.Infof("SIGTERM received, force stopping")
			exit <- 0
		},
		syscall.SIGQUIT: func(exit chan int) {
			logger.Infof("SIGQUIT received, force stopping with core-dump")
			exit <- 0
		},
	}).Exec(func() error {
		if cfg.RefreshMinutes > 0 {
			go func() {
				for {
					time.Sleep(time.Duration(cfg.RefreshMinutes) * time.Minute)
					if err := refresh(context.Background()); err != nil {
						logger.Errorf("unable to refresh: %s", err)
					}
				}
			}()
		}
		if err := srvRun(); err != nil {
			logger.Errorf("error: %s", err)
			return err
		}
		var err error
		// Doesn't block if no connections, but will otherwise wait until the timeout deadline.
		go func(e error) {
			if err = srvStop(ctx); err != nil {
				logger.Errorf("error: %s", err)
			}
		}(err)
		return err
	})

	return nil
}
