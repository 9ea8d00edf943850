package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	timetable "github.com/shadowforce78/TimeTableLib"
)

var List = cli.Command{
	Name:  "list",
	Usage: "Prints the normalized schedule with its slot assignments",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "records",
			Usage: "JSON record feed(s) to load in addition to configured sources",
		},
	},
	Action: listSchedule,
}

func listSchedule(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	records, err := loadRecords(context.Background(), cfg, c.StringSlice("records")...)
	if err != nil {
		return err
	}

	sched, layout, err := timetable.Build(records, cfg.Options())
	if err != nil {
		return err
	}
	if sched.Len() == 0 {
		fmt.Println("nothing found")
		return nil
	}

	for _, day := range layout.Days {
		column := layout.Columns[day]
		if len(column) == 0 {
			continue
		}
		fmt.Printf("%s\n", day)
		for _, p := range column {
			ev := p.Event
			fmt.Printf("\t%s-%s [row %d, span %d] %s @ %s (%s, %s)\n",
				ev.StartLabel(), ev.EndLabel(), p.SlotIndex, p.RowSpan,
				ev.Name, ev.Location, ev.Staff, ev.Group)
			if ev.Remarks != "" {
				fmt.Printf("\t\t%s\n", ev.Remarks)
			}
		}
	}
	return nil
}
