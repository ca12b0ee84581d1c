// Command halfcover finds two circles, centred at input points, that each
// hold at least half of the points while the smaller radius is minimal.
//
//	halfcover -points pts.json            # [[0,0],[3,0],[2,2]]
//	halfcover -random 25 -seed 7 -polyline
//	halfcover -random 25 -screen 800x600   # rings as pixel coordinates
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/halfcover/cover"
	"github.com/katalvlaran/halfcover/sample"
	"github.com/katalvlaran/halfcover/task"
	"github.com/katalvlaran/halfcover/viewport"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "halfcover:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("halfcover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		pointsPath = fs.String("points", "", "JSON file holding an array of [x, y] pairs")
		random     = fs.Int("random", 0, "generate this many points instead of reading a file")
		seed       = fs.Int64("seed", 0, "seed for -random (0 = default seed)")
		configPath = fs.String("config", "", "optional JSON config file")
		polyline   = fs.Bool("polyline", false, "print each circle as a polyline")
		screenSize = fs.String("screen", "", "print each circle as pixels on a WxH screen, e.g. 800x600")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *random < 0 {
		return fmt.Errorf("-random must be positive, got %d", *random)
	}
	if *pointsPath != "" && *random > 0 {
		return errors.New("-points and -random are mutually exclusive")
	}
	var screen viewport.Screen
	if *screenSize != "" {
		s, err := parseScreen(*screenSize)
		if err != nil {
			return err
		}
		screen = s
	}

	conf, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	tk := task.New(task.WithLogger(task.NewConsoleLogger(stderr, "halfcover ", conf.Color)))
	switch {
	case *pointsPath != "":
		pts, err := loadPoints(*pointsPath)
		if err != nil {
			return err
		}
		for _, p := range pts {
			if err = tk.AddPoint(p); err != nil {
				return err
			}
		}
	case *random > 0:
		if err = tk.AddRandom(*random, sample.WithSeed(*seed)); err != nil {
			return err
		}
	default:
		return errors.New("one of -points or -random is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err = tk.Solve(ctx); err != nil {
		return err
	}

	answer, err := tk.Answer()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, answer)

	if conf.Verify {
		sol, _ := tk.Solution()
		rep, err := cover.Verify(tk.Points(), sol)
		fmt.Fprintf(stdout, "coverage: need %d of %d, circle #1 holds %d, circle #2 holds %d\n",
			rep.Required, rep.N, rep.InsideA, rep.InsideB)
		if err != nil {
			return err
		}
	}

	if !*polyline && *screenSize == "" {
		return nil
	}
	rings, err := tk.Polylines(conf.Segments)
	if err != nil {
		return err
	}
	if *polyline {
		for i, ring := range rings {
			fmt.Fprintf(stdout, "circle #%d:", i+1)
			for _, p := range ring {
				fmt.Fprintf(stdout, " %s", p)
			}
			fmt.Fprintln(stdout)
		}
	}
	if *screenSize != "" {
		pix, err := pixelRings(tk.Points(), rings, screen)
		if err != nil {
			return err
		}
		for i, ring := range pix {
			fmt.Fprintf(stdout, "pixels #%d:", i+1)
			for _, xy := range ring {
				fmt.Fprintf(stdout, " %d,%d", xy[0], xy[1])
			}
			fmt.Fprintln(stdout)
		}
	}

	return nil
}
