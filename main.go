package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"elbow/canvas"
	"elbow/core"
	"elbow/export"
	"elbow/geometry"
	"elbow/pathfinding"
	"elbow/terminal"
	"elbow/validation"
)

// config holds the parsed command line.
type config struct {
	from, to    core.Point
	format      export.Format
	outputFile  string
	cellSize    float64
	maxDistance int
	unit        float64
	color       string
	validate    bool
	stats       bool

	// explicit routes from and to as waypoints leaving with heading,
	// instead of deriving waypoints from the endpoints.
	explicit bool
	heading  core.Heading
}

var errValidation = errors.New("validation failed")

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive viewer: place endpoints with the cursor or mouse")
		validate    = flag.Bool("validate", false, "Validate the route and its rendering")
		stats       = flag.Bool("stats", false, "Print routing statistics to stderr")
		help        = flag.Bool("help", false, "Show help")

		from = flag.String("from", "", "Start point as X,Y")
		to   = flag.String("to", "", "End point as X,Y")

		heading = flag.String("heading", "", "Treat -from/-to as waypoints and leave -from heading up, down, left, right or none")

		format      = flag.String("format", "points", "Output format: points, json, svg, ascii")
		outputFile  = flag.String("o", "", "Output file (default: stdout)")
		cellSize    = flag.Float64("cell", geometry.CellSize, "Routing grid cell size")
		maxDistance = flag.Int("max-distance", 0, "Refuse searches longer than this many cells (0 = no limit)")
		unit        = flag.Float64("unit", export.DefaultOptions.Unit, "Canvas units per character cell (ascii output and -i)")
		color       = flag.String("color", "", "Color ascii output lines: red, green, yellow, blue, magenta, cyan, white")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] -from X,Y -to X,Y\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Routes an orthogonal elbow connector between two points.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -from 0,0 -to 200,40             # Print route points\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -from 0,0 -to 200,40 -format ascii\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -from 0,0 -to 200,40 -format svg -o route.svg\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -from 0,0 -to 100,60 -heading right -stats  # Search between waypoints\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i                                # Interactive viewer\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInteractive Mode Keys:\n")
		fmt.Fprintf(os.Stderr, "  arrows/hjkl  move cursor\n")
		fmt.Fprintf(os.Stderr, "  s / e        set start / end at cursor (or left / right click)\n")
		fmt.Fprintf(os.Stderr, "  x            swap endpoints\n")
		fmt.Fprintf(os.Stderr, "  q            quit\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if *interactive {
		router, err := newRouter(*cellSize, *maxDistance)
		if err == nil {
			err = terminal.Run(router, *unit)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *from == "" || *to == "" {
		fmt.Fprintf(os.Stderr, "Error: Please provide both -from and -to\n\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config{
		outputFile:  *outputFile,
		cellSize:    *cellSize,
		maxDistance: *maxDistance,
		unit:        *unit,
		color:       *color,
		validate:    *validate,
		stats:       *stats,
	}

	var err error
	if cfg.from, err = parsePoint(*from); err != nil {
		fmt.Fprintf(os.Stderr, "Error: -from: %v\n", err)
		os.Exit(1)
	}
	if cfg.to, err = parsePoint(*to); err != nil {
		fmt.Fprintf(os.Stderr, "Error: -to: %v\n", err)
		os.Exit(1)
	}
	if *heading != "" {
		cfg.explicit = true
		if cfg.heading, err = core.ParseHeading(*heading); err != nil {
			fmt.Fprintf(os.Stderr, "Error: -heading: %v\n", err)
			os.Exit(1)
		}
	}
	if cfg.format, err = export.ParseFormat(*format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Available formats: points, json, svg, ascii\n")
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRouter(cellSize float64, maxDistance int) (*pathfinding.Router, error) {
	return pathfinding.NewRouter(
		pathfinding.WithCellSize(cellSize),
		pathfinding.WithMaxGridDistance(maxDistance),
	)
}

// run routes cfg.from to cfg.to and writes the exported route to cfg.outputFile,
// or to stdout when no file is given. Diagnostics go to stderr.
func run(cfg config, stdout, stderr io.Writer) error {
	router, err := newRouter(cfg.cellSize, cfg.maxDistance)
	if err != nil {
		return err
	}

	result, route, err := plan(router, cfg)
	if err != nil {
		return fmt.Errorf("failed to route: %w", err)
	}

	if cfg.stats {
		printStats(stderr, route, result)
	}

	opts := export.DefaultOptions
	opts.Unit = cfg.unit
	opts.Color = cfg.color
	exporter, err := export.NewExporter(cfg.format, opts)
	if err != nil {
		return fmt.Errorf("failed to create exporter: %w", err)
	}

	output, err := exporter.Export(route)
	if err != nil {
		return fmt.Errorf("failed to export route: %w", err)
	}

	if cfg.outputFile != "" {
		if err := os.WriteFile(cfg.outputFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(stderr, "Exported to %s (%s format)\n", cfg.outputFile, exporter.GetFormatName())
	} else {
		fmt.Fprint(stdout, output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Fprintln(stdout)
		}
	}

	if cfg.validate {
		return validateRoute(stderr, route, cfg.unit)
	}
	return nil
}

// plan routes cfg.from to cfg.to. In explicit mode the endpoints are the
// waypoints themselves, so only the corners between them are intermediate.
func plan(router *pathfinding.Router, cfg config) (pathfinding.Result, core.Route, error) {
	route := core.Route{Start: cfg.from, End: cfg.to}

	if !cfg.explicit {
		result, err := router.Plan(cfg.from, cfg.to)
		route.Points = result.Points
		return result, route, err
	}

	result, err := router.RouteBetween(cfg.from, cfg.to, cfg.heading)
	if err != nil {
		return result, route, err
	}
	route.Points = result.Points[1 : len(result.Points)-1]
	return result, route, nil
}

func printStats(w io.Writer, route core.Route, result pathfinding.Result) {
	fmt.Fprintf(w, "heading: %s  turns: %d", result.Heading, validation.CountTurns(route))
	if result.Searched {
		fmt.Fprintf(w, "  searched: yes  cost: %d  expanded: %d\n", result.Cost, result.ExpandedNodes)
		return
	}
	fmt.Fprintf(w, "  searched: no\n")
}

// validateRoute checks the route geometry and the characters of its ASCII
// rendering, reporting every problem to w.
func validateRoute(w io.Writer, route core.Route, unit float64) error {
	problems := 0

	// A direct connector is only aligned to within one routing cell.
	if len(route.Points) > 0 {
		for _, e := range validation.ValidateRoute(route) {
			fmt.Fprintf(w, "route: %v\n", e)
			problems++
		}
	}

	c, err := canvas.RenderRoute(route, unit)
	if err != nil {
		return fmt.Errorf("failed to render route for validation: %w", err)
	}
	for _, e := range validation.NewLineValidator().Validate(c.String()) {
		fmt.Fprintf(w, "render: %s\n", e.String())
		problems++
	}

	if problems > 0 {
		return fmt.Errorf("%w: %d problem(s)", errValidation, problems)
	}
	fmt.Fprintf(w, "Validation passed\n")
	return nil
}

// parsePoint parses "X,Y" into a point. Surrounding whitespace is ignored.
func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("invalid point %q: expected X,Y", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}

	p := core.Point{X: x, Y: y}
	if !geometry.IsFinite(p) {
		return core.Point{}, fmt.Errorf("invalid point %q: coordinates must be finite", s)
	}
	return p, nil
}
