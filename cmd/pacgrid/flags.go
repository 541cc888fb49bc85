package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pacgrid/grid"
)

// Command-line flags. -grid and -file are mutually exclusive; -from and -to
// are only used together.
var (
	// gridFlag names a preset arena.
	gridFlag = flag.String("grid", "pacman", "preset arena: blank, outer, pacman or playground")

	// fileFlag reads a maze in the text literal format instead of a preset.
	fileFlag = flag.String("file", "", "path to a maze in text form (overrides -grid)")

	// fromFlag and toFlag select a distance probe.
	fromFlag = flag.String("from", "", "probe origin as x,y")
	toFlag   = flag.String("to", "", "probe target as x,y")

	// workersFlag bounds the goroutines filling the distance matrix.
	workersFlag = flag.Int("workers", 0, "distance-matrix workers (0 = GOMAXPROCS)")

	// printFlag echoes the maze before the report.
	printFlag = flag.Bool("print", false, "print the maze in text form")

	// noValidateFlag builds the graph without structural checks.
	noValidateFlag = flag.Bool("no-validate", false, "skip border and open-square checks")
)

var errBadPoint = errors.New("pacgrid: point must be x,y")

// parsePoint reads "x,y" into a grid.Point.
func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("%w: %q: %w", errBadPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("%w: %q: %w", errBadPoint, s, err)
	}
	return grid.Pt(x, y), nil
}
