package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/halfcover/geom"
	"github.com/katalvlaran/halfcover/viewport"
)

// worldMargin pads the fitted world so rings never touch the screen edge.
const worldMargin = 1.0

// parseScreen reads a "WxH" pixel size such as "800x600".
func parseScreen(s string) (viewport.Screen, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return viewport.Screen{}, fmt.Errorf("invalid screen size %q, want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return viewport.Screen{}, fmt.Errorf("invalid screen width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return viewport.Screen{}, fmt.Errorf("invalid screen height %q: %w", h, err)
	}

	return viewport.Screen{Width: width, Height: height}, nil
}

// pixelRings fits a viewport around the points and both rings, then maps
// the rings to pixels.
func pixelRings(points []geom.Point, rings [2][]geom.Point, screen viewport.Screen) ([2][][2]int, error) {
	var out [2][][2]int
	all := append([]geom.Point(nil), points...)
	all = append(all, rings[0]...)
	all = append(all, rings[1]...)

	vp, err := viewport.New(geom.Bounds(all).Expanded(worldMargin), screen)
	if err != nil {
		return out, err
	}
	for i, ring := range rings {
		out[i] = vp.Ring(ring)
	}

	return out, nil
}
