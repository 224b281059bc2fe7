package render

import (
	"bytes"
	"fmt"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
)

// TileRenderer draws a grid to some image format.
type TileRenderer interface {
	Render(g *grid.TileGrid) ([]byte, error)
}

// Options configures SVGRenderer.
type Options struct {
	TileSize int  // pixels per tile
	Margin   int  // canvas margin in pixels
	ShowGrid bool // draw faint gridlines under every tile
}

// DefaultOptions is a 48px tile on a 24px margin with gridlines on.
func DefaultOptions() Options {
	return Options{TileSize: 48, Margin: 24, ShowGrid: true}
}

// SVGRenderer draws a grid as a flat SVG tile map.
type SVGRenderer struct {
	Options Options
}

// NewSVGRenderer returns an SVGRenderer with opts.
func NewSVGRenderer(opts Options) SVGRenderer {
	return SVGRenderer{Options: opts}
}

var tierColors = []string{"#e3b341", "#e5534b", "#4493f8"} // yellow, red, blue

func tierColor(tier entity.BeltTier) string {
	i := entity.TierIndex(tier)
	if i < 0 || i >= len(tierColors) {
		return "#999999"
	}
	return tierColors[i]
}

// Render draws every occupied tile of g onto an SVG canvas sized to its
// bounds. Belts are arrows facing their direction; underground belt ends
// are marked squares joined by a dashed tunnel line; splitters span
// their two tiles; obstacles are flat blocks.
func (r SVGRenderer) Render(g *grid.TileGrid) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("render: grid is nil")
	}
	min, max, ok := g.Bounds()
	if !ok {
		return nil, fmt.Errorf("render: grid is empty")
	}

	ts := r.Options.TileSize
	margin := r.Options.Margin
	width := (max.X-min.X+1)*ts + 2*margin
	height := (max.Y-min.Y+1)*ts + 2*margin

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1e1e1e")

	if r.Options.ShowGrid {
		r.drawGridLines(canvas, min, max, width, height)
	}

	positions := g.Occupied()
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})

	drawn := make(map[geometry.TilePosition]bool, len(positions))
	for _, pos := range positions {
		if drawn[pos] {
			continue
		}
		e, ok := g.Get(pos)
		if !ok {
			continue
		}
		r.drawEntity(canvas, g, pos, e, min, drawn)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func (r SVGRenderer) drawGridLines(canvas *svg.SVG, min, max geometry.TilePosition, width, height int) {
	ts := r.Options.TileSize
	margin := r.Options.Margin
	for x := min.X; x <= max.X+1; x++ {
		px := (x-min.X)*ts + margin
		canvas.Line(px, margin, px, height-margin, "stroke:#333333;stroke-width:1")
	}
	for y := min.Y; y <= max.Y+1; y++ {
		py := (y-min.Y)*ts + margin
		canvas.Line(margin, py, width-margin, py, "stroke:#333333;stroke-width:1")
	}
}

func (r SVGRenderer) topLeft(pos, min geometry.TilePosition) (int, int) {
	ts := r.Options.TileSize
	margin := r.Options.Margin
	return (pos.X-min.X)*ts + margin, (pos.Y-min.Y)*ts + margin
}

func (r SVGRenderer) drawEntity(canvas *svg.SVG, g *grid.TileGrid, pos geometry.TilePosition, e entity.Entity, min geometry.TilePosition, drawn map[geometry.TilePosition]bool) {
	drawn[pos] = true
	ts := r.Options.TileSize
	px, py := r.topLeft(pos, min)

	switch v := e.(type) {
	case entity.Belt:
		canvas.Rect(px, py, ts, ts, fmt.Sprintf("fill:%s;opacity:0.25", tierColor(v.Tier)))
		r.drawArrow(canvas, px, py, v.Direction, tierColor(v.Tier))

	case entity.UndergroundBelt:
		canvas.Rect(px+ts/4, py+ts/4, ts/2, ts/2, fmt.Sprintf("fill:%s;stroke:#ffffff;stroke-width:2", tierColor(v.Tier)))
		r.drawArrow(canvas, px, py, v.ShapeDirection(), tierColor(v.Tier))
		if v.IsInput {
			if pairPos, ok := g.GetUGPair(pos); ok {
				r.drawTunnelLine(canvas, pos, pairPos, min, tierColor(v.Tier))
			}
		}

	case entity.Splitter:
		tail := pos.Add(v.TailOffset(v.Direction))
		drawn[tail] = true
		tpx, tpy := r.topLeft(tail, min)
		x0, y0 := px, py
		if tpx < x0 {
			x0 = tpx
		}
		if tpy < y0 {
			y0 = tpy
		}
		w, h := ts, ts
		if tpx != px {
			w = ts * 2
		} else {
			h = ts * 2
		}
		canvas.Rect(x0, y0, w, h, fmt.Sprintf("fill:%s;opacity:0.4;stroke:#ffffff;stroke-width:2", tierColor(v.Tier)))
		r.drawArrow(canvas, px, py, v.Direction, tierColor(v.Tier))

	case entity.LoaderLike:
		cx, cy := px+ts/2, py+ts/2
		half := ts / 2
		canvas.Polygon(
			[]int{cx, cx + half, cx, cx - half},
			[]int{cy - half, cy, cy + half, cy},
			fmt.Sprintf("fill:%s;stroke:#ffffff;stroke-width:1", tierColor(v.Tier)),
		)

	case entity.CollidingEntityOrTile:
		canvas.Rect(px+2, py+2, ts-4, ts-4, "fill:#555555")

	case entity.ImpassableTile:
		canvas.Rect(px, py, ts, ts, "fill:#3a1212")
		canvas.Line(px, py, px+ts, py+ts, "stroke:#a33;stroke-width:2")
		canvas.Line(px+ts, py, px, py+ts, "stroke:#a33;stroke-width:2")
	}
}

// drawArrow draws a filled triangle pointing in direction, centered in
// the tile whose top-left corner is (px, py).
func (r SVGRenderer) drawArrow(canvas *svg.SVG, px, py int, direction geometry.Direction, color string) {
	ts := r.Options.TileSize
	cx, cy := px+ts/2, py+ts/2
	half := ts / 3
	v := direction.ToVector()
	tipX, tipY := cx+v.X*half, cy+v.Y*half
	leftX, leftY := cx-v.Y*half/2, cy+v.X*half/2
	rightX, rightY := cx+v.Y*half/2, cy-v.X*half/2
	canvas.Polygon(
		[]int{tipX, leftX, rightX},
		[]int{tipY, leftY, rightY},
		fmt.Sprintf("fill:%s", color),
	)
}

func (r SVGRenderer) drawTunnelLine(canvas *svg.SVG, from, to, min geometry.TilePosition, color string) {
	ts := r.Options.TileSize
	fx, fy := r.topLeft(from, min)
	tx, ty := r.topLeft(to, min)
	canvas.Line(fx+ts/2, fy+ts/2, tx+ts/2, ty+ts/2, fmt.Sprintf("stroke:%s;stroke-width:2;stroke-dasharray:6,4;opacity:0.6", color))
}
