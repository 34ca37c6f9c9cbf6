/*
 * sideview.go, part of tmdstack.
 *
 * Copyright 2026 The tmdstack Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package cellplot draws built heterostructures.
package cellplot

import (
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	tmd "github.com/rmera/tmdstack"
)

// Size of the saved figures.
var (
	Width  = 4 * vg.Inch
	Height = 6 * vg.Inch
)

// SideView plots the atoms of C projected on the xz plane, one series per species,
// and saves the plot to filename. The format is given by the extension of filename
// (png, svg, pdf, eps...).
func SideView(C *tmd.Cell, title, filename string) error {
	if err := C.Corrupted(); err != nil {
		return err
	}
	p := plot.New()
	p.Title.Padding = vg.Millimeters(3)
	p.Title.Text = title
	p.X.Label.Text = "x (A)"
	p.Y.Label.Text = "z (A)"
	p.Add(plotter.NewGrid())

	species := C.Species()
	for key, s := range species {
		var pts plotter.XYs
		for i, sym := range C.Symbols {
			if sym == s {
				c := C.Coords.Vec(i)
				pts = append(pts, plotter.XY{X: c[0], Y: c[2]})
			}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrapf(err, "plotting %s", s)
		}
		r, g, b := colors(key, len(species))
		sc.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3 * tmd.CovalentRadius(s))
		p.Add(sc)
		p.Legend.Add(s, sc)
	}

	//the cell, from the origin to the top of a3
	top := C.Lattice.At(2, 2)
	p.Y.Min = math.Min(0, p.Y.Min)
	p.Y.Max = math.Max(top, p.Y.Max)
	cell, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: top}, {X: p.X.Max, Y: top}})
	if err != nil {
		return errors.Wrap(err, "plotting cell boundary")
	}
	cell.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(cell)

	if err := p.Save(Width, Height, filename); err != nil {
		return errors.Wrapf(err, "saving %s", filename)
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var r, g, b float64
	conversion := 255.0 * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := 1 - s
	q := 1 - s*f
	t := 1 - s*(1-f)
	switch int(i) {
	case 0:
		r, g, b = 1, t, p
	case 1:
		r, g, b = q, 1, p
	case 2:
		r, g, b = p, 1, t
	case 3:
		r, g, b = p, q, 1
	case 4:
		r, g, b = t, p, 1
	default: //case 5
		r, g, b = 1, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

// colors returns the key-th of steps colors spread over the hue circle,
// skipping the yellows.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
