/*
 * sideview_test.go, part of tmdstack.
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

package cellplot

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	tmd "github.com/rmera/tmdstack"
	"github.com/rmera/tmdstack/monodb"
)

func entry(formula, metal, chalcogen string, a, h float64) monodb.Entry {
	x, y := a/2, a/(2*math.Sqrt(3))
	return monodb.Entry{
		Formula:   formula,
		XC:        tmd.XC,
		Phase:     tmd.ReferencePhase,
		Symbols:   []string{chalcogen, metal, chalcogen},
		Positions: [][3]float64{{x, y, 9 - h}, {0, 0, 9}, {x, y, 9 + h}},
		Cell:      [3][3]float64{{a, 0, 0}, {-a / 2, a * math.Sqrt(3) / 2, 0}, {0, 0, 18}},
	}
}

func TestSideView(Te *testing.T) {
	catalog := monodb.NewCatalog(entry("MoS2", "Mo", "S", 3.184, 1.564), entry("WSe2", "W", "Se", 3.319, 1.679))
	C, err := tmd.Build(context.Background(), catalog, []string{"MoS2", "WSe2"}, 3.0, 15.0, true, nil)
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"stack.png", "stack.svg"} {
		path := filepath.Join(dir, name)
		if err := SideView(C, "MoS2/WSe2", path); err != nil {
			Te.Fatal(err)
		}
		info, err := os.Stat(path)
		if err != nil {
			Te.Fatal(err)
		}
		if info.Size() == 0 {
			Te.Errorf("empty plot %s", name)
		}
	}
	if err := SideView(&tmd.Cell{}, "broken", filepath.Join(dir, "broken.png")); err == nil {
		Te.Error("expected an error for an empty cell")
	}
}

func TestColors(Te *testing.T) {
	if r, g, b := iHVS2RGB(0, 1, 1); r != 255 || g != 0 || b != 0 {
		Te.Errorf("hue 0 should be red, got %d %d %d", r, g, b)
	}
	if r, g, b := iHVS2RGB(240, 1, 1); r != 0 || g != 0 || b != 255 {
		Te.Errorf("hue 240 should be blue, got %d %d %d", r, g, b)
	}
	if r, g, b := iHVS2RGB(77, 0.5, 0); r != 127 || g != 127 || b != 127 {
		Te.Errorf("no saturation should be grey, got %d %d %d", r, g, b)
	}
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 4; i++ {
		r, g, b := colors(i, 4)
		if seen[[3]uint8{r, g, b}] {
			Te.Errorf("color %d repeated", i)
		}
		seen[[3]uint8{r, g, b}] = true
	}
}
