/*
 * occupancy_test.go, part of solvtrack.
 *
 * Copyright 2020 Raul Mera A. (raulpuntomeraatusachpuntocl)
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestOccupancy(Te *testing.T) {
	res := mat.NewDense(4, 5, []float64{
		10, 8, 6, 5, 4,
		0, 1, 1.5, 1, 2,
		3, 2, 2, 1, 0,
		0, 0.5, 0.5, 1, 0,
	})
	name := filepath.Join(Te.TempDir(), "occupancy.png")
	err := Occupancy(res, []string{"CHL", "O3 HO3"}, "Water residence", name)
	if err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("Empty plot file")
	}
}

func TestOccupancyBadData(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "bad.png")
	if err := Occupancy(mat.NewDense(3, 2, nil), nil, "", name); err == nil {
		Te.Error("An odd number of rows should give an error")
	}
	if err := Occupancy(mat.NewDense(2, 2, nil), []string{"a", "b"}, "", name); err == nil {
		Te.Error("A wrong number of names should give an error")
	}
}

func TestSeriesColor(Te *testing.T) {
	c := seriesColor(0, 2, 255)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		Te.Errorf("The first series should be red, got %v", c)
	}
	if c2 := seriesColor(1, 2, 255); c2 == c {
		Te.Error("Two series got the same color")
	}
	//no yellows (hue 40 to 75)
	for k := 0; k < 20; k++ {
		c := seriesColor(k, 20, 255)
		if c.R > 200 && c.G > 150 && c.B < 50 {
			Te.Errorf("Series %d of 20 is yellow: %v", k, c)
		}
	}
	if seriesColor(1, 3, 120).A != 120 {
		Te.Error("Alpha not set")
	}
}
