/*
 * occupancy.go, part of solvtrack
 *
 * Copyright 2020 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package chemplot plots the results of the residence analysis using gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicOccupancyPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Frame in window"
	p.Y.Label.Text = "Waters remaining"
	p.Y.Min = 0
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// Occupancy plots the results of solv.Residence to filename (the format is given by the extension,
// e.g. .png, .svg or .pdf). res must have pairs of rows, each with the mean and
// standard deviation for each frame offset. names gives a legend entry for each pair, and can be nil.
// The mean is plotted as a line, and the standard deviation as error bars.
func Occupancy(res mat.Matrix, names []string, title, filename string) error {
	r, c := res.Dims()
	if r == 0 || r%2 != 0 {
		return fmt.Errorf("chemplot.Occupancy: the data must have pairs of mean and standard deviation rows, got %d rows", r)
	}
	if names != nil && len(names) != r/2 {
		return fmt.Errorf("chemplot.Occupancy: %d names given for %d series", len(names), r/2)
	}
	p := basicOccupancyPlot(title)
	for key := 0; key < r/2; key++ {
		pts := make(plotter.XYs, c)
		errs := make(plotter.YErrors, c)
		for j := 0; j < c; j++ {
			pts[j].X = float64(j)
			pts[j].Y = res.At(2*key, j)
			std := res.At(2*key+1, j)
			errs[j].Low = std
			errs[j].High = std
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		bars, err := plotter.NewYErrorBars(struct {
			plotter.XYs
			plotter.YErrors
		}{pts, errs})
		if err != nil {
			return err
		}
		l.LineStyle.Color = seriesColor(key, r/2, 255)
		bars.LineStyle.Color = seriesColor(key, r/2, 120)
		p.Add(bars, l)
		if names != nil {
			p.Legend.Add(names[key], l)
		}
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// seriesColor returns the color of the series key out of total. The hues go from
// red to violet, skipping the yellows, which are hard to see on white.
func seriesColor(key, total int, alpha uint8) color.NRGBA {
	h := 260.0*float64(key)/float64(total) + 20
	if h < 55 {
		h -= 20
	} else {
		h += 20
	}
	r, g, b := hueRGB(h)
	return color.NRGBA{R: uint8(255 * r), G: uint8(255 * g), B: uint8(255 * b), A: alpha}
}

// hueRGB returns the components, in [0,1], of the saturated color with hue h (in degrees).
func hueRGB(h float64) (r, g, b float64) {
	h = math.Mod(h, 360) / 60
	f := h - math.Floor(h)
	switch int(h) {
	case 0:
		return 1, f, 0
	case 1:
		return 1 - f, 1, 0
	case 2:
		return 0, 1, f
	case 3:
		return 0, 1 - f, 1
	case 4:
		return f, 0, 1
	}
	return 1, 0, 1 - f
}
