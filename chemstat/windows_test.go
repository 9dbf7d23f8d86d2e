/*
 * windows_test.go, part of solvtrack.
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

package chemstat

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestWindowsDropTrailing(Te *testing.T) {
	counts := make([]float64, 205)
	for i := range counts {
		counts[i] = float64(i)
	}
	w := Windows(counts, 100)
	if len(w) != 2 {
		Te.Fatalf("Expected 2 windows, got %d", len(w))
	}
	if w[0][0] != 0 || w[1][0] != 100 || w[1][99] != 199 {
		Te.Errorf("Wrong windows: %v ... %v", w[0][:3], w[1][:3])
	}
	if len(Windows(counts[:99], 100)) != 0 {
		Te.Error("A series shorter than a window should give no windows")
	}
}

func TestColumnStatsConstant(Te *testing.T) {
	windows := [][]float64{{7, 3, 2}, {7, 3, 2}, {7, 3, 2}}
	mean, std := ColumnStats(windows)
	if !floats.Equal(mean, []float64{7, 3, 2}) {
		Te.Errorf("Wrong means for constant columns: %v", mean)
	}
	if !floats.Equal(std, []float64{0, 0, 0}) {
		Te.Errorf("Standard deviation of constant columns should be 0: %v", std)
	}
}

func TestColumnStatsPopulation(Te *testing.T) {
	windows := [][]float64{{10, 2}, {6, 4}}
	mean, std := ColumnStats(windows)
	if !floats.EqualApprox(mean, []float64{8, 3}, 1e-12) {
		Te.Errorf("Wrong means: %v", mean)
	}
	//population, not sample, standard deviation.
	if !floats.EqualApprox(std, []float64{2, 1}, 1e-12) {
		Te.Errorf("Wrong standard deviations: %v", std)
	}
}

func TestWindowStats(Te *testing.T) {
	a := []float64{5, 3, 1, 7, 5, 3, 9}
	b := []float64{1, 1, 1, 1, 1, 1, 1}
	m, err := WindowStats(3, a, b)
	if err != nil {
		Te.Fatal(err)
	}
	r, c := m.Dims()
	if r != 4 || c != 3 {
		Te.Fatalf("Expected a 4x3 matrix, got %dx%d", r, c)
	}
	expected := mat.NewDense(4, 3, []float64{
		6, 4, 2,
		1, 1, 1,
		1, 1, 1,
		0, 0, 0,
	})
	if !mat.EqualApprox(m, expected, 1e-12) {
		Te.Errorf("Wrong statistics:\n%v", mat.Formatted(m))
	}
	if _, err := WindowStats(10, a); !errors.Is(err, ErrNoCompleteWindow) {
		Te.Errorf("Expected ErrNoCompleteWindow, got %v", err)
	}
	if _, err := WindowStats(3, a, b[:6]); err == nil {
		Te.Error("Series of different lengths should give an error")
	}
}

func TestWriteCSV(Te *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2.5, 3, 0, 0.5, math.Pi})
	var buf bytes.Buffer
	if err := WriteCSV(&buf, m.T()); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		Te.Fatalf("Expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "1.000000000000000000e+00,0.000000000000000000e+00" {
		Te.Errorf("Wrong first line: %s", lines[0])
	}
	if lines[1] != "2.500000000000000000e+00,5.000000000000000000e-01" {
		Te.Errorf("Wrong second line: %s", lines[1])
	}
}
