/*
 * windows.go, part of solvtrack.
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
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrNoCompleteWindow is returned when a series is shorter than one window.
var ErrNoCompleteWindow = errors.New("chemstat: not enough frames for one complete window")

// Windows splits counts in consecutive windows of framecount elements. A final,
// incomplete window is dropped. The windows are views of counts, not copies.
func Windows(counts []float64, framecount int) [][]float64 {
	if framecount <= 0 {
		panic(fmt.Sprintf("chemstat.Windows: invalid window size %d", framecount))
	}
	n := len(counts) / framecount
	ret := make([][]float64, 0, n)
	for i := 0; i < n*framecount; i += framecount {
		ret = append(ret, counts[i:i+framecount:i+framecount])
	}
	return ret
}

// ColumnStats returns, for each position in the windows, the mean and the population
// standard deviation of the values at that position across all windows.
// All windows must have the same length.
func ColumnStats(windows [][]float64) (mean, std []float64) {
	if len(windows) == 0 {
		return nil, nil
	}
	cols := len(windows[0])
	mean = make([]float64, cols)
	std = make([]float64, cols)
	col := make([]float64, len(windows))
	for j := 0; j < cols; j++ {
		for i, w := range windows {
			if len(w) != cols {
				panic("chemstat.ColumnStats: windows of different lengths")
			}
			col[i] = w[j]
		}
		mean[j], std[j] = stat.PopMeanStdDev(col, nil)
	}
	return mean, std
}

// WindowStats splits each of the given series in windows of framecount frames and returns
// a matrix with framecount columns and 2 rows per series: the mean and the standard deviation
// for each frame offset within the window. All series must have the same length.
func WindowStats(framecount int, series ...[]float64) (*mat.Dense, error) {
	if framecount <= 0 {
		return nil, fmt.Errorf("chemstat.WindowStats: invalid window size %d", framecount)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("chemstat.WindowStats: no data given")
	}
	ret := mat.NewDense(2*len(series), framecount, nil)
	for i, s := range series {
		if len(s) != len(series[0]) {
			return nil, fmt.Errorf("chemstat.WindowStats: series %d has %d elements, expected %d", i, len(s), len(series[0]))
		}
		w := Windows(s, framecount)
		if len(w) == 0 {
			return nil, ErrNoCompleteWindow
		}
		mean, std := ColumnStats(w)
		ret.SetRow(2*i, mean)
		ret.SetRow(2*i+1, std)
	}
	return ret, nil
}

// WriteCSV writes the matrix m to w, one row per line, with the values separated
// by commas, in the %.18e format.
func WriteCSV(w io.Writer, m mat.Matrix) error {
	r, c := m.Dims()
	line := make([]byte, 0, c*26)
	for i := 0; i < r; i++ {
		line = line[:0]
		for j := 0; j < c; j++ {
			if j > 0 {
				line = append(line, ',')
			}
			line = strconv.AppendFloat(line, m.At(i, j), 'e', 18, 64)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
