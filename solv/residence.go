/*
 * residence.go, part of solvtrack.
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

package solv

import (
	"fmt"
	"log"

	chem "github.com/rmera/solvtrack"
	"github.com/rmera/solvtrack/chemstat"
	"gonum.org/v1/gonum/mat"
)

// State is the state of a Tracker within the current window.
type State int

const (
	//AwaitingReference means the next frame is the first one of a window. The waters
	//close to the solute in that frame are the ones followed along the window.
	AwaitingReference State = iota
	//Tracking means the next frame is compared against the waters found in the
	//first frame of the window.
	Tracking
)

func (S State) String() string {
	switch S {
	case AwaitingReference:
		return "AwaitingReference"
	case Tracking:
		return "Tracking"
	}
	return fmt.Sprintf("State(%d)", int(S))
}

// Tracker follows the waters close to a solute through windows of framecount frames.
// For each frame it records how many of the waters found close to the solute in the first
// frame of the window are still close to it.
type Tracker struct {
	framecount int
	o          *Options
	frame      int
	ref        map[int]bool //waters close to the solute in the first frame of the window
	sepref     map[int]bool //same, for the separate atoms
	counts     []float64
	sepcounts  []float64
}

// NewTracker returns a Tracker for windows of framecount frames.
func NewTracker(framecount int, options ...*Options) (*Tracker, error) {
	if framecount <= 0 {
		return nil, fmt.Errorf("solv.NewTracker: the window must have at least one frame, got %d", framecount)
	}
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	T := &Tracker{framecount: framecount, o: o}
	T.counts = make([]float64, 0, 10*framecount)
	if len(o.Separate()) > 0 {
		T.sepcounts = make([]float64, 0, 10*framecount)
	}
	return T, nil
}

// State returns the state of the tracker for the next frame to be given.
func (T *Tracker) State() State {
	if T.frame%T.framecount == 0 {
		return AwaitingReference
	}
	return Tracking
}

// Frames returns the number of frames processed.
func (T *Tracker) Frames() int {
	return T.frame
}

// Frame processes the solute atoms and water oxygens of the next frame.
func (T *Tracker) Frame(solute, waters []*chem.Atom) {
	var sep []*chem.Atom
	separate := T.sepcounts != nil
	if separate {
		solute, sep = Partition(solute, T.o.Separate())
	}
	cutoff := T.o.Cutoff()
	switch T.State() {
	case AwaitingReference:
		T.ref = FindClosest(solute, waters, cutoff)
		T.counts = append(T.counts, float64(len(T.ref)))
		if separate {
			T.sepref = FindClosest(sep, waters, cutoff)
			T.sepcounts = append(T.sepcounts, float64(len(T.sepref)))
		}
	case Tracking:
		T.counts = append(T.counts, float64(HowManyRemain(solute, waters, T.ref, cutoff)))
		if separate {
			T.sepcounts = append(T.sepcounts, float64(HowManyRemain(sep, waters, T.sepref, cutoff)))
		}
	}
	T.frame++
}

// Counts returns the number of waters recorded for each frame processed.
func (T *Tracker) Counts() []float64 {
	return T.counts
}

// SeparateCounts returns the number of waters recorded for the separate atoms in each frame
// processed, or nil, if no separate atoms were requested.
func (T *Tracker) SeparateCounts() []float64 {
	return T.sepcounts
}

// Results returns a matrix with one column per frame in a window, and 2 rows, the mean and
// standard deviation over all complete windows of the number of waters remaining close to the solute.
// If separate atoms were requested, 2 more rows with the same data for them are included.
// The frames of an incomplete last window are not considered.
func (T *Tracker) Results() (*mat.Dense, error) {
	if dropped := T.frame % T.framecount; dropped != 0 {
		log.Printf("solv.Tracker: the last %d frames don't complete a window and will not be considered", dropped)
	}
	if T.sepcounts != nil {
		return chemstat.WindowStats(T.framecount, T.counts, T.sepcounts)
	}
	return chemstat.WindowStats(T.framecount, T.counts)
}

// Residence reads all the frames in traj and follows the waters close to the residues named
// particle through windows of framecount frames. It returns the matrix given by Tracker.Results.
// Any error reading or parsing a frame stops the analysis, and is returned.
func Residence(traj chem.Frames, particle string, framecount int, options ...*Options) (*mat.Dense, error) {
	T, err := NewTracker(framecount, options...)
	if err != nil {
		return nil, err
	}
	progress := T.o.Progress()
	for i := 0; ; i++ {
		frame, err := traj.Next()
		if err != nil {
			switch err := err.(type) {
			case chem.LastFrameError:
				return T.Results()
			case chem.Error:
				err.Decorate(fmt.Sprintf("Residence: failed while reading the %d th frame", i))
				return nil, err
			default:
				return nil, err
			}
		}
		solute, waters, err := chem.ParseFrame(frame, particle)
		if err != nil {
			return nil, chem.ErrDecorate(err, fmt.Sprintf("Residence: failed while parsing the %d th frame", i))
		}
		T.Frame(solute, waters)
		if progress > 0 && (i+1)%progress == 0 {
			log.Printf("%d frames processed", i+1)
		}
	}
}
