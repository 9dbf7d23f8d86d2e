/*
 * solvation.go, part of solvtrack.
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

//Package solv finds the water molecules close to a solute and follows them
//along a trajectory.
package solv

import (
	"strings"

	chem "github.com/rmera/solvtrack"
)

type Options struct {
	cutoff   float64
	separate []string
	progress int
}

//Returns a Options with the default options.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cutoff = 4
	ret.separate = nil
	ret.progress = 0
	return ret
}

//Returns the maximum distance from the solute for a water to be considered
//close to it, and sets it to a value, if a valid value is given
func (r *Options) Cutoff(cutoff ...float64) float64 {
	ret := r.cutoff
	if len(cutoff) > 0 && cutoff[0] > 0 {
		r.cutoff = cutoff[0]
	}
	return ret
}

//Returns the names of the solute atoms that are followed separately
//from the rest of the solute, and sets them, if given. Empty names are ignored.
func (r *Options) Separate(names ...[]string) []string {
	ret := r.separate
	if len(names) > 0 {
		r.separate = nil
		for _, v := range names[0] {
			v = strings.TrimSpace(v)
			if v != "" {
				r.separate = append(r.separate, v)
			}
		}
	}
	return ret
}

//Returns every how many frames a progress line is logged (0 means never)
//and sets it, if a valid value is given.
func (r *Options) Progress(frames ...int) int {
	ret := r.progress
	if len(frames) > 0 && frames[0] >= 0 {
		r.progress = frames[0]
	}
	return ret
}

//closeToAny returns true if at is at cutoff or less from any atom in ref.
func closeToAny(at *chem.Atom, ref []*chem.Atom, cutoff float64) bool {
	for _, v := range ref {
		if chem.Dist(at.Coords, v.Coords) <= cutoff {
			return true
		}
	}
	return false
}

//FindClosest returns the set of serial numbers of the waters at cutoff or less
//from any of the atoms in solute.
func FindClosest(solute, waters []*chem.Atom, cutoff float64) map[int]bool {
	ret := make(map[int]bool)
	for _, w := range waters {
		if closeToAny(w, solute, cutoff) {
			ret[w.Id] = true
		}
	}
	return ret
}

//HowManyRemain returns how many of the waters with serial numbers in tracked are still at
//cutoff or less from any of the atoms in solute.
func HowManyRemain(solute, waters []*chem.Atom, tracked map[int]bool, cutoff float64) int {
	var n int
	for _, w := range waters {
		if tracked[w.Id] && closeToAny(w, solute, cutoff) {
			n++
		}
	}
	return n
}

//Partition returns the atoms in atoms whose names are not in names, and those whose names are,
//in the original order. The atoms slice is not modified.
func Partition(atoms []*chem.Atom, names []string) (rest, separate []*chem.Atom) {
	rest = make([]*chem.Atom, 0, len(atoms))
	for _, v := range atoms {
		if isInString(names, v.Name) {
			separate = append(separate, v)
		} else {
			rest = append(rest, v)
		}
	}
	return rest, separate
}

//returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
