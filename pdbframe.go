/*
 * pdbframe.go, part of solvtrack.
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

package chem

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/spatial/r3"
)

// Names used to recognize the water oxygens.
const (
	WaterName  = "SOL"
	OxygenName = "OW"
)

const pdbFields = 11

// pdbLine is one whitespace-separated ATOM line, as written by
// Gromacs' trjconv: marker, serial, name, residue name, chain (or
// residue number), x, y, z, occupancy, b-factor and element.
type pdbLine struct {
	record    string
	serial    string
	name      string
	molname   string
	chain     string
	x, y, z   string
	occupancy string
	bfactor   string
	element   string
}

// newPDBLine splits line in its fields. It returns a MalformedAtomLine
// ParseError if the number of fields is not the expected one.
func newPDBLine(line string) (*pdbLine, error) {
	f := strings.Fields(line)
	if len(f) != pdbFields {
		return nil, newParseError(MalformedAtomLine, fmt.Sprintf("%d fields instead of %d in line '%s'", len(f), pdbFields, line), "newPDBLine")
	}
	return &pdbLine{
		record:    f[0],
		serial:    f[1],
		name:      f[2],
		molname:   f[3],
		chain:     f[4],
		x:         f[5],
		y:         f[6],
		z:         f[7],
		occupancy: f[8],
		bfactor:   f[9],
		element:   f[10],
	}, nil
}

// atom builds an Atom from the line, parsing the serial number and the coordinates.
func (L *pdbLine) atom() (*Atom, error) {
	var err error
	at := &Atom{Name: L.name, Molname: L.molname}
	at.Id, err = strconv.Atoi(L.serial)
	if err != nil {
		return nil, newParseError(NumericParseFailure, fmt.Sprintf("serial number '%s': %s", L.serial, err.Error()), "atom")
	}
	c := [3]float64{}
	for i, s := range []string{L.x, L.y, L.z} {
		c[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, newParseError(NumericParseFailure, fmt.Sprintf("coordinate %d of atom %s: '%s'", i, L.serial, s), "atom")
		}
	}
	at.Coords = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	return at, nil
}

// lineStart returns the index of the first line in s that begins with prefix,
// or -1 if there is none.
func lineStart(s, prefix string) int {
	if strings.HasPrefix(s, prefix) {
		return 0
	}
	i := strings.Index(s, "\n"+prefix)
	if i < 0 {
		return -1
	}
	return i + 1
}

// ParseFrame takes the text of one frame and returns the atoms of the residues
// named particle, and the water oxygens (atoms OW of SOL residues), both in the order they
// appear in the frame. Only the lines between the MODEL line and the first TER line are read.
// Only the atoms returned are checked for numeric errors.
func ParseFrame(frame, particle string) ([]*Atom, []*Atom, error) {
	start := lineStart(frame, "MODEL")
	if start < 0 {
		return nil, nil, newParseError(MissingStructuralMarker, "no MODEL line in frame", "ParseFrame")
	}
	//The MODEL keyword, then the model number, then the atoms.
	rest := strings.TrimLeftFunc(frame[start+len("MODEL"):], unicode.IsSpace)
	idend := strings.IndexFunc(rest, unicode.IsSpace)
	if rest == "" || idend < 0 {
		return nil, nil, newParseError(MissingStructuralMarker, "MODEL line without model number or atoms", "ParseFrame")
	}
	rest = rest[idend:]
	ter := lineStart(rest, "TER")
	if ter < 0 {
		return nil, nil, newParseError(MissingStructuralMarker, "no TER line in frame", "ParseFrame")
	}
	block := strings.TrimSpace(rest[:ter])
	particles := make([]*Atom, 0, 100)
	waters := make([]*Atom, 0, 1000)
	for _, l := range strings.Split(block, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		line, err := newPDBLine(l)
		if err != nil {
			return nil, nil, ErrDecorate(err, "ParseFrame")
		}
		var dest *[]*Atom
		if line.molname == particle {
			dest = &particles
		} else if line.molname == WaterName && line.name == OxygenName {
			dest = &waters
		} else {
			continue
		}
		at, err := line.atom()
		if err != nil {
			return nil, nil, ErrDecorate(err, "ParseFrame")
		}
		*dest = append(*dest, at)
	}
	return particles, waters, nil
}
