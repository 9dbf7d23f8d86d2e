/*
 * chem.go, part of solvtrack.
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
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Atom contains the information read for one ATOM line of a frame.
// Atoms are created by ParseFrame and should not be modified afterwards.
type Atom struct {
	Id      int    //the serial number in the PDB
	Name    string //atom name (e.g. OW)
	Molname string //residue name (e.g. SOL)
	Coords  r3.Vec
}

func (A *Atom) String() string {
	return fmt.Sprintf("%d %s %s %8.3f %8.3f %8.3f", A.Id, A.Name, A.Molname, A.Coords.X, A.Coords.Y, A.Coords.Z)
}

// Dist returns the Euclidean distance between a and b.
// No periodic boundary conditions are applied.
func Dist(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

//Errors

// Kinds of ParseError. The trajectory readers use the same names for
// the frame-boundary problems they find.
const (
	MalformedFrameBoundary  = "malformed frame boundary"
	MissingStructuralMarker = "missing structural marker"
	MalformedAtomLine       = "malformed atom line"
	NumericParseFailure     = "numeric parse failure"
)

// ParseError is returned when a frame can't be parsed. It implements Error.
type ParseError struct {
	Kind    string //one of the constants above
	message string
	deco    []string
}

func (E *ParseError) Error() string {
	if len(E.deco) == 0 {
		return fmt.Sprintf("%s: %s", E.Kind, E.message)
	}
	return fmt.Sprintf("%s: %s: %s", strings.Join(E.deco, ": "), E.Kind, E.message)
}

// Decorate adds new information to the error. The most recent caller
// goes first in the error message.
func (E *ParseError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append([]string{deco}, E.deco...)
	}
	return E.deco
}

func newParseError(kind, message, caller string) *ParseError {
	return &ParseError{Kind: kind, message: message, deco: []string{caller}}
}

// ErrDecorate decorates err with caller, if err implements Error,
// and returns it. Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// IsKind returns true if err, or any error it wraps, is a
// ParseError of the given kind.
func IsKind(err error, kind string) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	var k interface{ ErrorKind() string }
	if errors.As(err, &k) {
		return k.ErrorKind() == kind
	}
	return false
}
