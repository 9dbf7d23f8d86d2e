/*
 * solvation_test.go, part of solvtrack.
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
	"math/rand"
	"testing"

	chem "github.com/rmera/solvtrack"
	"gonum.org/v1/gonum/spatial/r3"
)

func atom(id int, name, molname string, x, y, z float64) *chem.Atom {
	return &chem.Atom{Id: id, Name: name, Molname: molname, Coords: r3.Vec{X: x, Y: y, Z: z}}
}

func ow(id int, x, y, z float64) *chem.Atom {
	return atom(id, chem.OxygenName, chem.WaterName, x, y, z)
}

func TestFindClosest(Te *testing.T) {
	solute := []*chem.Atom{atom(1, "C1", "CHL", 0, 0, 0), atom(2, "C2", "CHL", 10, 10, 10)}
	waters := []*chem.Atom{ow(3, 0, 0, 1), ow(4, 10, 10, 12)}
	found := FindClosest(solute, waters, 1.5)
	if len(found) != 1 || !found[3] {
		Te.Errorf("Only water 3 should be close, got %v", found)
	}
	found = FindClosest(solute, waters, 2)
	if len(found) != 2 || !found[3] || !found[4] {
		Te.Errorf("Both waters should be close at the cutoff distance, got %v", found)
	}
	if len(FindClosest(nil, waters, 100)) != 0 {
		Te.Error("No water can be close to an empty solute")
	}
}

func randomAtoms(r *rand.Rand, n, firstid int, name, molname string) []*chem.Atom {
	ret := make([]*chem.Atom, n)
	for i := range ret {
		ret[i] = atom(firstid+i, name, molname, 20*r.Float64(), 20*r.Float64(), 20*r.Float64())
	}
	return ret
}

func shuffled(r *rand.Rand, a []*chem.Atom) []*chem.Atom {
	ret := append([]*chem.Atom(nil), a...)
	r.Shuffle(len(ret), func(i, j int) { ret[i], ret[j] = ret[j], ret[i] })
	return ret
}

func TestFindClosestOrder(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	solute := randomAtoms(r, 20, 1, "C", "CHL")
	waters := randomAtoms(r, 300, 100, chem.OxygenName, chem.WaterName)
	ref := FindClosest(solute, waters, 3)
	for i := 0; i < 5; i++ {
		got := FindClosest(shuffled(r, solute), shuffled(r, waters), 3)
		if len(got) != len(ref) {
			Te.Fatalf("Different number of waters after shuffling: %d vs %d", len(got), len(ref))
		}
		for k := range ref {
			if !got[k] {
				Te.Errorf("Water %d lost after shuffling", k)
			}
		}
	}
}

func TestHowManyRemain(Te *testing.T) {
	r := rand.New(rand.NewSource(7))
	solute := randomAtoms(r, 15, 1, "C", "CHL")
	waters := randomAtoms(r, 300, 100, chem.OxygenName, chem.WaterName)
	ref := FindClosest(solute, waters, 3.5)
	if len(ref) == 0 {
		Te.Fatal("Bad test setup, no waters close to the solute")
	}
	if n := HowManyRemain(solute, waters, ref, 3.5); n != len(ref) {
		Te.Errorf("With the same frame all %d waters should remain, got %d", len(ref), n)
	}
	//a new frame with all the waters moved.
	moved := make([]*chem.Atom, len(waters))
	for i, v := range waters {
		moved[i] = atom(v.Id, v.Name, v.Molname, v.Coords.X+r.Float64(), v.Coords.Y-r.Float64(), v.Coords.Z)
	}
	n := HowManyRemain(solute, moved, ref, 3.5)
	if n > len(ref) || n > len(FindClosest(solute, moved, 3.5)) {
		Te.Errorf("%d remaining waters is more than possible", n)
	}
	if HowManyRemain(solute, moved, map[int]bool{}, 3.5) != 0 {
		Te.Error("Nothing can remain from an empty set")
	}
	//water 3 moves away, water 4 stays.
	solute = []*chem.Atom{atom(1, "C1", "CHL", 0, 0, 0)}
	tracked := map[int]bool{3: true, 4: true}
	n = HowManyRemain(solute, []*chem.Atom{ow(3, 5, 0, 0), ow(4, 0, 1, 0), ow(5, 0, 0, 1)}, tracked, 2)
	if n != 1 {
		Te.Errorf("Only water 4 should remain, got %d waters", n)
	}
}

func TestPartition(Te *testing.T) {
	atoms := []*chem.Atom{
		atom(1, "C1", "CHL", 0, 0, 0),
		atom(2, "O3", "CHL", 0, 0, 0),
		atom(3, "HO3", "CHL", 0, 0, 0),
		atom(4, "C2", "CHL", 0, 0, 0),
	}
	rest, sep := Partition(atoms, []string{"HO3", "O3"})
	if len(rest) != 2 || rest[0].Id != 1 || rest[1].Id != 4 {
		Te.Errorf("Wrong rest: %v", rest)
	}
	if len(sep) != 2 || sep[0].Id != 2 || sep[1].Id != 3 {
		Te.Errorf("Wrong separate atoms: %v", sep)
	}
	if len(atoms) != 4 || atoms[1].Id != 2 {
		Te.Error("Partition modified its input")
	}
	rest, sep = Partition(atoms, nil)
	if len(rest) != 4 || len(sep) != 0 {
		Te.Errorf("Without names all the atoms should be in rest: %d %d", len(rest), len(sep))
	}
}

func TestOptions(Te *testing.T) {
	o := DefaultOptions()
	if o.Cutoff() != 4 {
		Te.Errorf("Default cutoff should be 4, is %f", o.Cutoff())
	}
	o.Cutoff(-1)
	if o.Cutoff(3.5) != 4 || o.Cutoff() != 3.5 {
		Te.Error("Cutoff not set correctly")
	}
	o.Separate([]string{"", " O3", "HO3 "})
	if s := o.Separate(); len(s) != 2 || s[0] != "O3" || s[1] != "HO3" {
		Te.Errorf("Wrong separate names: %q", s)
	}
	o.Separate([]string{""})
	if o.Separate() != nil {
		Te.Error("Empty names should disable the separate group")
	}
}
