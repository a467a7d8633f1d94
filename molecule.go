/*
 * molecule.go, part of torscan.
 *
 * Copyright 2024 The torscan Authors
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

package torscan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	v3 "github.com/kinetics/torscan/v3"
)

//DefaultLinearTolerance is the largest second singular value, in Angstrom,
//of the centred coordinates for which a geometry is considered linear.
const DefaultLinearTolerance = 1e-3

//Atom contains the information read for an atom.
type Atom struct {
	Symbol string
	ID     int //1-based position in the file it was read from
}

//Molecule contains the atoms and one set of coordinates for a system,
//plus its total charge and multiplicity.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	charge int
	multi  int
}

//NewMolecule makes a molecule with atoms and coords, which must have as
//many vectors as atoms there are. The multiplicity is set to 1.
func NewMolecule(atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if len(atoms) == 0 {
		return nil, CError{"No atoms given", []string{"NewMolecule"}}
	}
	if coords == nil || coords.NVecs() != len(atoms) {
		return nil, CError{fmt.Sprintf("Mismatched number of atoms (%d) and coordinates", len(atoms)), []string{"NewMolecule"}}
	}
	return &Molecule{Atoms: atoms, Coords: coords, multi: 1}, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int { return len(M.Atoms) }

//Atom returns the ith atom. It panics if i is out of range.
func (M *Molecule) Atom(i int) *Atom { return M.Atoms[i] }

//Charge returns the total charge of the molecule.
func (M *Molecule) Charge() int { return M.charge }

//SetCharge sets the total charge of the molecule.
func (M *Molecule) SetCharge(i int) { M.charge = i }

//Multi returns the multiplicity of the molecule.
func (M *Molecule) Multi() int { return M.multi }

//SetMulti sets the multiplicity of the molecule.
func (M *Molecule) SetMulti(i int) { M.multi = i }

//Formula returns the empirical formula of the molecule in Hill order:
//C first, then H, then the rest of the elements alphabetically. Without
//carbon every element, H included, goes alphabetically. Counts of 1 are omitted.
func (M *Molecule) Formula() string {
	counts := make(map[string]int)
	for _, at := range M.Atoms {
		counts[normalizeSymbol(at.Symbol)]++
	}
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		if counts["C"] > 0 && (s == "C" || s == "H") {
			continue
		}
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	if counts["C"] > 0 {
		head := []string{"C"}
		if counts["H"] > 0 {
			head = append(head, "H")
		}
		symbols = append(head, symbols...)
	}
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if counts[s] > 1 {
			b.WriteString(strconv.Itoa(counts[s]))
		}
	}
	return b.String()
}

//GuessMulti returns the lowest multiplicity compatible with the number of
//electrons in the molecule given its charge: 1 for an even number of electrons,
//2 for an odd one. An error is returned if an element is unknown or the charge
//leaves no electrons.
func (M *Molecule) GuessMulti() (int, error) {
	electrons := -M.charge
	for _, at := range M.Atoms {
		z, ok := AtomicNumber(at.Symbol)
		if !ok {
			return 0, CError{fmt.Sprintf("Unknown element %q", at.Symbol), []string{"GuessMulti"}}
		}
		electrons += z
	}
	if electrons < 0 {
		return 0, CError{fmt.Sprintf("Charge %d leaves %d electrons", M.charge, electrons), []string{"GuessMulti"}}
	}
	return electrons%2 + 1, nil
}

//IsLinear returns true if all the atoms of the molecule lie on a line, within tol.
//The test uses the singular values of the centred coordinates: for a linear
//geometry only the first one is different from zero. Molecules with
//less than 3 atoms are always linear.
func (M *Molecule) IsLinear(tol float64) (bool, error) {
	n := M.Coords.NVecs()
	if n < 3 {
		return true, nil
	}
	centred := v3.Zeros(n)
	centred.SubVec(M.Coords, M.Coords.Centroid())
	s, err := centred.SingularValues()
	if err != nil {
		return false, errDecorate(CError{err.Error(), nil}, "IsLinear")
	}
	return s[1] < tol, nil
}

//Errors

//CError is the error type returned by the functions in this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate is a helper function that asserts that the error
//implements Error and decorates the error with the caller's name before returning it.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
