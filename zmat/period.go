/*
 * period.go, part of torscan.
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

package zmat

import "strings"

//RotorRow returns the position of the row whose dihedral is called rotor,
//ignoring case and surrounding spaces. If no dihedral has exactly that name,
//the first row whose dihedral name contains rotor is returned. It returns -1
//if there is no such row or rotor is blank.
func (Z ZMatrix) RotorRow(rotor string) int {
	rotor = strings.ToLower(strings.TrimSpace(rotor))
	if rotor == "" {
		return -1
	}
	partial := -1
	for i, row := range Z {
		d := strings.ToLower(row.Dihedral())
		if d == "" {
			continue
		}
		if d == rotor {
			return i
		}
		if partial < 0 && strings.Contains(d, rotor) {
			partial = i
		}
	}
	return partial
}

//Periodicity estimates the periodicity (internal symmetry number) of the
//rotor by counting hydrogens. The rotor axis is the bond between the atoms
//the rotor's row uses as bond and angle references. A row whose bond
//reference contains the first axis label and whose own label begins with
//"h" counts for the first atom; otherwise, a row whose bond reference
//contains the second label counts for the second one. The larger count is
//the periodicity, so a methyl group gives 3.
//This is a rough estimate, not a point group calculation. Labels are matched
//as substrings, so with the axis atom c1 the hydrogens on c10, c11... are
//counted too, and a row matching both axis atoms only counts for the first.
//A result of 0 (no hydrogens on either side) is raised to 1 with a warning.
//Z must be normalized.
func (Z ZMatrix) Periodicity(rotor string) (int, error) {
	k := Z.RotorRow(rotor)
	if k < 0 {
		return 0, errDecorate(errorf(UnknownRotor, "no Z-matrix row defines the dihedral %q", strings.TrimSpace(rotor)), "Periodicity")
	}
	atom1, atom2 := Z[k].BondRef(), Z[k].AngleRef()
	var sym1, sym2 int
	for _, row := range Z[1:] {
		ref := row.BondRef()
		if strings.Contains(ref, atom1) {
			if row.HydrogenLabel() {
				sym1++
			}
		} else if strings.Contains(ref, atom2) {
			if row.HydrogenLabel() {
				sym2++
			}
		}
	}
	period := sym1
	if sym2 > period {
		period = sym2
	}
	if period == 0 {
		logger.Printf("rotor %s: no hydrogens on %s or %s, using periodicity 1", rotor, atom1, atom2)
		period = 1
	}
	return period, nil
}
