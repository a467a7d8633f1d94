/*
 * molecule_test.go, part of torscan.
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
	"strings"
	"testing"

	v3 "github.com/kinetics/torscan/v3"
)

func TestXYZIO(Te *testing.T) {
	mol, err := XYZFileRead("test/ethane.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 8 {
		Te.Errorf("read %d atoms, want 8", mol.Len())
	}
	if mol.Atom(7).Symbol != "H" || mol.Atom(7).ID != 8 {
		Te.Errorf("unexpected last atom %+v", mol.Atom(7))
	}
	if f := mol.Formula(); f != "C2H6" {
		Te.Errorf("formula %s, want C2H6", f)
	}
	multi, err := mol.GuessMulti()
	if err != nil {
		Te.Error(err)
	}
	if multi != 1 {
		Te.Errorf("multiplicity %d, want 1", multi)
	}
	lin, err := mol.IsLinear(DefaultLinearTolerance)
	if err != nil {
		Te.Error(err)
	}
	if lin {
		Te.Error("ethane reported as linear")
	}
}

//TestGzipGeometryHeader reads a gzipped file that uses the "Geometry N Angstrom" header.
func TestGzipGeometryHeader(Te *testing.T) {
	mol, err := XYZFileRead("test/co2.xyz.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if f := mol.Formula(); f != "CO2" {
		Te.Errorf("formula %s, want CO2", f)
	}
	lin, err := mol.IsLinear(DefaultLinearTolerance)
	if err != nil {
		Te.Error(err)
	}
	if !lin {
		Te.Error("CO2 not reported as linear")
	}
}

func TestGuessMulti(Te *testing.T) {
	mol, err := XYZFileRead("test/methyl.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	multi, err := mol.GuessMulti()
	if err != nil {
		Te.Fatal(err)
	}
	if multi != 2 {
		Te.Errorf("methyl radical multiplicity %d, want 2", multi)
	}
	mol.SetCharge(1)
	if multi, _ = mol.GuessMulti(); multi != 1 {
		Te.Errorf("methyl cation multiplicity %d, want 1", multi)
	}
	if lin, _ := mol.IsLinear(DefaultLinearTolerance); lin {
		Te.Error("planar methyl reported as linear")
	}
	mol.Atoms[0].Symbol = "Xx"
	if _, err := mol.GuessMulti(); err == nil {
		Te.Error("expected an error for an unknown element")
	}
}

func TestFormulaWithoutCarbon(Te *testing.T) {
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 0.96, 0, 0, -0.24, 0.93, 0})
	mol, err := NewMolecule([]*Atom{{Symbol: "O", ID: 1}, {Symbol: "H", ID: 2}, {Symbol: "H", ID: 3}}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if f := mol.Formula(); f != "H2O" {
		Te.Errorf("formula %s, want H2O", f)
	}
}

func TestXYZReadErrors(Te *testing.T) {
	bad := []string{
		"",
		"two\ncomment\nC 0 0 0\n",
		"2\ncomment\nC 0 0 0\n",
		"1\ncomment\nC 0 zero 0\n",
	}
	for _, v := range bad {
		if _, err := XYZRead(strings.NewReader(v)); err == nil {
			Te.Errorf("expected an error reading %q", v)
		}
	}
	if _, err := XYZFileRead("test/nothere.xyz"); err == nil {
		Te.Error("expected an error for a missing file")
	}
}
