/*
 * zmatrix_test.go, part of torscan.
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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

//rawZMatrix builds a Z-matrix from connectivity lines as the report has them.
func rawZMatrix(Te *testing.T, lines ...string) ZMatrix {
	Te.Helper()
	Z := make(ZMatrix, 0, len(lines))
	for _, l := range lines {
		row, err := parseAtomRow(l)
		if err != nil {
			Te.Fatal(err)
		}
		Z = append(Z, row)
	}
	return Z
}

func ethaneZMatrix(Te *testing.T) ZMatrix {
	return rawZMatrix(Te,
		"C",
		"C,1,R1",
		"H,1,R2,2,A2",
		"H,1,R3,2,A3,3,D3",
		"H,1,R4,2,A4,3,D4",
		"H,2,R5,1,A5,3,D5",
		"H,2,R6,1,A6,6,D6",
		"H,2,R7,1,A7,6,D7",
	)
}

func TestNormalize(Te *testing.T) {
	Z := ethaneZMatrix(Te)
	if err := Z.Validate(); err == nil {
		Te.Error("a raw Z-matrix passed validation")
	}
	if err := Z.Normalize(); err != nil {
		Te.Fatal(err)
	}
	want := [][]string{
		{"c1"},
		{"c2", "c1", "R1"},
		{"h3", "c1", "R2", "c2", "A2"},
		{"h4", "c1", "R3", "c2", "A3", "h3", "D3"},
		{"h5", "c1", "R4", "c2", "A4", "h3", "D4"},
		{"h6", "c2", "R5", "c1", "A5", "h3", "D5"},
		{"h7", "c2", "R6", "c1", "A6", "h6", "D6"},
		{"h8", "c2", "R7", "c1", "A7", "h6", "D7"},
	}
	got := make([][]string, 0, len(Z))
	for _, row := range Z {
		got = append(got, row.Fields)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		Te.Errorf("normalized Z-matrix mismatch (-want +got):\n%s", diff)
	}
	if err := Z.Validate(); err != nil {
		Te.Error(err)
	}
	//every reference is the label of an earlier row
	for i, row := range Z {
		for _, f := range refFields {
			if f >= len(row.Fields) {
				continue
			}
			found := false
			for _, prev := range Z[:i] {
				if prev.Label() == row.Fields[f] {
					found = true
				}
			}
			if !found {
				Te.Errorf("row %d: reference %s is not an earlier label", i+1, row.Fields[f])
			}
		}
	}
	if s := Z[3].String(); s != "h4 c1 R3 c2 A3 h3 D3 " {
		Te.Errorf("row written as %q", s)
	}
}

func TestNormalizeBadReferences(Te *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"self reference", []string{"C", "C,2,R1"}},
		{"forward reference", []string{"C", "C,1,R1", "H,3,R2,1,A2"}},
		{"out of range", []string{"C", "C,0,R1"}},
		{"not a number", []string{"C", "C,one,R1"}},
	}
	for _, c := range cases {
		Z := rawZMatrix(Te, c.rows...)
		if err := Z.Normalize(); !IsKind(err, MalformedReport) {
			Te.Errorf("%s: expected a malformed report error, got %v", c.name, err)
		}
	}
}

func TestParseAtomRow(Te *testing.T) {
	row, err := parseAtomRow(" Cl , 1 , R1 ")
	if err != nil {
		Te.Fatal(err)
	}
	if row.Element != "Cl" || row.BondRef() != "1" || row.AngleRef() != "" || row.Dihedral() != "" {
		Te.Errorf("unexpected row %+v", row)
	}
	for _, bad := range []string{"C,1", "H,1,R1,2,A1,3,D1,4", ",1,R1"} {
		if _, err := parseAtomRow(bad); err == nil {
			Te.Errorf("expected an error for %q", bad)
		}
	}
}
