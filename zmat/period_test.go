/*
 * period_test.go, part of torscan.
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

import "testing"

func TestPeriodicity(Te *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		rotor string
		want  int
	}{
		{
			//methyl against a hydroxyl: 3 hydrogens on one side, 1 on the other.
			name: "methanol",
			rows: []string{
				"C",
				"O,1,R1",
				"H,2,R2,1,A2",
				"H,1,R3,2,A3,3,D3",
				"H,1,R4,2,A4,3,D4",
				"H,1,R5,2,A5,3,D5",
			},
			rotor: "D3",
			want:  3,
		},
		{
			name: "ethane, lower case rotor name",
			rows: []string{
				"C",
				"C,1,R1",
				"H,1,R2,2,A2",
				"H,1,R3,2,A3,3,D3",
				"H,1,R4,2,A4,3,D4",
				"H,2,R5,1,A5,3,D5",
				"H,2,R6,1,A6,6,D6",
				"H,2,R7,1,A7,6,D7",
			},
			rotor: " d5",
			want:  3,
		},
		{
			//hydroxyl against a carbonyl carbon with one hydrogen.
			name: "formic acid",
			rows: []string{
				"C",
				"O,1,R1",
				"O,1,R2,2,A2",
				"H,1,R3,2,A3,3,D3",
				"H,3,R4,1,A4,2,D4",
			},
			rotor: "D4",
			want:  1,
		},
		{
			//with axis atom c1, the hydrogens bonded to c10 count for it too,
			//and so does the hg13 row.
			name: "labels matched as substrings",
			rows: []string{
				"C",
				"C,1,R1",
				"H,1,R2,2,A2",
				"H,1,R3,2,A3,3,D4",
				"C,2,R4,1,A4,3,D5",
				"C,5,R5,2,A5,1,D6",
				"H,2,R6,1,A6,3,D7",
				"H,5,R7,2,A7,1,D8",
				"H,6,R8,5,A8,2,D9",
				"C,6,R9,5,A9,2,D10",
				"H,10,R10,6,A10,5,D11",
				"H,10,R11,6,A11,5,D12",
				"Hg,10,R12,6,A12,5,D13",
			},
			rotor: "D4",
			want:  5,
		},
		{
			//the row defining D1 is preferred over D10, D11...
			name: "exact rotor name first",
			rows: []string{
				"C",
				"C,1,R1",
				"H,1,R2,2,A2",
				"H,1,R3,2,A3,3,D1",
				"C,2,R4,1,A4,3,D5",
				"C,5,R5,2,A5,1,D6",
				"F,2,R6,1,A6,3,D7",
				"F,5,R7,2,A7,1,D8",
				"F,6,R8,5,A8,2,D9",
				"C,6,R9,5,A9,2,D10",
				"F,10,R10,6,A10,5,D11",
			},
			rotor: "d1",
			want:  2,
		},
		{
			//no hydrogens at all, raised to 1.
			name: "tetrafluoroethylene-like",
			rows: []string{
				"C",
				"C,1,R1",
				"F,1,R2,2,A2",
				"F,1,R3,2,A3,3,D3",
				"F,2,R4,1,A4,3,D4",
				"F,2,R5,1,A5,5,D5",
			},
			rotor: "D4",
			want:  1,
		},
	}
	for _, c := range cases {
		Z := rawZMatrix(Te, c.rows...)
		if err := Z.Normalize(); err != nil {
			Te.Fatal(err)
		}
		got, err := Z.Periodicity(c.rotor)
		if err != nil {
			Te.Errorf("%s: %v", c.name, err)
			continue
		}
		if got != c.want {
			Te.Errorf("%s: periodicity %d, want %d", c.name, got, c.want)
		}
	}
}

//TestRotorBySubstring checks that a rotor name only found inside a longer
//dihedral name still locates that row.
func TestRotorBySubstring(Te *testing.T) {
	Z := ethaneZMatrix(Te)
	if err := Z.Normalize(); err != nil {
		Te.Fatal(err)
	}
	if k := Z.RotorRow("d"); k != 3 {
		Te.Errorf("rotor d found in row %d, want 3", k)
	}
	if k := Z.RotorRow("D6"); k != 6 {
		Te.Errorf("rotor D6 found in row %d, want 6", k)
	}
}

func TestUnknownRotor(Te *testing.T) {
	Z := ethaneZMatrix(Te)
	if err := Z.Normalize(); err != nil {
		Te.Fatal(err)
	}
	for _, rotor := range []string{"D9", "R1", " "} {
		if _, err := Z.Periodicity(rotor); !IsKind(err, UnknownRotor) {
			Te.Errorf("%s: expected an unknown rotor error, got %v", rotor, err)
		}
	}
}
