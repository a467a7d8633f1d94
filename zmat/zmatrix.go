/*
 * zmatrix.go, part of torscan.
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
	"strconv"
	"strings"
)

//Positions of the fields in an AtomRow.
const (
	labelField = iota
	bondRef
	bondName
	angleRef
	angleName
	dihedralRef
	dihedralName
	maxFields
)

var refFields = [...]int{bondRef, angleRef, dihedralRef}

//AtomRow is one line of a Z-matrix:
//	label [bondRef bondName [angleRef angleName [dihedralRef dihedralName]]]
//The reference fields hold 1-based row indexes as read from the converter
//report, and the label of the referenced row after ZMatrix.Normalize.
//A reference always points to an earlier row.
type AtomRow struct {
	Element string
	Fields  []string
}

//parseAtomRow reads a comma-separated connectivity line.
func parseAtomRow(line string) (*AtomRow, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	if len(fields)%2 == 0 || len(fields) > maxFields {
		return nil, errorf(MalformedReport, "connectivity line %q has %d fields, want 1, 3, 5 or 7", line, len(fields))
	}
	if fields[labelField] == "" {
		return nil, errorf(MalformedReport, "connectivity line %q has no element", line)
	}
	return &AtomRow{Element: fields[labelField], Fields: fields}, nil
}

//Label returns the row's own label (the element before normalization).
func (R *AtomRow) Label() string { return R.Fields[labelField] }

//BondRef returns the bond reference of the row, or "" for the first row.
func (R *AtomRow) BondRef() string { return R.field(bondRef) }

//AngleRef returns the angle reference of the row, or "".
func (R *AtomRow) AngleRef() string { return R.field(angleRef) }

//Dihedral returns the name of the dihedral coordinate the row defines, or "".
func (R *AtomRow) Dihedral() string { return R.field(dihedralName) }

func (R *AtomRow) field(i int) string {
	if i >= len(R.Fields) {
		return ""
	}
	return R.Fields[i]
}

//HydrogenLabel returns true if the row's label begins with "h". This is the
//hydrogen test of the periodicity estimate, which also takes "hg" and "he"
//rows as hydrogens.
func (R *AtomRow) HydrogenLabel() bool {
	return strings.HasPrefix(strings.ToLower(R.Label()), "h")
}

//String returns the row as written in the geometry block: every field
//followed by a space.
func (R *AtomRow) String() string {
	var b strings.Builder
	for _, f := range R.Fields {
		b.WriteString(f)
		b.WriteByte(' ')
	}
	return b.String()
}

//ZMatrix is the sequence of rows. Positions in the slice play
//the role of pointers between rows.
type ZMatrix []*AtomRow

//Normalize labels each row as its lower-cased element followed by its
//1-based position, and replaces every reference index by the label of the
//row it points to. Rows are processed in order, so a reference always
//resolves to an already-labeled row. It fails on references that are not
//integers or do not point to an earlier row.
func (Z ZMatrix) Normalize() error {
	for i, row := range Z {
		row.Fields[labelField] = rowLabel(row.Element, i)
		for _, f := range refFields {
			if f >= len(row.Fields) {
				break
			}
			ref, err := strconv.Atoi(row.Fields[f])
			if err != nil {
				return errorf(MalformedReport, "row %d: reference %q is not a row number", i+1, row.Fields[f])
			}
			if ref < 1 || ref > i {
				return errorf(MalformedReport, "row %d: reference %d does not point to an earlier row", i+1, ref)
			}
			row.Fields[f] = Z[ref-1].Label()
		}
	}
	return nil
}

//Validate checks that Z is normalized: every row carries its own label and
//every reference is the label of an earlier row.
func (Z ZMatrix) Validate() error {
	earlier := make(map[string]bool, len(Z))
	for i, row := range Z {
		if len(row.Fields)%2 == 0 || len(row.Fields) > maxFields {
			return errorf(MalformedReport, "row %d has %d fields", i+1, len(row.Fields))
		}
		if row.Label() != rowLabel(row.Element, i) {
			return errorf(MalformedReport, "row %d is labeled %q, want %q", i+1, row.Label(), rowLabel(row.Element, i))
		}
		for _, f := range refFields {
			if f < len(row.Fields) && !earlier[row.Fields[f]] {
				return errorf(MalformedReport, "row %d: reference %q is not an earlier label", i+1, row.Fields[f])
			}
		}
		earlier[row.Label()] = true
	}
	return nil
}

func rowLabel(element string, i int) string {
	return strings.ToLower(element) + strconv.Itoa(i+1)
}
