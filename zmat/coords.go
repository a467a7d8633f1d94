/*
 * coords.go, part of torscan.
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

//CoordinateValue is a named bond length, angle or dihedral and its value.
type CoordinateValue struct {
	Name  string
	Value float64
	text  string //the value as the converter printed it
}

//NewCoordinateValue returns a coordinate with the given name and value.
func NewCoordinateValue(name string, value float64) CoordinateValue {
	return CoordinateValue{Name: name, Value: value}
}

func parseCoordinateValue(name, value string) (CoordinateValue, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return CoordinateValue{}, errorf(MalformedReport, "coordinate %s has a non-numeric value %q", name, value)
	}
	return CoordinateValue{Name: name, Value: v, text: value}, nil
}

//String returns the name and the value separated by a space. Values read
//from a report are reproduced exactly as they were read.
func (C CoordinateValue) String() string {
	if C.text != "" {
		return C.Name + " " + C.text
	}
	return C.Name + " " + strconv.FormatFloat(C.Value, 'f', -1, 64)
}

//Coordinates is an ordered set of coordinate values.
type Coordinates []CoordinateValue

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

//Index returns the position of the first coordinate called name, ignoring
//case and surrounding spaces, or -1.
func (C Coordinates) Index(name string) int {
	for i, c := range C {
		if sameName(c.Name, name) {
			return i
		}
	}
	return -1
}

//Remove returns the coordinates not called name, ignoring case and
//surrounding spaces. The receiver is not modified.
func (C Coordinates) Remove(name string) Coordinates {
	ret := make(Coordinates, 0, len(C))
	for _, c := range C {
		if !sameName(c.Name, name) {
			ret = append(ret, c)
		}
	}
	return ret
}
