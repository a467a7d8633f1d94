/*
 * atomicdata.go, part of torscan.
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

import "strings"

//A map for assigning atomic numbers to elements.
//Only the first four periods are present, which covers what
//gas-phase kinetics usually deals with.
var symbolNumber = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Ge": 32,
	"As": 33,
	"Se": 34,
	"Br": 35,
	"Kr": 36,
	"I":  53,
}

//normalizeSymbol puts symbol in the usual capitalization ("CL" -> "Cl").
func normalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return symbol
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

//AtomicNumber returns the atomic number of the element with the given symbol,
//and false if the element is not known.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := symbolNumber[normalizeSymbol(symbol)]
	return z, ok
}
