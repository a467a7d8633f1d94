/*
 * interfaces.go, part of torscan.
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

//ChargeMultier gives the total charge and the multiplicity of a system.
type ChargeMultier interface {
	Charge() int
	Multi() int
}

//Formulaer is a ChargeMultier that also knows its empirical formula.
type Formulaer interface {
	ChargeMultier
	Formula() string
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice resulting from the current call. An empty string adds nothing.
	//The slice contains the functions in the calling stack, optionally as "FunctionName: Extra info"
}
