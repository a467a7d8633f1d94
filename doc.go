/*
 * doc.go, part of torscan.
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

/*Package torscan prepares the input of torsional scans for the EStokTP
kinetics code. This package provides the molecule structure and the XYZ
reader the rest of the library works on.


	**torscan packages**


    torscan (this package): Molecule, XYZ files, empirical formulas,
	multiplicity guesses and a linearity test on the cartesian geometry.

    zmat: reads the text report of the cartesian-to-internal coordinate
	converter, turns it into a labeled Z-matrix, estimates the periodicity
	of each rotor and writes the reac1.dat scan file.

    qm: runs the external converter and writes the theory.dat and
	estoktp.dat job files.

    v3: a Nx3 matrix type for coordinates, based on gonum.

The periodicity estimated for each rotor is a hydrogen-counting heuristic,
not a point group calculation. It gives the right answer for methyl-like
rotors, which is what EStokTP needs most of the time.

*/
package torscan
