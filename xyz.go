/*
 * xyz.go, part of torscan.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/kinetics/torscan/v3"
	"github.com/klauspost/compress/gzip"
)

//OpenMaybeGzip opens name for reading. Files ending in ".gz" are
//decompressed on the fly. Closing the returned ReadCloser closes the file.
func OpenMaybeGzip(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &gzipFile{Reader: gz, f: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (G *gzipFile) Close() error {
	err := G.Reader.Close()
	if err2 := G.f.Close(); err == nil {
		err = err2
	}
	return err
}

//XYZFileRead reads the first frame of the xyz file xyzname (which can be gzipped)
//and returns a molecule with charge 0 and multiplicity 1.
func XYZFileRead(xyzname string) (*Molecule, error) {
	xyzfile, err := OpenMaybeGzip(xyzname)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "XYZFileRead"}}
	}
	defer xyzfile.Close()
	mol, err := XYZRead(xyzfile)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead "+xyzname)
	}
	return mol, nil
}

//XYZRead reads the first frame of an xyz file from xyzp. Besides the plain
//atom-count first line, the "Geometry <natoms> Angstrom" header is accepted.
func XYZRead(xyzp io.Reader) (*Molecule, error) {
	xyz := bufio.NewScanner(xyzp)
	if !xyz.Scan() {
		return nil, CError{"Empty XYZ file", []string{"XYZRead"}}
	}
	natoms, err := xyzAtomCount(xyz.Text())
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	xyz.Scan() //the comment line
	atoms := make([]*Atom, 0, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, CError{fmt.Sprintf("Expected %d atoms, found %d", natoms, i), []string{"XYZRead"}}
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, CError{fmt.Sprintf("Line for atom %d ill formed", i+1), []string{"XYZRead"}}
		}
		for _, f := range fields[1:4] {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("Atom %d: %s", i+1, err.Error()), []string{"strconv.ParseFloat", "XYZRead"}}
			}
			coords = append(coords, c)
		}
		atoms = append(atoms, &Atom{Symbol: normalizeSymbol(fields[0]), ID: i + 1})
	}
	if err := xyz.Err(); err != nil {
		return nil, CError{err.Error(), []string{"bufio.Scanner", "XYZRead"}}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, CError{err.Error(), []string{"v3.NewMatrix", "XYZRead"}}
	}
	return NewMolecule(atoms, mcoords)
}

func xyzAtomCount(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 3 && fields[0] == "Geometry" {
		fields = fields[1:2]
	}
	if len(fields) != 1 {
		return 0, CError{fmt.Sprintf("Ill formatted XYZ header %q", line), []string{"xyzAtomCount"}}
	}
	natoms, err := strconv.Atoi(fields[0])
	if err != nil || natoms < 1 {
		return 0, CError{fmt.Sprintf("Ill formatted XYZ header %q", line), []string{"strconv.Atoi", "xyzAtomCount"}}
	}
	return natoms, nil
}
