/*
 * scanfile.go, part of torscan.
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
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
)

//DefaultScanFile is the name EStokTP expects for the scan file of the first reactant.
const DefaultScanFile = "reac1.dat"

//Builder writes the EStokTP scan file (reac1.dat) for a report.
//Every line of the file is read by position, so the layout must not change.
type Builder struct {
	rep     *Report
	cfg     SamplingConfig
	periods []int
	frozen  Coordinates
}

//NewBuilder prepares the scan file for rep, whose Z-matrix must be
//normalized. It estimates the periodicity of every rotor and removes the
//scanned coordinates from the frozen ones. rep is not modified.
//An empty Z-matrix is an error, so no file is ever written for a
//report the converter failed on.
func NewBuilder(rep *Report, cfg SamplingConfig) (*Builder, error) {
	if rep == nil || len(rep.ZMatrix) == 0 {
		return nil, errDecorate(NewError(MalformedReport, "empty Z-matrix, nothing to build"), "NewBuilder")
	}
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("NewBuilder: %w", err)
	}
	if err := rep.ZMatrix.Validate(); err != nil {
		return nil, errDecorate(err, "NewBuilder")
	}
	B := &Builder{rep: rep, cfg: cfg, periods: make([]int, len(rep.Rotors)), frozen: rep.Coords}
	for i, rotor := range rep.Rotors {
		p, err := rep.ZMatrix.Periodicity(rotor)
		if err != nil {
			return nil, errDecorate(err, "NewBuilder")
		}
		if p <= 0 {
			return nil, errDecorate(errorf(ZeroPeriodicity, "rotor %s has periodicity %d", rotor, p), "NewBuilder")
		}
		B.periods[i] = p
		B.frozen = B.frozen.Remove(rotor)
	}
	return B, nil
}

//Periodicities returns the periodicity of each rotor, in the order of the report.
func (B *Builder) Periodicities() []int {
	return append([]int(nil), B.periods...)
}

//Frozen returns the coordinates that are not scanned.
func (B *Builder) Frozen() Coordinates {
	return append(Coordinates(nil), B.frozen...)
}

//ScanMax returns the upper limit of the scan of the ith rotor.
func (B *Builder) ScanMax(i int) float64 {
	return B.cfg.ScanInterval / float64(B.periods[i])
}

//Bytes returns the contents of the scan file. Calling it again gives
//exactly the same bytes.
func (B *Builder) Bytes() []byte {
	var buf bytes.Buffer
	meta := B.rep.Meta
	rotors := B.rep.Rotors
	natom := len(B.rep.ZMatrix)

	//Stochastic geometry search
	buf.WriteString("nosmp dthresh ethresh\n")
	fmt.Fprintf(&buf, "%d  1.0  0.00001\n", B.cfg.SamplingPoints)

	//Torsional scan
	buf.WriteString("\nntau number of sampled coordinates\n")
	fmt.Fprintf(&buf, "%d\n", len(rotors))
	buf.WriteString(" -->nametau, taumin, taumax\n")
	for i, rotor := range rotors {
		fmt.Fprintf(&buf, "%s 0 %s\n", rotor, pyFloat(B.ScanMax(i)))
	}

	//Hindered rotors
	buf.WriteString("\nnhind\n")
	fmt.Fprintf(&buf, "%d\n", len(rotors))
	buf.WriteString(" -->namehind,hindmin,hindmax,nhindsteps,period\n")
	for i, rotor := range rotors {
		fmt.Fprintf(&buf, "%s 0 %s %d %d\n", rotor, pyFloat(B.ScanMax(i)), B.cfg.ScanSteps, B.periods[i])
	}

	//Size and linearity
	buf.WriteString("\nnatom natomt ilin\n")
	fmt.Fprintf(&buf, "%d %d %d\n", natom, natom, linearCode(meta.Linear))

	//Z-matrix
	buf.WriteString("\ncharge  spin  atomlabel\n")
	fmt.Fprintf(&buf, "%d %d\n", meta.Charge, meta.Multiplicity)
	for _, row := range B.rep.ZMatrix {
		buf.WriteString(row.String())
		buf.WriteByte('\n')
	}

	//Frozen internal coordinates
	buf.WriteString("\nintcoor\n")
	for _, c := range B.frozen {
		buf.WriteString(c.String())
		buf.WriteByte('\n')
	}

	//Symmetry factor and electronic states
	fmt.Fprintf(&buf, "\nSymmetryFactor\n%d\n", meta.SymmetryNumber)
	buf.WriteString("\nnelec\n1\n 0.  1.\n\nend\n")
	return buf.Bytes()
}

//WriteTo writes the scan file to w.
func (B *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(B.Bytes())
	return int64(n), err
}

//WriteFile writes the scan file to name. The contents go first to a temporary
//file in the same directory, which replaces name only if everything went
//well, and is removed otherwise.
func (B *Builder) WriteFile(name string) error {
	err := renameio.WriteFile(name, B.Bytes(), 0644, renameio.WithTempDir(filepath.Dir(name)))
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	return nil
}

//Build prepares and writes the scan file for rep in the file name.
func Build(rep *Report, cfg SamplingConfig, name string) (*Builder, error) {
	B, err := NewBuilder(rep, cfg)
	if err != nil {
		return nil, err
	}
	if err := B.WriteFile(name); err != nil {
		return nil, err
	}
	return B, nil
}

//The linearity code EStokTP uses: 1 for linear molecules, 0 otherwise.
func linearCode(linear bool) int {
	if linear {
		return 1
	}
	return 0
}

//pyFloat formats v with the shortest representation that reads back
//exactly, always with a decimal point ("120.0", "51.42857142857143").
func pyFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
