/*
 * report.go, part of torscan.
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
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/kinetics/torscan"
)

var logger = log.New(os.Stderr, "torscan/zmat: ", log.LstdFlags)

//SetLogger replaces the logger used for warnings. l must not be nil.
func SetLogger(l *log.Logger) { logger = l }

//Markers of the converter report.
const (
	fatalMarker    = "terminate"
	zmatHeader     = "Z-Mat"
	linearMarker   = "molecule is"
	symmetryMarker = "symmetry number"
	betaMarker     = "Beta-scission"
	rotorMarker    = "Rot"
)

var (
	linearRe   = regexp.MustCompile(`molecule is (\w+)`)
	symmetryRe = regexp.MustCompile(`symmetry number = (\w+)`)
	betaRe     = regexp.MustCompile(`Beta-scission bonds: (\w+)`)
)

//Metadata holds the scalar properties of the molecule.
type Metadata struct {
	Linear         bool
	LinearityKnown bool //false if the report did not say
	SymmetryNumber int
	BetaScission   int
	Charge         int
	Multiplicity   int
	Stoichiometry  string
}

//Supplement takes charge, multiplicity and stoichiometry from mol.
func (M *Metadata) Supplement(mol torscan.Formulaer) {
	M.Charge = mol.Charge()
	M.Multiplicity = mol.Multi()
	M.Stoichiometry = mol.Formula()
}

//Report is what the converter report contains: the raw Z-matrix, the
//values of its coordinates, the rotors to scan and the molecule's metadata.
type Report struct {
	ZMatrix ZMatrix
	Coords  Coordinates
	Rotors  []string
	Meta    Metadata
}

type parserState int

const (
	beforeZMatrix parserState = iota
	inConnectivity
	inCoordinates
)

func (s parserState) String() string {
	return [...]string{"before Z-matrix", "in connectivity", "in coordinates"}[s]
}

type reportParser struct {
	state       parserState
	rep         *Report
	tokens      []string
	foundRotors bool
	symmetry    bool
}

//ParseReport reads the text report of the converter from r. id identifies
//the molecule and is used as stoichiometry until better information is
//supplied; charge and multiplicity default to 0 and 1. The Z-matrix in the
//returned report still has raw index references, see ZMatrix.Normalize.
//A report with the converter's termination marker anywhere gives a
//ConverterFailure error, missing sections give a MalformedReport one.
func ParseReport(r io.Reader, id string) (*Report, error) {
	p := &reportParser{rep: &Report{Meta: Metadata{Charge: 0, Multiplicity: 1, Stoichiometry: id, SymmetryNumber: 1}}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	nlines := 0
	for scanner.Scan() {
		nlines++
		line := scanner.Text()
		if strings.Contains(line, fatalMarker) {
			return nil, errDecorate(NewError(ConverterFailure, fmt.Sprintf("converter could not process the geometry of %s (line %d)", id, nlines)), "ParseReport")
		}
		if p.foundRotors {
			continue //only looking for the termination marker now
		}
		if err := p.parseLine(line); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ParseReport: line %d", nlines))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ParseReport: reading report for %s: %w", id, err)
	}
	if err := p.finish(nlines); err != nil {
		return nil, errDecorate(err, "ParseReport")
	}
	if !p.rep.Meta.LinearityKnown {
		logger.Printf("%s: the report does not announce linearity", id)
	}
	if !p.symmetry {
		logger.Printf("%s: the report has no symmetry number, using 1", id)
	}
	return p.rep, nil
}

func (p *reportParser) parseLine(line string) error {
	switch p.state {
	case beforeZMatrix:
		return p.header(line)
	case inConnectivity:
		if strings.TrimSpace(line) == "" {
			p.state = inCoordinates
			return nil
		}
		row, err := parseAtomRow(line)
		if err != nil {
			return err
		}
		p.rep.ZMatrix = append(p.rep.ZMatrix, row)
	case inCoordinates:
		if strings.Contains(line, rotorMarker) {
			return p.rotors(line)
		}
		p.tokens = append(p.tokens, strings.FieldsFunc(line, isCoordinateSeparator)...)
	}
	return nil
}

func (p *reportParser) header(line string) error {
	if strings.Contains(line, zmatHeader) {
		p.state = inConnectivity
		return nil
	}
	meta := &p.rep.Meta
	if strings.Contains(line, linearMarker) {
		if m := linearRe.FindStringSubmatch(line); m != nil {
			meta.Linear = m[1] != "nonlinear"
			meta.LinearityKnown = true
		}
	}
	if strings.Contains(line, symmetryMarker) {
		if m := symmetryRe.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 {
				return errorf(MalformedReport, "symmetry number %q is not a positive integer", m[1])
			}
			meta.SymmetryNumber = n
			p.symmetry = true
		}
	}
	if strings.Contains(line, betaMarker) {
		if m := betaRe.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return errorf(MalformedReport, "number of beta-scission bonds %q is not an integer", m[1])
			}
			meta.BetaScission = n
		}
	}
	return nil
}

//rotors reads the names after the colon of the rotor line.
func (p *reportParser) rotors(line string) error {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return errorf(MalformedReport, "rotor line %q has no colon", line)
	}
	rotors := make([]string, 0, 4)
	for _, name := range strings.Split(parts[1], ",") {
		if name = strings.TrimSpace(name); name != "" {
			rotors = append(rotors, name)
		}
	}
	p.rep.Rotors = rotors
	p.foundRotors = true
	return nil
}

func (p *reportParser) finish(nlines int) error {
	if nlines == 0 {
		return NewError(MalformedReport, "empty converter report")
	}
	if p.state == beforeZMatrix {
		return NewError(MalformedReport, "no Z-matrix section in the report")
	}
	if len(p.rep.ZMatrix) == 0 {
		return NewError(MalformedReport, "empty Z-matrix connectivity")
	}
	if !p.foundRotors {
		return errorf(MalformedReport, "no rotor list in the report (stopped %s)", p.state)
	}
	if len(p.tokens)%2 != 0 {
		return errorf(MalformedReport, "odd number of tokens (%d) in the coordinate block", len(p.tokens))
	}
	coords := make(Coordinates, 0, len(p.tokens)/2)
	for i := 0; i < len(p.tokens); i += 2 {
		c, err := parseCoordinateValue(p.tokens[i], p.tokens[i+1])
		if err != nil {
			return err
		}
		coords = append(coords, c)
	}
	p.rep.Coords = coords
	return nil
}

func isCoordinateSeparator(r rune) bool {
	return r == '=' || r == ',' || r == ' ' || r == '\t' || r == '\r'
}

//ReadReport parses the report from r and normalizes its Z-matrix.
func ReadReport(r io.Reader, id string) (*Report, error) {
	rep, err := ParseReport(r, id)
	if err != nil {
		return nil, err
	}
	if err := rep.ZMatrix.Normalize(); err != nil {
		return nil, errDecorate(err, "ReadReport")
	}
	return rep, nil
}

//ReadReportFile is ReadReport on the file name, which can be gzipped.
func ReadReportFile(name, id string) (*Report, error) {
	f, err := torscan.OpenMaybeGzip(name)
	if err != nil {
		return nil, fmt.Errorf("ReadReportFile: %w", err)
	}
	defer f.Close()
	return ReadReport(f, id)
}
