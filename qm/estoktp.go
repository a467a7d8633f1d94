/*
 * estoktp.go, part of torscan.
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

package qm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/kinetics/torscan"
	"github.com/kinetics/torscan/zmat"
)

//Names of the files written by EStokTPHandle.BuildInput
const (
	TheoryFile  = "theory.dat"
	EStokTPFile = "estoktp.dat"
)

//WriteTheory writes the theory.dat keywords for the active methods to w.
//The ith method goes with the ith job. Methods beyond the last job are ignored,
//and jobs without a method are not written.
func WriteTheory(w io.Writer, jobs []string, methods []Method) error {
	bw := bufio.NewWriter(w)
	for i, job := range jobs {
		if i >= len(methods) || !methods[i].Active() {
			continue
		}
		extra := ""
		if i < len(theoryExtra) {
			extra = theoryExtra[i]
		}
		fmt.Fprintf(bw, "%s %s\n ", job, methods[i].Program)
		fmt.Fprintf(bw, "%s opt=internal\n", methods[i].Level)
		fmt.Fprintf(bw, " int=ultrafine nosym %s\n\n", extra)
	}
	bw.WriteString("End")
	return bw.Flush()
}

//WriteEStokTP writes the estoktp.dat job list for the molecule of
//stoichiometry stoich to w. The ith entry of EStokTPJobs is listed if the
//ith method is active.
func WriteEStokTP(w io.Writer, stoich string, methods []Method) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, " Stoichiometry\t%s", strings.ToUpper(stoich))
	bw.WriteString("\n Debug  2")
	for i, m := range methods {
		if i >= len(EStokTPJobs) {
			break
		}
		if m.Active() {
			bw.WriteString("\n " + EStokTPJobs[i])
		}
	}
	bw.WriteString("\nEnd")
	bw.WriteString("\n 10,6\n numprocll,numprochl\n")
	bw.WriteString(" 200MW  300MW\n gmemll gmemhl\n")
	return bw.Flush()
}

//EStokTPHandle builds the whole EStokTP input for a molecule: the scan file,
//theory.dat and estoktp.dat.
type EStokTPHandle struct {
	dir       string
	scanfile  string
	converter *ConverterHandle
	sampling  zmat.SamplingConfig
	jobs      []string
	lintol    float64
	charge    int
	multi     int
}

func NewEStokTPHandle() *EStokTPHandle {
	run := new(EStokTPHandle)
	run.SetDefaults()
	return run
}

//EStokTPHandle methods

//SetDefaults writes to the current directory with the default converter,
//sampling options and theory jobs.
func (E *EStokTPHandle) SetDefaults() {
	E.dir = "."
	E.scanfile = zmat.DefaultScanFile
	E.converter = NewConverterHandle()
	E.sampling.SetDefaults()
	E.jobs = TheoryJobs
	E.lintol = torscan.DefaultLinearTolerance
	E.charge = 0
	E.multi = 1
}

//SetDir sets the directory where the input files are written.
func (E *EStokTPHandle) SetDir(dir string) {
	E.dir = dir
}

//SetScanFile sets the name, relative to the output directory, of the scan file.
func (E *EStokTPHandle) SetScanFile(name string) {
	E.scanfile = name
}

func (E *EStokTPHandle) SetConverter(C *ConverterHandle) {
	E.converter = C
}

func (E *EStokTPHandle) Converter() *ConverterHandle {
	return E.converter
}

func (E *EStokTPHandle) SetSampling(cfg zmat.SamplingConfig) {
	E.sampling = cfg
}

//SetTheoryJobs sets the theory.dat keywords, one per method.
func (E *EStokTPHandle) SetTheoryJobs(jobs []string) {
	E.jobs = jobs
}

//SetChargeMulti sets the charge and multiplicity used when BuildInput is
//not given a molecule.
func (E *EStokTPHandle) SetChargeMulti(charge, multi int) {
	E.charge = charge
	E.multi = multi
}

//SetLinearTolerance sets the tolerance used to decide, from the geometry,
//whether a molecule is linear when the converter does not say.
func (E *EStokTPHandle) SetLinearTolerance(tol float64) {
	E.lintol = tol
}

//BuildInput runs the converter on xyzname and writes the scan file, theory.dat
//and estoktp.dat for the molecule id. If mol is not nil, charge, multiplicity and
//stoichiometry are taken from it, and so is the linearity when the converter
//report does not state it. Otherwise the charge and multiplicity set with
//SetChargeMulti are used. Nothing is left in the output directory if any of
//the files can't be written.
func (E *EStokTPHandle) BuildInput(ctx context.Context, id, xyzname string, mol *torscan.Molecule, methods []Method) (*zmat.Builder, error) {
	rep, err := E.converter.Run(ctx, xyzname, id)
	if err != nil {
		return nil, errDecorate(err, "EStokTPHandle.BuildInput "+id)
	}
	if mol == nil {
		rep.Meta.Charge = E.charge
		rep.Meta.Multiplicity = E.multi
	} else {
		rep.Meta.Supplement(mol)
		if !rep.Meta.LinearityKnown {
			lin, err := mol.IsLinear(E.lintol)
			if err != nil {
				return nil, errDecorate(err, "EStokTPHandle.BuildInput "+id)
			}
			log.Printf("qm: linearity of %s taken from the geometry: linear=%t", id, lin)
			rep.Meta.Linear = lin
			rep.Meta.LinearityKnown = true
		}
	}
	if err := os.MkdirAll(E.dir, 0755); err != nil {
		return nil, fmt.Errorf("EStokTPHandle.BuildInput: %w", err)
	}
	scanfile := filepath.Join(E.dir, E.scanfile)
	B, err := zmat.Build(rep, E.sampling, scanfile)
	if err != nil {
		return nil, errDecorate(err, "EStokTPHandle.BuildInput "+id)
	}
	theory := filepath.Join(E.dir, TheoryFile)
	if err := writeFile(theory, func(w io.Writer) error {
		return WriteTheory(w, E.jobs, methods)
	}); err != nil {
		os.Remove(scanfile)
		return nil, err
	}
	if err := writeFile(filepath.Join(E.dir, EStokTPFile), func(w io.Writer) error {
		return WriteEStokTP(w, rep.Meta.Stoichiometry, methods)
	}); err != nil {
		os.Remove(scanfile)
		os.Remove(theory)
		return nil, err
	}
	return B, nil
}

//writeFile fills name with write. The file is replaced atomically, so it is
//left untouched if anything fails.
func writeFile(name string, write func(io.Writer) error) error {
	pf, err := renameio.NewPendingFile(name, renameio.WithPermissions(0644), renameio.WithTempDir(filepath.Dir(name)))
	if err != nil {
		return fmt.Errorf("qm: %w", err)
	}
	defer pf.Cleanup()
	if err := write(pf); err != nil {
		return fmt.Errorf("qm: writing %s: %w", name, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("qm: %w", err)
	}
	return nil
}

//errDecorate adds caller to the decorations of err, if err is a torscan.Error.
//The zmat error kinds survive the trip.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(torscan.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
