/*
 * converter.go, part of torscan.
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
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kinetics/torscan/zmat"
)

//ConverterHandle runs the program that turns a cartesian geometry into
//a Z-matrix report (test_chem, by default).
type ConverterHandle struct {
	command    string
	inputname  string
	scratchdir string
}

func NewConverterHandle() *ConverterHandle {
	run := new(ConverterHandle)
	run.SetDefaults()
	return run
}

//ConverterHandle methods

//SetDefaults sets the command to $TORSCAN_CONVERTER or, if that is not
//defined, to test_chem in the PATH. Scratch files go to the system's
//temporary directory.
func (C *ConverterHandle) SetDefaults() {
	C.command = os.ExpandEnv("${TORSCAN_CONVERTER}")
	if C.command == "" {
		C.command = "test_chem"
	}
	C.inputname = "torscan"
	C.scratchdir = ""
}

func (C *ConverterHandle) Command() string {
	return C.command
}

func (C *ConverterHandle) SetCommand(name string) {
	C.command = name
}

//SetName sets the prefix of the scratch file names.
func (C *ConverterHandle) SetName(name string) {
	C.inputname = name
}

//SetScratchDir sets the directory for the scratch files. "" means the
//system's temporary directory.
func (C *ConverterHandle) SetScratchDir(dir string) {
	C.scratchdir = dir
}

//Run runs the converter on the cartesian file xyzname and reads its report.
//The Z-matrix of the returned report is already normalized and id is used as
//its stoichiometry. The converter's output goes to a scratch file which is
//removed before returning, whatever happens. A converter that prints nothing,
//exits with an error or announces it could not process the geometry gives a
//zmat.ConverterFailure error. Cancelling ctx kills the converter.
func (C *ConverterHandle) Run(ctx context.Context, xyzname, id string) (*zmat.Report, error) {
	scratch, err := os.CreateTemp(C.scratchdir, C.inputname+"-*.out")
	if err != nil {
		return nil, fmt.Errorf("ConverterHandle.Run: %w", err)
	}
	defer os.Remove(scratch.Name())
	defer scratch.Close()

	var stderr bytes.Buffer
	command := exec.CommandContext(ctx, C.command, xyzname)
	command.Stdout = scratch
	command.Stderr = &stderr
	runerr := command.Run()

	info, err := scratch.Stat()
	if err != nil {
		return nil, fmt.Errorf("ConverterHandle.Run: %w", err)
	}
	if info.Size() == 0 {
		msg := fmt.Sprintf("%s produced no output for %s; check that the cartesian file exists", C.command, xyzname)
		if runerr != nil {
			msg = fmt.Sprintf("%s (%v: %s)", msg, runerr, strings.TrimSpace(stderr.String()))
		}
		return nil, zmat.NewError(zmat.ConverterFailure, msg)
	}
	if _, err := scratch.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("ConverterHandle.Run: %w", err)
	}
	rep, err := zmat.ReadReport(scratch, id)
	if err != nil {
		return nil, errDecorate(err, "ConverterHandle.Run "+xyzname)
	}
	if runerr != nil {
		return nil, zmat.NewError(zmat.ConverterFailure, fmt.Sprintf("%s exited with %v: %s", C.command, runerr, strings.TrimSpace(stderr.String())))
	}
	return rep, nil
}
