/*
 * main_test.go, part of torscan.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kinetics/torscan/qm"
	"github.com/kinetics/torscan/zmat"
)

func testDir(Te *testing.T) string {
	Te.Helper()
	dir, err := filepath.Abs("../../test")
	if err != nil {
		Te.Fatal(err)
	}
	Te.Setenv("TORSCAN_TEST_DIR", dir)
	return dir
}

func TestReadConfig(Te *testing.T) {
	dir := testDir(Te)
	conf, err := ReadConfig(filepath.Join(dir, "torscan.toml"))
	if err != nil {
		Te.Fatal(err)
	}
	want := &Config{
		Sampling:  zmat.SamplingConfig{SamplingPoints: 10, ScanInterval: 360, ScanSteps: 6},
		Converter: ConverterConfig{Command: filepath.Join(dir, "fake_converter.sh")},
		Methods: []qm.Method{
			{Program: "g09", Level: "b3lyp/6-31+g(d,p)"},
			{Program: "g09", Level: "b3lyp/6-311+g(d,p)"},
			{Program: "g09"},
			{Program: "molpro", Level: "ccsd(t)/cc-pvtz"},
		},
		Output: OutputConfig{Dir: "ethane", ScanFile: zmat.DefaultScanFile},
	}
	if diff := cmp.Diff(want, conf); diff != "" {
		Te.Errorf("configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestReadConfigErrors(Te *testing.T) {
	tmp := Te.TempDir()
	for name, text := range map[string]string{
		"negative.toml": "[sampling]\nnsteps = -2\n",
		"broken.toml":   "[sampling\nnsteps = 2\n",
		"methods.toml":  strings.Repeat("[[methods]]\nlevel = \"x\"\n", len(qm.EStokTPJobs)+1),
	} {
		path := filepath.Join(tmp, name)
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			Te.Fatal(err)
		}
		if _, err := ReadConfig(path); err == nil {
			Te.Errorf("%s: expected an error", name)
		}
	}
	if _, err := ReadConfig(filepath.Join(tmp, "nothere.toml")); err == nil {
		Te.Error("expected an error for a missing file")
	}
}

func TestFlagsOverrideConfig(Te *testing.T) {
	dir := testDir(Te)
	cmd := newRootCmd()
	opts := new(options)
	cmd.Flags().Set("nsteps", "8")
	cmd.Flags().Set("dir", "elsewhere")
	opts.config = filepath.Join(dir, "torscan.toml")
	opts.nsteps = 8
	opts.dir = "elsewhere"
	conf, err := settings(cmd, opts)
	if err != nil {
		Te.Fatal(err)
	}
	if conf.Sampling.ScanSteps != 8 || conf.Output.Dir != "elsewhere" {
		Te.Errorf("flags not applied: %+v", conf)
	}
	//not given in the command line, so the file's values stay
	if conf.Sampling.SamplingPoints != 10 || conf.Sampling.ScanInterval != 360 {
		Te.Errorf("file values lost: %+v", conf.Sampling)
	}
}

func TestTorscan(Te *testing.T) {
	dir := testDir(Te)
	out := filepath.Join(Te.TempDir(), "CC")
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "torscan.toml"),
		"--xyz", filepath.Join(dir, "ethane.xyz"),
		"--nsamps", "5",
		"--nsteps", "4",
		"--dir", out,
		"-q",
		"CC",
	})
	if err := cmd.Execute(); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "periodicities [3]") {
		Te.Errorf("unexpected output %q", stdout.String())
	}
	golden, err := os.ReadFile(filepath.Join(dir, "ethane_reac1.dat"))
	if err != nil {
		Te.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(out, zmat.DefaultScanFile))
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(string(golden), string(got)); diff != "" {
		Te.Errorf("reac1.dat mismatch (-want +got):\n%s", diff)
	}
	est, err := os.ReadFile(filepath.Join(out, qm.EStokTPFile))
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(string(est), " Stoichiometry\tC2H6\n Debug  2\n Opt_Reac1\n Opt_Reac1_1\n HL_Reac1\nEnd") {
		Te.Errorf("unexpected estoktp.dat:\n%s", est)
	}
}

func TestTorscanConverterFailure(Te *testing.T) {
	dir := testDir(Te)
	out := filepath.Join(Te.TempDir(), "broken")
	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--converter", filepath.Join(dir, "fake_converter.sh"), "--dir", out, "-q", "broken"})
	err := cmd.Execute()
	if !zmat.IsKind(err, zmat.ConverterFailure) {
		Te.Errorf("expected a converter failure, got %v", err)
	}
	if !strings.Contains(stderr.String(), "could not process") {
		Te.Errorf("the error was not reported: %q", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		Te.Errorf("output written after a failure: %v", err)
	}
}

//TestTorscanWithoutGeometry gives no readable XYZ file: the charge and
//multiplicity flags must still reach reac1.dat.
func TestTorscanWithoutGeometry(Te *testing.T) {
	dir := testDir(Te)
	out := filepath.Join(Te.TempDir(), "CC")
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"--converter", filepath.Join(dir, "fake_converter.sh"),
		"--xyz", filepath.Join(Te.TempDir(), "ethane.xyz"),
		"--charge=-1",
		"--mult", "2",
		"--dir", out,
		"-q",
		"CC",
	})
	if err := cmd.Execute(); err != nil {
		Te.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(out, zmat.DefaultScanFile))
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(got), "charge  spin  atomlabel\n-1 2\n") {
		Te.Errorf("charge and multiplicity flags lost:\n%s", got)
	}
}
