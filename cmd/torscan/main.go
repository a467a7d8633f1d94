/*
 * main.go, part of torscan.
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

//torscan builds the EStokTP input (reac1.dat, theory.dat and estoktp.dat)
//for the torsional scans of a molecule, from its cartesian coordinates.
//
//	torscan [flags] <identifier>
//
//The coordinates are read from <identifier>.xyz unless --xyz is given.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kinetics/torscan"
	"github.com/kinetics/torscan/qm"
	"github.com/kinetics/torscan/zmat"
)

//options holds the command line flags.
type options struct {
	config    string
	xyz       string
	nsamps    int
	interval  float64
	nsteps    int
	converter string
	dir       string
	charge    int
	mult      int
	quiet     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	rootCmd := &cobra.Command{
		Use:   "torscan [flags] <identifier>",
		Short: "Build the EStokTP torsional scan input for a molecule",
		Long: `torscan runs the cartesian-to-internal coordinate converter on
<identifier>.xyz and writes reac1.dat, theory.dat and estoktp.dat.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts, args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "torscan:", err)
				if terr, ok := err.(torscan.Error); ok {
					for _, d := range terr.Decorate("") {
						fmt.Fprintln(cmd.ErrOrStderr(), "\tin", d)
					}
				}
			}
			return err
		},
	}
	f := rootCmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	f.StringVar(&opts.xyz, "xyz", "", "cartesian coordinates (default: <identifier>.xyz)")
	f.IntVar(&opts.nsamps, "nsamps", 0, "Monte Carlo sampling points")
	f.Float64Var(&opts.interval, "interval", 0, "degrees spanned by the torsional scans")
	f.IntVar(&opts.nsteps, "nsteps", 0, "points taken along each rotor")
	f.StringVar(&opts.converter, "converter", "", "cartesian-to-internal coordinate converter")
	f.StringVarP(&opts.dir, "dir", "o", "", "output directory")
	f.IntVar(&opts.charge, "charge", 0, "total charge of the molecule")
	f.IntVar(&opts.mult, "mult", 0, "multiplicity (default: guessed from the geometry)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print warnings")
	return rootCmd
}

//settings merges the configuration file and the flags. Flags win, but only
//when they were actually given.
func settings(cmd *cobra.Command, opts *options) (*Config, error) {
	conf := DefaultConfig()
	if opts.config != "" {
		var err error
		if conf, err = ReadConfig(opts.config); err != nil {
			return nil, err
		}
	}
	f := cmd.Flags()
	if f.Changed("nsamps") {
		conf.Sampling.SamplingPoints = opts.nsamps
	}
	if f.Changed("interval") {
		conf.Sampling.ScanInterval = opts.interval
	}
	if f.Changed("nsteps") {
		conf.Sampling.ScanSteps = opts.nsteps
	}
	if f.Changed("converter") {
		conf.Converter.Command = opts.converter
	}
	if f.Changed("dir") {
		conf.Output.Dir = opts.dir
	}
	if err := conf.Sampling.Check(); err != nil {
		return nil, err
	}
	return conf, nil
}

//molecule reads the cartesian file, if it is there, and sets its charge and
//multiplicity. A nil molecule is returned when the file can't be read: the
//converter will still be given its name, and the charge and multiplicity
//flags go straight to the scan file.
func molecule(cmd *cobra.Command, opts *options, xyz string) *torscan.Molecule {
	mol, err := torscan.XYZFileRead(xyz)
	if err != nil {
		log.Printf("could not read %s (%v), charge and multiplicity taken from the flags", xyz, err)
		return nil
	}
	mol.SetCharge(opts.charge)
	if cmd.Flags().Changed("mult") {
		mol.SetMulti(opts.mult)
		return mol
	}
	multi, err := mol.GuessMulti()
	if err != nil {
		log.Printf("could not guess the multiplicity of %s (%v), using %d", xyz, err, mol.Multi())
		return mol
	}
	mol.SetMulti(multi)
	return mol
}

func run(cmd *cobra.Command, opts *options, id string) error {
	if opts.quiet {
		log.SetOutput(io.Discard)
		zmat.SetLogger(log.New(io.Discard, "", 0))
	}
	conf, err := settings(cmd, opts)
	if err != nil {
		return err
	}
	xyz := opts.xyz
	if xyz == "" {
		xyz = id + ".xyz"
	}
	mol := molecule(cmd, opts, xyz)
	if len(conf.Methods) == 0 {
		log.Printf("no methods given, theory.dat and estoktp.dat will list no jobs")
	}

	conv := qm.NewConverterHandle()
	conv.SetCommand(conf.Converter.Command)
	conv.SetScratchDir(conf.Converter.ScratchDir)
	E := qm.NewEStokTPHandle()
	E.SetConverter(conv)
	E.SetSampling(conf.Sampling)
	E.SetDir(conf.Output.Dir)
	E.SetScanFile(conf.Output.ScanFile)
	if mol == nil {
		multi := 1
		if cmd.Flags().Changed("mult") {
			multi = opts.mult
		}
		E.SetChargeMulti(opts.charge, multi)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	B, err := E.BuildInput(ctx, id, xyz, mol, conf.Methods)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rotors, periodicities %v, input written to %s\n", id, len(B.Periodicities()), B.Periodicities(), conf.Output.Dir)
	return nil
}
