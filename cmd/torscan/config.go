/*
 * config.go, part of torscan.
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
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/kinetics/torscan/qm"
	"github.com/kinetics/torscan/zmat"
)

//ConverterConfig is the [converter] table.
type ConverterConfig struct {
	Command    string `toml:"command"`
	ScratchDir string `toml:"scratch"`
}

//OutputConfig is the [output] table.
type OutputConfig struct {
	Dir      string `toml:"dir"`
	ScanFile string `toml:"scanfile"`
}

//Config contains everything that can be set in the TOML configuration file.
//A missing table, or a missing key, leaves the default value.
type Config struct {
	Sampling  zmat.SamplingConfig `toml:"sampling"`
	Converter ConverterConfig     `toml:"converter"`
	Methods   []qm.Method         `toml:"methods"`
	Output    OutputConfig        `toml:"output"`
}

func DefaultConfig() *Config {
	c := new(Config)
	c.fillDefaults()
	return c
}

//fillDefaults gives the default value to every unset option.
func (c *Config) fillDefaults() {
	var def zmat.SamplingConfig
	def.SetDefaults()
	if c.Sampling.SamplingPoints == 0 {
		c.Sampling.SamplingPoints = def.SamplingPoints
	}
	if c.Sampling.ScanInterval == 0 {
		c.Sampling.ScanInterval = def.ScanInterval
	}
	if c.Sampling.ScanSteps == 0 {
		c.Sampling.ScanSteps = def.ScanSteps
	}
	if c.Converter.Command == "" {
		c.Converter.Command = qm.NewConverterHandle().Command()
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.ScanFile == "" {
		c.Output.ScanFile = zmat.DefaultScanFile
	}
}

//ReadConfig decodes the TOML file name. Environment variables in the
//converter command and the output directory are expanded.
func ReadConfig(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := new(Config)
	dec := toml.NewDecoder(f)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", name, err)
	}
	c.Converter.Command = os.ExpandEnv(c.Converter.Command)
	c.Output.Dir = os.ExpandEnv(c.Output.Dir)
	c.fillDefaults()
	if err := c.Sampling.Check(); err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", name, err)
	}
	if len(c.Methods) > len(qm.EStokTPJobs) {
		return nil, fmt.Errorf("reading configuration %s: %d methods given, at most %d jobs", name, len(c.Methods), len(qm.EStokTPJobs))
	}
	return c, nil
}
