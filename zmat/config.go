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

package zmat

import "fmt"

//SamplingConfig contains the options of the stochastic geometry search
//and of the torsional scans.
type SamplingConfig struct {
	SamplingPoints int     `toml:"nsamps"`   //Monte Carlo sampling points of the geometry search
	ScanInterval   float64 `toml:"interval"` //degrees spanned by a scan before dividing by the periodicity
	ScanSteps      int     `toml:"nsteps"`   //points taken along each rotor
}

//Note that the defaults are NOT considered part of the API, so they can always change.
func (C *SamplingConfig) SetDefaults() {
	C.SamplingPoints = 5
	C.ScanInterval = 360
	C.ScanSteps = 4
}

//Check returns an error if an option is not positive.
func (C SamplingConfig) Check() error {
	if C.SamplingPoints < 1 {
		return fmt.Errorf("SamplingConfig: number of sampling points %d, must be positive", C.SamplingPoints)
	}
	if C.ScanInterval <= 0 {
		return fmt.Errorf("SamplingConfig: scan interval %g, must be positive", C.ScanInterval)
	}
	if C.ScanSteps < 1 {
		return fmt.Errorf("SamplingConfig: number of scan steps %d, must be positive", C.ScanSteps)
	}
	return nil
}
