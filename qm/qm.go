/*
 * qm.go, part of torscan.
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

//Method is a level of theory and the program that runs it,
//for instance {"g09", "b3lyp/6-31+g(d,p)"}.
//A Method with an empty Level means the corresponding job is not run.
type Method struct {
	Program string `toml:"program"`
	Level   string `toml:"level"`
}

//Active returns true if the method has a level of theory.
func (M Method) Active() bool { return M.Level != "" }

//EStokTPJobs are the jobs listed in estoktp.dat, in order. The ith job is
//run if the ith method is active.
var EStokTPJobs = []string{"Opt_Reac1", "Opt_Reac1_1", "1dTau_Reac1", "HL_Reac1", "Symm_reac1", "kTP"}

//TheoryJobs are the theory.dat keywords for the levels of theory, in the
//same order as the methods.
var TheoryJobs = []string{"level0", "level1", "hind_rotor", "hlevel"}

//theoryExtra holds what is added to the options line of each theory job.
//Frequencies are computed at level1.
var theoryExtra = []string{"", "freq", "", ""}
