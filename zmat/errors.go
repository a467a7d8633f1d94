/*
 * errors.go, part of torscan.
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
	"errors"
	"fmt"
	"strings"

	"github.com/kinetics/torscan"
)

//Kind tells apart the ways in which building a scan file can fail.
//None of them is worth retrying.
type Kind int

const (
	//ConverterFailure means the converter could not process the geometry.
	ConverterFailure Kind = iota + 1
	//MalformedReport means the report lacks a section or has a broken one.
	MalformedReport
	//UnknownRotor means a rotor is not the dihedral of any Z-matrix row.
	UnknownRotor
	//ZeroPeriodicity means a non-positive periodicity reached the writer.
	ZeroPeriodicity
)

func (k Kind) String() string {
	switch k {
	case ConverterFailure:
		return "converter failure"
	case MalformedReport:
		return "malformed report"
	case UnknownRotor:
		return "unknown rotor"
	case ZeroPeriodicity:
		return "zero periodicity"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Error is the error type of the zmat package. It fullfills torscan.Error.
//All its errors abort the build of the current molecule.
type Error struct {
	message string
	kind    Kind
	deco    []string
}

//NewError returns an error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{message: message, kind: kind}
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("zmat %s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("zmat %s: %s (%s)", err.kind, err.message, strings.Join(err.deco, " <- "))
}

//Decorate adds deco to the error's decoration and returns the resulting slice.
//The slice lists the functions the error has passed through.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Kind returns the kind of the error.
func (err *Error) Kind() Kind { return err.kind }

//Critical is always true: every zmat error stops the build.
func (err *Error) Critical() bool { return true }

var _ torscan.Error = (*Error)(nil)

//IsKind returns true if err, or an error it wraps, is a zmat *Error of kind k.
func IsKind(err error, k Kind) bool {
	var zerr *Error
	return errors.As(err, &zerr) && zerr.kind == k
}

//errDecorate is a helper function that decorates err with the caller's name
//if err implements torscan.Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(torscan.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

func errorf(kind Kind, format string, a ...interface{}) *Error {
	return NewError(kind, fmt.Sprintf(format, a...))
}
