/*
 * matrix.go, part of torscan.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

//Dense2Matrix wraps A, which must have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//NVecs returns the number of vectors (rows) in F.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of F. Changes in the view are
//reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() *Matrix {
	n := F.NVecs()
	c := Zeros(1)
	if n == 0 {
		return c
	}
	for i := 0; i < n; i++ {
		c.Dense.Add(c.Dense, F.VecView(i).Dense)
	}
	c.Dense.Scale(1/float64(n), c.Dense)
	return c
}

//SubVec puts in F the result of substracting vec from each vector of A.
//F and A must have the same number of vectors.
func (F *Matrix) SubVec(A, vec *Matrix) {
	if F.NVecs() != A.NVecs() || vec.NVecs() != 1 {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

//SingularValues returns the singular values of F in decreasing order.
func (F *Matrix) SingularValues() ([]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(F.Dense, mat.SVDNone); !ok {
		return nil, Error{string(ErrGonum), []string{"mat.SVD.Factorize", "SingularValues"}, true}
	}
	return svd.Values(nil), nil
}

func (F *Matrix) String() string {
	if F == nil {
		return "<nil>"
	}
	rows := make([]string, 0, F.NVecs())
	for i := 0; i < F.NVecs(); i++ {
		rows = append(rows, fmt.Sprintf("%9.4f %9.4f %9.4f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return strings.Join(rows, "\n")
}

//Errors

//Error is the same as torscan.Error but avoids a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("torscan/v3: A Matrix should have 3 columns")
	ErrGonum           = PanicMsg("torscan/v3: Error in gonum function")
	ErrShape           = PanicMsg("torscan/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("torscan/v3: index out of range")
)
