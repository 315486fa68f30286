/*
 * interfaces.go, part of mofbuilder.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"fmt"
	"strings"
)

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

// Error is the error type of the chem package. It may wrap a lower level error (usually
// from the os or io packages), which is then available to errors.Is and errors.As.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
	err      error
}

// Error returns a string with an error message, including the file involved, if any.
func (err Error) Error() string {
	msg := err.message
	if err.filename != "" {
		msg = fmt.Sprintf("%s: %s", err.filename, msg)
	}
	if err.err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.err.Error())
	}
	return msg
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

// FileName returns the file involved in the error, if any.
func (err Error) FileName() string { return err.filename }

// Trace returns the chain of functions the error went through, innermost first.
func (err Error) Trace() string { return strings.Join(err.deco, " <- ") }

// Unwrap returns the lower level error, if any.
func (err Error) Unwrap() error { return err.err }

// errDecorate adds caller to the decoration of err if err is a chem.Error.
// Other errors, including those wrapping a chem.Error, are returned unchanged.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}
