/*
 * options.go, part of mofbuilder.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package mof

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleOptions is returned when both the anthraquinone and
	// half-anthraquinone linkers are requested.
	ErrIncompatibleOptions = errors.New("incompatible settings --aq and --halfaq")

	// ErrInvalidOption is returned for option values that can't produce a structure.
	ErrInvalidOption = errors.New("invalid option")

	// ErrTemplateLayout is returned when the templates don't have the atoms
	// the substitutions address.
	ErrTemplateLayout = errors.New("unexpected template layout")
)

// Options control the structure built.
type Options struct {
	OutputName  string  //where to write the structure. The extension gives the format.
	XStretch    float64 //added to the cell length in x
	VacY        float64 //vacuum in y
	VacZ        float64 //vacuum in z, also the spacing between layers
	Metal       string  //element of the metal center
	MenXElem    string  //element of the 4 atoms around the metal
	Pyridine    bool
	HalfAQ      bool
	AQ          bool
	NLayer      int
	TemplateDir string //directory with MeXn_base.xyz and ligand_base.xyz
}

// DefaultOptions returns the options used when nothing else is given.
// OutputName has no default.
func DefaultOptions() Options {
	return Options{
		XStretch:    0,
		VacY:        14,
		VacZ:        14,
		Metal:       "Ni",
		MenXElem:    "O",
		NLayer:      1,
		TemplateDir: ".",
	}
}

// Validate checks the options that would make the build fail or produce
// a meaningless cell. The aq/halfaq conflict is not checked here, Build reports it.
func (o Options) Validate() error {
	if o.OutputName == "" {
		return fmt.Errorf("%w: no output file name", ErrInvalidOption)
	}
	return o.validateBuild()
}

func (o Options) validateBuild() error {
	if o.NLayer < 1 {
		return fmt.Errorf("%w: nlayer must be at least 1, got %d", ErrInvalidOption, o.NLayer)
	}
	if o.Metal == "" || o.MenXElem == "" {
		return fmt.Errorf("%w: empty element symbol", ErrInvalidOption)
	}
	return nil
}
