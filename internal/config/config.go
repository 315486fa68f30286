/*
 * config.go, part of mofbuilder.
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

// Package config reads option files for the mofbuild command.
//
// An option file uses the same keys as the command line flags:
//
//	metal: Zn
//	aq: true
//	nlayer: 2
//
// YAML (.yaml, .yml) and TOML (.toml) files are accepted. Keys missing from the
// file keep their previous value.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/rmera/mofbuilder/mof"
	"gopkg.in/yaml.v3"
)

// File holds the values found in an option file. Nil fields were not in the file.
type File struct {
	OutputName  *string  `yaml:"outputname" toml:"outputname"`
	XStretch    *float64 `yaml:"x_stretch" toml:"x_stretch"`
	VacY        *float64 `yaml:"vac_y" toml:"vac_y"`
	VacZ        *float64 `yaml:"vac_z" toml:"vac_z"`
	Metal       *string  `yaml:"metal" toml:"metal"`
	MenXElem    *string  `yaml:"menx_xelem" toml:"menx_xelem"`
	Pyridine    *bool    `yaml:"pyridine" toml:"pyridine"`
	HalfAQ      *bool    `yaml:"halfaq" toml:"halfaq"`
	AQ          *bool    `yaml:"aq" toml:"aq"`
	NLayer      *int     `yaml:"nlayer" toml:"nlayer"`
	TemplateDir *string  `yaml:"template_dir" toml:"template_dir"`
}

// Load reads the option file path. The format is taken from the extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read option file: %w", err)
	}
	f := new(File)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data)).Strict(true)
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown option file format %q", mof.ErrInvalidOption, path)
	}
	return f, nil
}

// Apply copies the values present in f into o.
func (f *File) Apply(o *mof.Options) {
	if f == nil {
		return
	}
	setString(&o.OutputName, f.OutputName)
	setFloat(&o.XStretch, f.XStretch)
	setFloat(&o.VacY, f.VacY)
	setFloat(&o.VacZ, f.VacZ)
	setString(&o.Metal, f.Metal)
	setString(&o.MenXElem, f.MenXElem)
	setBool(&o.Pyridine, f.Pyridine)
	setBool(&o.HalfAQ, f.HalfAQ)
	setBool(&o.AQ, f.AQ)
	if f.NLayer != nil {
		o.NLayer = *f.NLayer
	}
	setString(&o.TemplateDir, f.TemplateDir)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
