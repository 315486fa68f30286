/*
 * compress.go, part of mofbuilder.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format is a structure file format.
type Format string

const (
	FormatXYZ  Format = "xyz"
	FormatPDB  Format = "pdb"
	FormatJSON Format = "json"
)

// FormatFromName returns the structure format and the compression ("", "gz" or "zst")
// implied by the extension of name.
func FormatFromName(name string) (Format, string, error) {
	lname := strings.ToLower(name)
	var comp string
	for _, c := range []string{"gz", "zst"} {
		if strings.HasSuffix(lname, "."+c) {
			comp = c
			lname = strings.TrimSuffix(lname, "."+c)
			break
		}
	}
	switch filepath.Ext(lname) {
	case ".xyz", ".extxyz":
		return FormatXYZ, comp, nil
	case ".pdb":
		return FormatPDB, comp, nil
	case ".json":
		return FormatJSON, comp, nil
	}
	return "", "", Error{message: fmt.Sprintf("Unknown structure format for %q", name), filename: name, deco: []string{"FormatFromName"}, critical: true}
}

// zstd.Decoder doesn't implement io.ReadCloser, since its Close doesn't return an error.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newDecompressor(r io.Reader, comp string) (io.ReadCloser, error) {
	switch comp {
	case "gz":
		return gzip.NewReader(r)
	case "zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

func newCompressor(w io.Writer, comp string) (io.WriteCloser, error) {
	switch comp {
	case "gz":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case "zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{w}, nil
}

// FileRead reads the structure in the file name. The format and the
// compression are taken from the extension.
func FileRead(name string) (*Molecule, error) {
	format, comp, err := FormatFromName(name)
	if err != nil {
		return nil, errDecorate(err, "FileRead")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{message: "Can't open structure file", filename: name, deco: []string{"FileRead"}, critical: true, err: err}
	}
	defer f.Close()
	r, err := newDecompressor(f, comp)
	if err != nil {
		return nil, Error{message: "Can't decompress structure file", filename: name, deco: []string{"FileRead"}, critical: true, err: err}
	}
	defer r.Close()
	var mol *Molecule
	switch format {
	case FormatXYZ:
		mol, err = XYZRead(r)
	case FormatJSON:
		mol, err = JSONRead(r)
	default:
		return nil, Error{message: fmt.Sprintf("Reading %s files is not supported", format), filename: name, deco: []string{"FileRead"}, critical: true}
	}
	if err != nil {
		return nil, withFile(err, name, "FileRead")
	}
	return mol, nil
}

// XYZFileRead reads the XYZ file name, which may be compressed.
// Other structure formats are rejected.
func XYZFileRead(name string) (*Molecule, error) {
	if f, _, err := FormatFromName(name); err != nil || f != FormatXYZ {
		return nil, Error{message: "Not an XYZ file name", filename: name, deco: []string{"XYZFileRead"}, critical: true}
	}
	return FileRead(name)
}

// FileWrite writes mol to the file name, in the format and with the compression implied
// by the extension. The data goes to a temporary file in the same directory, which
// is renamed to name only if everything was written, so name is never left half-written.
func FileWrite(name string, mol *Molecule) (err error) {
	format, comp, err := FormatFromName(name)
	if err != nil {
		return errDecorate(err, "FileWrite")
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return Error{message: "Can't create output file", filename: name, deco: []string{"FileWrite"}, critical: true, err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	w, err := newCompressor(tmp, comp)
	if err != nil {
		return Error{message: "Can't set up compression", filename: name, deco: []string{"FileWrite"}, critical: true, err: err}
	}
	switch format {
	case FormatXYZ:
		err = XYZWrite(w, mol)
	case FormatPDB:
		err = PDBWrite(w, mol)
	case FormatJSON:
		err = JSONWrite(w, mol)
	}
	if err != nil {
		return withFile(err, name, "FileWrite")
	}
	if err = w.Close(); err != nil {
		return Error{message: "Can't finish compressed stream", filename: name, deco: []string{"FileWrite"}, critical: true, err: err}
	}
	if err = tmp.Chmod(0o644); err != nil {
		return Error{message: "Can't set output file permissions", filename: name, deco: []string{"FileWrite"}, critical: true, err: err}
	}
	if err = tmp.Close(); err != nil {
		return Error{message: "Can't close output file", filename: name, deco: []string{"FileWrite"}, critical: true, err: err}
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		os.Remove(tmp.Name())
		return Error{message: "Can't move output file into place", filename: name, deco: []string{"FileWrite"}, critical: true, err: err}
	}
	return nil
}

// withFile sets the file name of err, if it is a chem.Error without one,
// and decorates it with caller.
func withFile(err error, name, caller string) error {
	if e, ok := err.(Error); ok {
		if e.filename == "" {
			e.filename = name
		}
		e.Decorate(caller)
		return e
	}
	return fmt.Errorf("%s: %w", name, err)
}
