/*
 * gochem_test.go, part of mofbuilder.
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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func sameCoords(Te *testing.T, a, b *Molecule) {
	Te.Helper()
	if a.Len() != b.Len() {
		Te.Fatalf("Different number of atoms: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.Atom(i).Symbol != b.Atom(i).Symbol {
			Te.Errorf("Atom %d: symbol %s vs %s", i, a.Atom(i).Symbol, b.Atom(i).Symbol)
		}
		for j := 0; j < 3; j++ {
			if math.Abs(a.Coords.At(i, j)-b.Coords.At(i, j)) > 1e-6 {
				Te.Errorf("Atom %d, coordinate %d: %f vs %f", i, j, a.Coords.At(i, j), b.Coords.At(i, j))
			}
		}
	}
}

func TestXYZIO(Te *testing.T) {
	mol, err := XYZFileRead("test/ethanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 9 {
		Te.Errorf("Expected 9 atoms, got %d", mol.Len())
	}
	if mol.Atom(2).Symbol != "O" || mol.Atom(2).Mass != 16.00 {
		Te.Errorf("Atom 2 should be an oxygen, got %+v", mol.Atom(2))
	}
	if mol.PBC != [3]bool{} || mol.Cell != (Cell{}) {
		Te.Errorf("A plain XYZ file shouldn't have a cell: %v %v", mol.Cell, mol.PBC)
	}
	name := filepath.Join(Te.TempDir(), "ethanol.xyz")
	if err := FileWrite(name, mol); err != nil {
		Te.Fatal(err)
	}
	mol2, err := XYZFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	sameCoords(Te, mol, mol2)
}

func TestExtendedXYZ(Te *testing.T) {
	mol, err := XYZFileRead("test/water_box.extxyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Cell != (Cell{5, 6, 7.5}) {
		Te.Errorf("Wrong cell %v", mol.Cell)
	}
	if mol.PBC != [3]bool{true, true, false} {
		Te.Errorf("Wrong PBC %v", mol.PBC)
	}
	var b bytes.Buffer
	if err := XYZWrite(&b, mol); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(b.String(), "\n")
	want := `Lattice="5.0 0.0 0.0 0.0 6.0 0.0 0.0 0.0 7.5" Properties=species:S:1:pos:R:3 pbc="T T F"`
	if lines[1] != want {
		Te.Errorf("Comment line\n%s\nexpected\n%s", lines[1], want)
	}
	mol2, err := XYZRead(&b)
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Cell != mol.Cell || mol2.PBC != mol.PBC {
		Te.Errorf("Cell or PBC lost in the round trip: %v %v", mol2.Cell, mol2.PBC)
	}
	sameCoords(Te, mol, mol2)
}

func TestBrokenXYZ(Te *testing.T) {
	_, err := XYZFileRead("test/broken.xyz")
	if err == nil {
		Te.Fatal("Expected an error reading a malformed file")
	}
	var e Error
	if !errors.As(err, &e) {
		Te.Fatalf("Expected a chem.Error, got %T", err)
	}
	if e.FileName() != "test/broken.xyz" || !e.Critical() {
		Te.Errorf("Unexpected error data: %q %v", e.FileName(), e.Critical())
	}
	if !strings.Contains(e.Trace(), "XYZRead") {
		Te.Errorf("Error trace should include XYZRead: %s", e.Trace())
	}
	_, err = XYZRead(strings.NewReader("two\n\nC 0 0 0\n"))
	if err == nil {
		Te.Error("Expected an error for a bad atom count")
	}
	_, err = XYZRead(strings.NewReader("1\nLattice=\"1 0 0 0 1 0\"\nC 0 0 0\n"))
	if err == nil {
		Te.Error("Expected an error for a short lattice")
	}
}

func TestMissingFile(Te *testing.T) {
	_, err := XYZFileRead(filepath.Join(Te.TempDir(), "nothere.xyz"))
	if !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestDelete(Te *testing.T) {
	mol, err := XYZFileRead("test/ethanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	fifth := mol.Coords.At(5, 2)
	if err := mol.Del(4); err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 8 || mol.Coords.NVecs() != 8 {
		Te.Errorf("Expected 8 atoms and coordinates, got %d and %d", mol.Len(), mol.Coords.NVecs())
	}
	if !near(mol.Coords.At(4, 2), fifth) {
		Te.Errorf("Atoms after the deleted one should shift down by one")
	}
	if err := mol.Del(8); err == nil {
		Te.Error("Expected an error deleting out of range")
	}
}

func TestConcatTranslate(Te *testing.T) {
	a, _ := XYZFileRead("test/ethanol.xyz")
	b, _ := XYZFileRead("test/water_box.extxyz")
	b.Translate(1, 2, 3)
	if !near(b.Coords.At(0, 1), 2) || !near(b.Coords.At(0, 2), 3.119262) {
		Te.Errorf("Translate gave %v", mat.Formatted(b.Coords))
	}
	c := Concat(a, b)
	if c.Len() != 12 || c.Atom(9).Symbol != "O" {
		Te.Errorf("Concat gave %d atoms, atom 9 is %s", c.Len(), c.Atom(9).Symbol)
	}
	if c.Cell != a.Cell {
		Te.Errorf("Concat should keep the cell of the first molecule")
	}
	//the copies must be independent.
	c.Atom(0).Symbol = "N"
	c.Translate(0, 0, 10)
	if a.Atom(0).Symbol != "C" || !near(a.Coords.At(0, 2), 0) {
		Te.Errorf("Concat shares data with its arguments")
	}
	if err := c.TranslateSome([]int{9}, 0, -0.3, 0); err != nil {
		Te.Fatal(err)
	}
	if !near(c.Coords.At(9, 1), 1.7) {
		Te.Errorf("TranslateSome gave %f", c.Coords.At(9, 1))
	}
	if err := c.TranslateSome([]int{12}, 0, 0, 1); err == nil {
		Te.Error("Expected an error translating an atom out of range")
	}
}

func TestCenter(Te *testing.T) {
	mol, _ := XYZFileRead("test/water_box.extxyz")
	mol.Cell = Cell{10, 0, 20}
	mol.Center()
	lo, hi := BoundingBox(mol.Coords)
	if !near((lo[0]+hi[0])/2, 5) || !near((lo[2]+hi[2])/2, 10) {
		Te.Errorf("Not centered: %v %v", lo, hi)
	}
	//zero cell length, the axis is not touched.
	if !near(lo[1], -0.763239) {
		Te.Errorf("Axis with zero cell length was moved: %v", lo)
	}
}

func TestCompressedAndFormats(Te *testing.T) {
	mol, _ := XYZFileRead("test/water_box.extxyz")
	dir := Te.TempDir()
	for _, name := range []string{"w.xyz.gz", "w.xyz.zst", "w.json", "w.JSON.gz"} {
		p := filepath.Join(dir, name)
		if err := FileWrite(p, mol); err != nil {
			Te.Fatal(err)
		}
		mol2, err := FileRead(p)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		sameCoords(Te, mol, mol2)
		if mol2.Cell != mol.Cell || mol2.PBC != mol.PBC {
			Te.Errorf("%s: cell or pbc lost", name)
		}
	}
}

func TestPDBWrite(Te *testing.T) {
	mol, _ := XYZFileRead("test/water_box.extxyz")
	var b bytes.Buffer
	if err := PDBWrite(&b, mol); err != nil {
		Te.Fatal(err)
	}
	s := b.String()
	if !strings.Contains(s, "CRYST1    5.000    6.000    7.500  90.00  90.00  90.00 P 1") {
		Te.Errorf("Missing or wrong CRYST1 record:\n%s", s)
	}
	if strings.Count(s, "HETATM") != 3 {
		Te.Errorf("Expected 3 HETATM records:\n%s", s)
	}
	p := filepath.Join(Te.TempDir(), "w.pdb")
	if err := FileWrite(p, mol); err != nil {
		Te.Fatal(err)
	}
	if _, err := FileRead(p); err == nil {
		Te.Error("Reading PDB files is not supported, expected an error")
	}
}

func TestUnknownFormat(Te *testing.T) {
	mol, _ := XYZFileRead("test/ethanol.xyz")
	dir := Te.TempDir()
	p := filepath.Join(dir, "ethanol.mol2")
	if err := FileWrite(p, mol); err == nil {
		Te.Error("Expected an error for an unknown extension")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		Te.Errorf("Nothing should have been written, found %d files", len(entries))
	}
	if err := FileWrite(filepath.Join(dir, "nodir", "e.xyz"), mol); err == nil {
		Te.Error("Expected an error writing to a missing directory")
	}
}

func TestFormula(Te *testing.T) {
	mol, _ := XYZFileRead("test/ethanol.xyz")
	if f := Formula(mol); f != "C2H6O" {
		Te.Errorf("Expected C2H6O, got %s", f)
	}
	w, _ := XYZFileRead("test/water_box.extxyz")
	if f := Formula(w); f != "H2O" {
		Te.Errorf("Expected H2O, got %s", f)
	}
}

func TestSetSymbol(Te *testing.T) {
	mol, _ := XYZFileRead("test/ethanol.xyz")
	mol.Atom(0).SetSymbol("Zn")
	if mol.Atom(0).Name != "Zn" || mol.Atom(0).Mass != Mass("Zn") {
		Te.Errorf("SetSymbol didn't update the atom: %+v", mol.Atom(0))
	}
	if !KnownSymbol("Ni") || KnownSymbol("Xx") {
		Te.Error("KnownSymbol gives wrong answers")
	}
}

func TestXYZFileReadFormat(Te *testing.T) {
	mol, _ := XYZFileRead("test/ethanol.xyz")
	p := filepath.Join(Te.TempDir(), "ethanol.json")
	if err := FileWrite(p, mol); err != nil {
		Te.Fatal(err)
	}
	if _, err := XYZFileRead(p); err == nil {
		Te.Error("A JSON file shouldn't be read as XYZ")
	}
	if _, err := FileRead(p); err != nil {
		Te.Errorf("FileRead should read JSON files: %v", err)
	}
}

func TestErrDecorate(Te *testing.T) {
	inner := Error{message: "inner", deco: []string{"first"}}
	got := errDecorate(inner, "second")
	e, ok := got.(Error)
	if !ok || e.Trace() != "first <- second" {
		Te.Errorf("A chem.Error should be decorated, got %v", got)
	}
	wrapped := fmt.Errorf("context: %w", inner)
	if got := errDecorate(wrapped, "second"); got != wrapped {
		Te.Errorf("Wrapping errors should be kept, got %T", got)
	}
	if !errors.As(errDecorate(wrapped, "second"), &e) {
		Te.Error("The wrapped chem.Error should still be reachable")
	}
	if errDecorate(nil, "second") != nil {
		Te.Error("nil should stay nil")
	}
}
