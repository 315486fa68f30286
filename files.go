/*
 * files.go, part of mofbuilder.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/mofbuilder/v3"
)

//XYZ family

// XYZRead reads an XYZ file from r and returns the molecule in it.
// If the comment line follows the extended XYZ convention, the cell is read
// from the Lattice key (only the diagonal is kept) and the periodicity from the pbc key.
func XYZRead(r io.Reader) (*Molecule, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, Error{message: "Empty or unreadable XYZ file", deco: []string{"XYZRead"}, critical: true, err: err}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, Error{message: fmt.Sprintf("Ill formatted XYZ file: bad atom count %q", strings.TrimSpace(line)), deco: []string{"XYZRead"}, critical: true}
	}
	comment, err := xyz.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, Error{message: "Ill formatted XYZ file: can't read comment line", deco: []string{"XYZRead"}, critical: true, err: err}
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return nil, Error{message: fmt.Sprintf("Ill formatted XYZ file: expected %d atoms, found %d", natoms, i), deco: []string{"XYZRead"}, critical: true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Error{message: fmt.Sprintf("Ill formatted XYZ file: atom line %d has %d fields", i+1, len(fields)), deco: []string{"XYZRead"}, critical: true}
		}
		atoms[i] = &Atom{Symbol: fields[0], Name: fields[0], ID: i + 1, Mass: Mass(fields[0])}
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, Error{message: fmt.Sprintf("Ill formatted XYZ file: bad coordinate in atom line %d", i+1), deco: []string{"XYZRead"}, critical: true, err: err}
			}
		}
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	mol, err := NewMolecule(NewTopology(atoms), c)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	if err := readExtXYZComment(comment, mol); err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol, nil
}

// XYZWrite writes mol to out in the extended XYZ format: the comment line
// carries the cell as a Lattice and the periodicity.
func XYZWrite(out io.Writer, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n", mol.Len())
	fmt.Fprintln(w, extXYZComment(mol))
	for i := 0; i < mol.Len(); i++ {
		fmt.Fprintf(w, "%-2s %15.8f %15.8f %15.8f\n", mol.Atom(i).Symbol, mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2))
	}
	if err := w.Flush(); err != nil {
		return Error{message: "Can't write XYZ data", deco: []string{"XYZWrite"}, critical: true, err: err}
	}
	return nil
}

func extXYZComment(mol *Molecule) string {
	parts := make([]string, 0, 3)
	if mol.Cell != (Cell{}) {
		c := mol.Cell
		l := []float64{c[0], 0, 0, 0, c[1], 0, 0, 0, c[2]}
		s := make([]string, len(l))
		for i, v := range l {
			s[i] = pyFloat(v)
		}
		parts = append(parts, fmt.Sprintf("Lattice=%q", strings.Join(s, " ")))
	}
	parts = append(parts, "Properties=species:S:1:pos:R:3")
	p := make([]string, 3)
	for i, v := range mol.PBC {
		p[i] = "F"
		if v {
			p[i] = "T"
		}
	}
	parts = append(parts, fmt.Sprintf("pbc=%q", strings.Join(p, " ")))
	return strings.Join(parts, " ")
}

// pyFloat formats v with the shortest representation that reads back
// to the same value, always keeping a decimal point.
func pyFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// parseKeyValues splits an extended XYZ comment line into its key=value pairs.
// Values may be double-quoted. Keys are lowercased.
func parseKeyValues(line string) map[string]string {
	ret := make(map[string]string)
	line = strings.TrimSpace(line)
	for len(line) > 0 {
		eq := strings.IndexAny(line, "= ")
		if eq < 0 {
			ret[strings.ToLower(line)] = ""
			break
		}
		key := strings.ToLower(line[:eq])
		if line[eq] == ' ' {
			ret[key] = ""
			line = strings.TrimSpace(line[eq+1:])
			continue
		}
		line = line[eq+1:]
		var val string
		if strings.HasPrefix(line, "\"") {
			end := strings.Index(line[1:], "\"")
			if end < 0 {
				val, line = line[1:], ""
			} else {
				val, line = line[1:end+1], line[end+2:]
			}
		} else {
			end := strings.Index(line, " ")
			if end < 0 {
				val, line = line, ""
			} else {
				val, line = line[:end], line[end+1:]
			}
		}
		ret[key] = val
		line = strings.TrimSpace(line)
	}
	return ret
}

func readExtXYZComment(comment string, mol *Molecule) error {
	if !strings.Contains(comment, "=") {
		return nil //plain XYZ, nothing to read.
	}
	kv := parseKeyValues(comment)
	if lat, ok := kv["lattice"]; ok {
		f := strings.Fields(lat)
		if len(f) != 9 {
			return Error{message: fmt.Sprintf("Lattice must have 9 components, found %d", len(f)), deco: []string{"readExtXYZComment"}, critical: true}
		}
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(f[i*4], 64)
			if err != nil {
				return Error{message: "Bad Lattice value", deco: []string{"readExtXYZComment"}, critical: true, err: err}
			}
			mol.Cell[i] = v
		}
		mol.PBC = [3]bool{true, true, true} //the extended XYZ default when a lattice is given
	}
	if pbc, ok := kv["pbc"]; ok {
		f := strings.Fields(pbc)
		if len(f) != 3 {
			return Error{message: fmt.Sprintf("pbc must have 3 components, found %d", len(f)), deco: []string{"readExtXYZComment"}, critical: true}
		}
		for i, v := range f {
			switch strings.ToUpper(v) {
			case "T", "TRUE", "1":
				mol.PBC[i] = true
			case "F", "FALSE", "0":
				mol.PBC[i] = false
			default:
				return Error{message: fmt.Sprintf("Bad pbc value %q", v), deco: []string{"readExtXYZComment"}, critical: true}
			}
		}
	}
	return nil
}

//PDB

// PDBWrite writes mol to out in the PDB format. The cell goes in a CRYST1
// record and each atom is written as a HETATM.
func PDBWrite(out io.Writer, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "PDBWrite")
	}
	w := bufio.NewWriter(out)
	fmt.Fprint(w, "REMARK     WRITTEN WITH MOFBUILDER\n")
	if mol.Cell != (Cell{}) {
		fmt.Fprintf(w, "CRYST1%9.3f%9.3f%9.3f%7.2f%7.2f%7.2f P 1           1\n", mol.Cell[0], mol.Cell[1], mol.Cell[2], 90.0, 90.0, 90.0)
	}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		name := at.Name
		if name == "" {
			name = at.Symbol
		}
		if len(name) > 4 {
			return Error{message: fmt.Sprintf("Atom name %q too long for PDB", name), deco: []string{"PDBWrite"}, critical: true}
		}
		molname := at.MolName
		if molname == "" {
			molname = "MOF"
		}
		molid := at.MolID
		if molid == 0 {
			molid = 1
		}
		//PDB serial numbers have only 5 columns.
		serial := (i + 1) % 100000
		fmt.Fprintf(w, "%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", "HETATM", serial, name, molname, "A",
			molid, mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2), 1.0, 0.0, at.Symbol)
	}
	fmt.Fprint(w, "END\n")
	if err := w.Flush(); err != nil {
		return Error{message: "Can't write PDB data", deco: []string{"PDBWrite"}, critical: true, err: err}
	}
	return nil
}
