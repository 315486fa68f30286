/*
 * handy.go, part of mofbuilder.
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
	"sort"
	"strings"
)

// Formula returns the chemical formula of the atoms in mol, in Hill order
// (C, then H, then the rest alphabetically; all alphabetically if there is no C).
func Formula(mol Atomer) string {
	count := make(map[string]int)
	for i := 0; i < mol.Len(); i++ {
		count[mol.Atom(i).Symbol]++
	}
	syms := make([]string, 0, len(count))
	for k := range count {
		syms = append(syms, k)
	}
	_, carbon := count["C"]
	sort.Slice(syms, func(i, j int) bool {
		if carbon {
			ri, rj := hillRank(syms[i]), hillRank(syms[j])
			if ri != rj {
				return ri < rj
			}
		}
		return syms[i] < syms[j]
	})
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s)
		if count[s] > 1 {
			fmt.Fprintf(&b, "%d", count[s])
		}
	}
	return b.String()
}

func hillRank(s string) int {
	switch s {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}
