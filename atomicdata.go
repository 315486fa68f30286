/*
 * atomicdata.go, part of mofbuilder.
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

// A map for assigning mass to elements.
// Main-group elements plus the metals that usually show up as MOF nodes.
var symbolMass = map[string]float64{
	"H":  1.008,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Sc": 44.96,
	"Ti": 47.87,
	"V":  50.94,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
	"Zr": 91.22,
	"Mo": 95.95,
	"Ru": 101.07,
	"Rh": 102.91,
	"Pd": 106.42,
	"Ag": 107.87,
	"Cd": 112.41,
	"Te": 127.60,
	"I":  126.90,
	"Hf": 178.49,
	"W":  183.84,
	"Pt": 195.08,
	"Au": 196.97,
	"Pb": 207.2,
}

// KnownSymbol returns true if symbol is one of the elements for which
// data is available.
func KnownSymbol(symbol string) bool {
	_, ok := symbolMass[symbol]
	return ok
}

// Mass returns the atomic mass for the element symbol, or 0
// if the element is not known.
func Mass(symbol string) float64 {
	return symbolMass[symbol]
}
