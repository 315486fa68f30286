/*
 * builder.go, part of mofbuilder.
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
	chem "github.com/rmera/mofbuilder"
	"go.uber.org/zap"
)

// Carbonyl oxygens replacing the terminal hydrogens are moved this much along y.
const aqShift = 0.3

// Builder builds and writes MOF structures.
type Builder struct {
	log *zap.Logger
}

// NewBuilder returns a Builder that logs to logger. A nil logger discards everything.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{log: logger}
}

// Build returns the structure for the options o. Nothing is written.
// It returns ErrIncompatibleOptions if both AQ and HalfAQ are set.
func (B *Builder) Build(o Options) (*chem.Molecule, error) {
	if err := o.validateBuild(); err != nil {
		return nil, err
	}
	t, err := LoadTemplates(o.TemplateDir)
	if err != nil {
		return nil, err
	}
	B.log.Debug("templates loaded",
		zap.String("dir", o.TemplateDir),
		zap.Int("mexn_atoms", t.MeXn.Len()),
		zap.Int("ligand_atoms", t.Ligand.Len()))

	mol := Merge(t)
	mol.Cell = CellFor(o)
	B.log.Debug("fragments merged", zap.Int("atoms", mol.Len()), zap.Float64s("cell", mol.Cell[:]))

	for _, s := range []string{o.Metal, o.MenXElem} {
		if !chem.KnownSymbol(s) {
			B.log.Warn("unknown element symbol, using it anyway", zap.String("symbol", s))
		}
	}
	mol.Atom(metalIndex).SetSymbol(o.Metal)
	for _, i := range coordinatingIndexes {
		mol.Atom(i).SetSymbol(o.MenXElem)
	}

	if err := B.editLinker(mol, o); err != nil {
		return nil, err
	}

	if o.NLayer > 1 {
		B.stack(mol, o)
	}

	shift := mol.Center()
	B.log.Debug("structure centered", zap.Float64s("shift", shift[:]))
	return mol, nil
}

// editLinker applies the linker substitutions. The pyridine deletion goes last
// so the fixed indexes used before it are still valid.
func (B *Builder) editLinker(mol *chem.Molecule, o Options) error {
	if o.HalfAQ {
		if err := toCarbonyl(mol, terminalAIndex, -aqShift); err != nil {
			return err
		}
		if o.AQ {
			return ErrIncompatibleOptions
		}
		B.log.Debug("half-anthraquinone linker")
	}
	if o.AQ {
		if err := toCarbonyl(mol, terminalAIndex, -aqShift); err != nil {
			return err
		}
		if err := toCarbonyl(mol, terminalBIndex, aqShift); err != nil {
			return err
		}
		B.log.Debug("anthraquinone linker")
	}
	if o.Pyridine {
		mol.Atom(ringSiteIndex).SetSymbol("N")
		if err := mol.Del(pyridineHIndex); err != nil {
			return err
		}
		B.log.Debug("pyridine linker", zap.Int("atoms", mol.Len()))
	}
	return nil
}

// toCarbonyl turns the hydrogen i into an oxygen and moves it dy along y.
func toCarbonyl(mol *chem.Molecule, i int, dy float64) error {
	if err := mol.TranslateSome([]int{i}, 0, dy, 0); err != nil {
		return err
	}
	mol.Atom(i).SetSymbol("O")
	return nil
}

// stack appends NLayer copies of the current structure, the copy i displaced by
// i*VacZ along z. The structure is kept, so the first layer shows up twice.
func (B *Builder) stack(mol *chem.Molecule, o Options) {
	base := mol.Copy()
	for i := 0; i < o.NLayer; i++ {
		layer := base.Copy()
		dz := float64(i) * o.VacZ
		layer.Translate(0, 0, dz)
		mol.Append(layer)
		B.log.Debug("layer added", zap.Int("layer", i), zap.Float64("dz", dz))
	}
}

// Run builds the structure for o and writes it to o.OutputName.
// The file is only created if the whole build succeeds.
func (B *Builder) Run(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	mol, err := B.Build(o)
	if err != nil {
		return err
	}
	if err := chem.FileWrite(o.OutputName, mol); err != nil {
		return err
	}
	B.log.Info("structure written",
		zap.String("file", o.OutputName),
		zap.Int("atoms", mol.Len()),
		zap.String("formula", chem.Formula(mol)),
		zap.Float64s("cell", mol.Cell[:]))
	return nil
}
