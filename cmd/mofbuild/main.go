/*
 * main.go, part of mofbuilder.
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

// mofbuild writes the structure of a 2D metal-organic framework layer built
// from a metal center template and a linker template.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rmera/mofbuilder/internal/config"
	"github.com/rmera/mofbuilder/mof"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const incompatibleMsg = "[-] Incompatible settings --aq and --halfaq! Aborting...."

// Exit statuses.
const (
	exitOK           = 0
	exitFailure      = 1
	exitIncompatible = -1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command with args and returns the exit status.
// Diagnostics go to stderr.
func run(args []string, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, mof.ErrIncompatibleOptions):
		fmt.Fprintln(stderr, incompatibleMsg)
		return exitIncompatible
	default:
		fmt.Fprintf(stderr, "[-] %v\n", err)
		return exitFailure
	}
}

// newRootCmd returns a fresh mofbuild command. The flag values live in
// the returned command only.
func newRootCmd() *cobra.Command {
	o := mof.DefaultOptions()
	var (
		configFile string
		verbose    bool
		logger     *zap.Logger
	)
	cmd := &cobra.Command{
		Use:   "mofbuild [OUTPUTNAME]",
		Short: "Build a 2D metal-organic framework layer",
		Long: `mofbuild joins a MeXn metal center (MeXn_base.xyz) and a linker
(ligand_base.xyz), applies the requested substitutions, stacks the layers
and writes the centered periodic structure to OUTPUTNAME.

The output format is taken from the extension of OUTPUTNAME: .xyz/.extxyz
(extended XYZ), .pdb or .json, optionally followed by .gz or .zst.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return withUsage(cmd, cobra.MaximumNArgs(1)(cmd, args))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := resolveOptions(cmd, o, configFile, args)
			if err != nil {
				return err
			}
			logger.Debug("options", zap.Any("options", final))
			return mof.NewBuilder(logger).Run(final)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&o.XStretch, "x_stretch", o.XStretch, "stretch of the cell along x, in A")
	f.Float64Var(&o.VacY, "vac_y", o.VacY, "vacuum along y, in A")
	f.Float64Var(&o.VacZ, "vac_z", o.VacZ, "vacuum along z, also the distance between layers, in A")
	f.StringVar(&o.Metal, "metal", o.Metal, "element of the metal center")
	f.StringVar(&o.MenXElem, "menx_xelem", o.MenXElem, "element of the atoms coordinating the metal")
	f.BoolVar(&o.Pyridine, "pyridine", o.Pyridine, "replace a ring CH of the linker by N")
	f.BoolVar(&o.HalfAQ, "halfaq", o.HalfAQ, "half-anthraquinone linker")
	f.BoolVar(&o.AQ, "aq", o.AQ, "anthraquinone linker")
	f.IntVar(&o.NLayer, "nlayer", o.NLayer, "number of layers")
	f.StringVar(&o.TemplateDir, "template_dir", o.TemplateDir, "directory with the template files")
	f.StringVar(&configFile, "config", "", "YAML or TOML option file")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.SetFlagErrorFunc(withUsage)
	return cmd
}

// withUsage prints the usage of cmd to its error output if err is not nil.
// Only flag and argument errors go through here, build errors are reported alone.
func withUsage(cmd *cobra.Command, err error) error {
	if err != nil {
		cmd.PrintErr(cmd.UsageString())
	}
	return err
}

// resolveOptions merges, from lowest to highest priority, the defaults, the
// option file and the flags set on the command line. flagged holds the values
// parsed from the flags.
func resolveOptions(cmd *cobra.Command, flagged mof.Options, configFile string, args []string) (mof.Options, error) {
	o := mof.DefaultOptions()
	if configFile != "" {
		file, err := config.Load(configFile)
		if err != nil {
			return o, err
		}
		file.Apply(&o)
	}
	f := cmd.Flags()
	if f.Changed("x_stretch") {
		o.XStretch = flagged.XStretch
	}
	if f.Changed("vac_y") {
		o.VacY = flagged.VacY
	}
	if f.Changed("vac_z") {
		o.VacZ = flagged.VacZ
	}
	if f.Changed("metal") {
		o.Metal = flagged.Metal
	}
	if f.Changed("menx_xelem") {
		o.MenXElem = flagged.MenXElem
	}
	if f.Changed("pyridine") {
		o.Pyridine = flagged.Pyridine
	}
	if f.Changed("halfaq") {
		o.HalfAQ = flagged.HalfAQ
	}
	if f.Changed("aq") {
		o.AQ = flagged.AQ
	}
	if f.Changed("nlayer") {
		o.NLayer = flagged.NLayer
	}
	if f.Changed("template_dir") {
		o.TemplateDir = flagged.TemplateDir
	}
	if len(args) > 0 {
		o.OutputName = args[0]
	}
	return o, nil
}
