package cxx

import (
	"go.uber.org/zap"

	"github.com/tmaxmax/zidar/pkg/toolchain"
)

// Options customize a compilation in a toolchain-agnostic way. The driver
// translates each option to the flags of the underlying toolchain family.
type Options struct {
	// IncludePaths where additional headers should be found.
	IncludePaths []string
	// SystemIncludePaths searched after IncludePaths, with warnings
	// suppressed for the headers found there.
	SystemIncludePaths []string
	// Defines specifies a list of macros that should be defined.
	Defines []string
	// Undefs specifies a list of macros that should be undefined.
	Undefs []string
	// Standard specifies the language standard used to compile the source.
	Standard Standard
	// Optimization specifies the level of optimization applied.
	Optimization Optimization
	// ColorDiagnostics requests colored compiler diagnostics, using
	// whichever flag the toolchain family understands.
	ColorDiagnostics bool
	// Flags can be used to pass flags that have no Options equivalent.
	// They are not translated, so drivers of different families may stop
	// being interchangeable when this is used. They override any flags set
	// by the other fields.
	Flags *Flags
}

// Optimization values select the optimization level of a compilation. Some
// levels toggle more than the optimizer; see each value.
type Optimization int

const (
	// OptimizationNone means no optimization: -O0.
	OptimizationNone Optimization = iota
	// OptimizationModerate provides good optimization without great impact
	// over the compilation time: -O1.
	OptimizationModerate
	// OptimizationAggressive provides the best optimization for speed,
	// sacrificing compilation time: -O2.
	OptimizationAggressive
	// OptimizationDebug selects the flag combination best suited for
	// debugging: -Og -ggdb on GCC, -O0 -g on Clang.
	OptimizationDebug
)

// Standard values select the C/C++ language standard, without vendor
// extensions. Compilation fails if the toolchain does not support the
// requested standard.
type Standard int

const (
	// StandardDefault passes no standard flag at all.
	StandardDefault Standard = iota
	StandardC90
	StandardC99
	StandardC11
	StandardC17
	StandardCPP98
	StandardCPP03
	StandardCPP11
	StandardCPP14
	StandardCPP17
	StandardCPP20
)

var standardsRepresentation = map[Standard]string{
	StandardC90:   "c90",
	StandardC99:   "c99",
	StandardC11:   "c11",
	StandardC17:   "c17",
	StandardCPP98: "c++98",
	StandardCPP03: "c++03",
	StandardCPP11: "c++11",
	StandardCPP14: "c++14",
	StandardCPP17: "c++17",
	StandardCPP20: "c++20",
}

// A Driver is one classified compiler or preprocessor invocation: the
// product the resolution cache builds per context. It renders command lines
// in the dialect of its toolchain family.
type Driver struct {
	family toolchain.Family
	tool   toolchain.Tool
}

// NewDriver pairs a classified family with a resolved tool handle.
func NewDriver(family toolchain.Family, tool toolchain.Tool) *Driver {
	return &Driver{family: family, tool: tool}
}

// Family returns the toolchain family of the underlying tool.
func (d *Driver) Family() toolchain.Family { return d.family }

// Tool returns the underlying tool handle.
func (d *Driver) Tool() toolchain.Tool { return d.tool }

// CompileArgv returns the command line compiling inputPath to outputPath.
// The options may be nil.
func (d *Driver) CompileArgv(inputPath, outputPath string, opts *Options) []string {
	flags := NewFlags()
	flags.Set("o", outputPath)
	d.translate(flags, opts)

	argv := append([]string{d.tool.Path()}, renderFlags(flags)...)
	return append(argv, inputPath)
}

// PreprocessArgv returns the command line preprocessing inputPath to
// standard output. The options may be nil.
func (d *Driver) PreprocessArgv(inputPath string, opts *Options) []string {
	flags := NewFlags()
	flags.Toggle("E")
	d.translate(flags, opts)

	argv := append([]string{d.tool.Path()}, renderFlags(flags)...)
	return append(argv, inputPath)
}

func (d *Driver) translate(flags *Flags, opts *Options) {
	if opts == nil {
		return
	}

	flags.Set("D", opts.Defines...)
	flags.Set("U", opts.Undefs...)
	flags.Set("I", opts.IncludePaths...)
	flags.Set("isystem", opts.SystemIncludePaths...)
	addStandardFlag(flags, opts.Standard)
	d.addOptimizationFlags(flags, opts.Optimization)

	if opts.ColorDiagnostics {
		if d.family.IsClang() {
			flags.Toggle("fcolor-diagnostics")
		} else {
			flags.Set("fdiagnostics-color", "always")
		}
	}

	flags.Merge(opts.Flags)
}

func addStandardFlag(flags *Flags, standard Standard) {
	standardRepr := standardsRepresentation[standard]
	if standardRepr == "" {
		return
	}

	flags.Set("std", standardRepr)
}

func (d *Driver) addOptimizationFlags(flags *Flags, optimization Optimization) {
	switch optimization {
	case OptimizationNone:
		flags.Set("O", "0")
	case OptimizationModerate:
		flags.Set("O", "1")
	case OptimizationAggressive:
		flags.Set("O", "2")
	case OptimizationDebug:
		if d.family.IsClang() {
			flags.Set("O", "0")
			flags.Toggle("g")
		} else {
			flags.Set("O", "g")
			flags.Toggle("ggdb")
		}
	}
}

func renderFlags(flags *Flags) []string {
	const flagStart = "-"
	var out []string

	flags.Range(func(flag string, values []string, isToggle bool) {
		if isToggle {
			out = append(out, flagStart+flag)
			return
		}

		for _, value := range values {
			switch flag {
			case "O", "D", "U", "I", "L", "l":
				out = append(out, flagStart+flag+value)
			case "std", "fdiagnostics-color":
				out = append(out, flagStart+flag+"="+value)
			default:
				out = append(out, flagStart+flag, value)
			}
		}
	})

	return out
}

// NewCompilerProvider wires a compiler executable into a resolution cache of
// drivers. With a non-nil family the classification is taken as given and
// the executable is never spawned; with a nil family the tool is probed on
// the first resolve. The logger may be nil.
func NewCompilerProvider(path string, family *toolchain.Family, log *zap.Logger) (*toolchain.Provider[*Driver], error) {
	if log == nil {
		log = zap.NewNop()
	}

	tool, err := toolchain.NewHashedTool(path)
	if err != nil {
		return nil, err
	}

	tools := toolchain.NewConstantToolProvider(tool)
	build := func(f toolchain.Family, t toolchain.Tool) (*Driver, error) {
		return NewDriver(f, t), nil
	}

	if family != nil {
		return toolchain.NewProvider(tools, *family, build, toolchain.WithLogger(log)), nil
	}

	probe := &toolchain.Probe{Path: path, Logger: log}
	return toolchain.NewInferredProvider(tools, probe, build, toolchain.WithLogger(log)), nil
}
