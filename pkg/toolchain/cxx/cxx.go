/*
Package cxx builds concrete C/C++ compiler and preprocessor drivers on top
of the toolchain resolution cache.

A Driver translates family-agnostic compile options into the argument
dialect of its underlying toolchain, so GCC-family and Clang-family tools
can be used interchangeably by the rest of a build pipeline.
*/
package cxx

import (
	"os"
	"strings"
)

func isValidExecutableName(name string) bool {
	return name != "" && !strings.ContainsAny(name, string([]rune{os.PathSeparator, os.PathListSeparator}))
}
