package toolchain

import (
	"fmt"
	"regexp"
	"strings"
)

// Family identifies the vendor lineage of a compiler driver. It determines
// which argument conventions and behaviors the build pipeline assumes.
// A tool's family is decided once and never reinterpreted afterwards.
type Family int

const (
	GCC Family = iota
	Clang
	ClangCl
	ClangWindows
	Windows
	WindowsML64

	familyGCCString          = "gcc"
	familyClangString        = "clang"
	familyClangClString      = "clang-cl"
	familyClangWindowsString = "clang-windows"
	familyWindowsString      = "windows"
	familyWindowsML64String  = "windows-ml64"
)

func (f Family) String() string {
	switch f {
	case GCC:
		return familyGCCString
	case Clang:
		return familyClangString
	case ClangCl:
		return familyClangClString
	case ClangWindows:
		return familyClangWindowsString
	case Windows:
		return familyWindowsString
	case WindowsML64:
		return familyWindowsML64String
	default:
		return "unknown"
	}
}

// IsClang reports whether the family follows Clang argument conventions.
func (f Family) IsClang() bool {
	return f == Clang || f == ClangCl || f == ClangWindows
}

// ParseFamily maps a configuration string to a Family. The accepted values
// are the ones produced by Family.String.
func ParseFamily(input string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case familyGCCString:
		return GCC, nil
	case familyClangString:
		return Clang, nil
	case familyClangClString:
		return ClangCl, nil
	case familyClangWindowsString:
		return ClangWindows, nil
	case familyWindowsString:
		return Windows, nil
	case familyWindowsML64String:
		return WindowsML64, nil
	default:
		return 0, fmt.Errorf("toolchain: unknown family %q", input)
	}
}

var clangBanners = []*regexp.Regexp{
	// Format used by open source Clang.
	regexp.MustCompile(`^clang version [.0-9]*(\s*\(.*\))?$`),
	// Format used by Apple's Clang.
	regexp.MustCompile(`^Apple LLVM version [.0-9]*\s*\(clang-[.0-9]*\)$`),
}

// FamilyFromVersionOutput determines the toolchain family of a tool from the
// output of its version query. Every line is trimmed and matched whole
// against the known Clang banners; the first line matching any of them
// decides Clang. Output matching no banner at all, including empty output,
// is assumed to be GCC-compatible.
func FamilyFromVersionOutput(lines []string) Family {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		for _, banner := range clangBanners {
			if banner.MatchString(line) {
				return Clang
			}
		}
	}
	return GCC
}
