package cxx

import (
	"fmt"
	"os/exec"
	"sync"

	"go.uber.org/zap"

	"github.com/tmaxmax/zidar/pkg/toolchain"
)

var (
	executables      = map[string]bool{}
	executablesNames []string // provide ordered iteration for the map
	executablesMutex sync.RWMutex
)

func init() {
	for _, name := range []string{"cc", "c++", "gcc", "g++", "clang", "clang++"} {
		RegisterExecutable(name)
	}
}

// RegisterExecutable adds a compiler executable name that Detect will look
// for on the host. If the name is already registered or contains path
// separators, this function panics.
func RegisterExecutable(name string) {
	executablesMutex.Lock()
	defer executablesMutex.Unlock()

	if !isValidExecutableName(name) {
		panic(fmt.Sprintf("cxx: executable name %q has invalid characters", name))
	}

	if executables[name] {
		panic(fmt.Sprintf("cxx: executable %q is already registered", name))
	}

	executables[name] = true
	executablesNames = append(executablesNames, name)
}

// DetectedCompiler is one registered compiler executable found on PATH,
// paired with a lazily classifying driver provider.
type DetectedCompiler struct {
	// Name the executable was registered under.
	Name string
	// Path the executable was found at.
	Path string
	// Provider resolving drivers for this compiler. Classification happens
	// on the first resolve, not at detection time.
	Provider *toolchain.Provider[*Driver]
}

// Detect returns a provider for every registered compiler executable present
// on PATH, in registration order. Detection only looks up paths; no compiler
// is spawned until a driver is resolved. The logger may be nil.
func Detect(log *zap.Logger) ([]DetectedCompiler, error) {
	executablesMutex.RLock()
	names := append([]string(nil), executablesNames...)
	executablesMutex.RUnlock()

	var found []DetectedCompiler
	for _, name := range names {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}

		provider, err := NewCompilerProvider(path, nil, log)
		if err != nil {
			return nil, fmt.Errorf("cxx: failed to initialize compiler %q: %w", name, err)
		}

		found = append(found, DetectedCompiler{Name: name, Path: path, Provider: provider})
	}

	return found, nil
}
