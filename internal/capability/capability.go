package capability

import (
	"os"
	"strings"
)

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "SUBINT_POPCOUNT"

// Kernel identifies a population count implementation.
type Kernel uint8

const (
	// Generic is the portable SWAR implementation.
	Generic Kernel = iota
	// Hardware delegates to math/bits, which lowers to POPCNT / CNT.
	Hardware
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "hardware":
		return Hardware, true
	default:
		return Generic, false
	}
}

// Set once at init by the platform-specific files.
var (
	activeKernel Kernel
	hasOverride  bool

	hasPOPCNT bool // x86-64 POPCNT
	hasASIMD  bool // ARM64 NEON (CNT)
)

func initCapabilities() {
	activeKernel, hasOverride = selectKernel(os.Getenv(EnvOverride))
}

func selectKernel(override string) (Kernel, bool) {
	if override != "" {
		if k, ok := ParseKernel(override); ok && isAvailable(k) {
			return k, true
		}
	}

	if HasHardwarePopCount() {
		return Hardware, false
	}
	return Generic, false
}

func isAvailable(k Kernel) bool {
	switch k {
	case Generic:
		return true
	case Hardware:
		return HasHardwarePopCount()
	default:
		return false
	}
}

// ActiveKernel returns the selected popcount kernel.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if SUBINT_POPCOUNT selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasHardwarePopCount reports whether the CPU has a popcount instruction.
func HasHardwarePopCount() bool {
	return hasPOPCNT || hasASIMD
}
