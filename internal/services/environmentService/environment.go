package environmentservice

import (
	"fmt"
	"net"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Variable is one process environment variable.
type Variable struct {
	Name  string
	Value string
}

// Get returns the value of an environment variable, or "" when unset.
func Get(name string) string {
	return os.Getenv(name)
}

// GetDefault returns the value of an environment variable, falling back to
// def when the variable is unset. An empty-but-set variable returns "".
func GetDefault(name, def string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return def
}

// Has reports whether an environment variable is set, empty or not.
func Has(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// Set sets an environment variable in the current process.
func Set(name, value string) error {
	if name == "" {
		return fmt.Errorf("environment variable name cannot be empty")
	}
	return os.Setenv(name, value)
}

// Variables returns the full process environment, sorted by name.
func Variables() []Variable {
	env := os.Environ()
	vars := make([]Variable, 0, len(env))

	for _, entry := range env {
		name, value, _ := strings.Cut(entry, "=")
		vars = append(vars, Variable{Name: name, Value: value})
	}

	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}

// NodeName returns the host's node (machine) name.
func NodeName() string {
	hostname, err := os.Hostname()
	if err != nil {
		return ""
	}
	return hostname
}

// NodeID returns the host's primary hardware (MAC) address formatted as
// "xx:xx:xx:xx:xx:xx". Loopback and virtual interfaces without a hardware
// address are skipped; "" when no interface qualifies.
func NodeID() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		hw := iface.HardwareAddr
		if len(hw) < 6 || isZeroAddr(hw) {
			continue
		}
		return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
			hw[0], hw[1], hw[2], hw[3], hw[4], hw[5])
	}

	return ""
}

func isZeroAddr(hw net.HardwareAddr) bool {
	for _, b := range hw {
		if b != 0 {
			return false
		}
	}
	return true
}

// ProcessorCount returns the number of logical processors, never less
// than 1.
func ProcessorCount() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// OSName returns the generic operating system name, e.g. "Linux",
// "Darwin", "Windows".
func OSName() string {
	return detectOSName()
}

// OSDisplayName returns the marketing/display name of the OS when the
// platform exposes one (e.g. "Ubuntu 24.04.1 LTS", "Windows 11 Pro"),
// falling back to OSName.
func OSDisplayName() string {
	if name := detectOSDisplayName(); name != "" {
		return name
	}
	return detectOSName()
}

// OSVersion returns the kernel / OS version string.
func OSVersion() string {
	return detectOSVersion()
}

// OSArchitecture returns the machine architecture, e.g. "amd64", "arm64".
func OSArchitecture() string {
	return runtime.GOARCH
}
