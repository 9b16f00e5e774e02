// Package envcfg reads the environment variables described in spec.md
// §6.2: ROS_LOCALHOST_ONLY, RMW_IMPLEMENTATION,
// RCL_ASSERT_RMW_ID_MATCHES, and ROS_DISABLE_LOANED_MESSAGES.
//
// Adapted from the teacher's internal/env package (DanDo385-eth-rpc-monitor
// /internal/env/env.go), which loads KEY=VALUE pairs from a .env file
// into the process environment before config.Load runs; this module
// keeps that "load optional .env, then read os.Getenv" two-step but
// repurposes the read side entirely: instead of generic provider API
// keys, it reads the fixed set of ROS_*/RMW_* variables spec.md §6.2
// names and enforces their one cross-field invariant (a middleware-id
// mismatch fails configuration before middleware init).
package envcfg

import (
	"os"
	"strings"

	"github.com/dmagro/rclcfg/internal/rclerr"
)

// Settings is the resolved view of the environment variables this
// module cares about.
type Settings struct {
	LocalhostOnly          bool
	MiddlewareImplementation string
	DisableLoanedMessages  bool
}

// Load reads a .env file (if present) into the process environment, the
// same permissive, silently-skip-if-missing behavior as the teacher's
// env.Load, then resolves Settings from the environment.
func Load(dotEnvPath string) (*Settings, *rclerr.Error) {
	loadDotEnv(dotEnvPath)
	return Resolve()
}

// loadDotEnv mirrors the teacher's internal/env.Load: split on the first
// '=', trim whitespace, skip blanks and '#' comments, strip surrounding
// quotes.
func loadDotEnv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		os.Setenv(key, value)
	}
}

// Resolve reads the current process environment and enforces the
// RMW_IMPLEMENTATION / RCL_ASSERT_RMW_ID_MATCHES agreement rule: if both
// are set they must match, otherwise resolution fails with
// MismatchedRmwId; if only one is set it is authoritative.
func Resolve() (*Settings, *rclerr.Error) {
	s := &Settings{
		LocalhostOnly:         os.Getenv("ROS_LOCALHOST_ONLY") == "1",
		DisableLoanedMessages: os.Getenv("ROS_DISABLE_LOANED_MESSAGES") == "1",
	}

	rmw, rmwSet := os.LookupEnv("RMW_IMPLEMENTATION")
	assert, assertSet := os.LookupEnv("RCL_ASSERT_RMW_ID_MATCHES")

	switch {
	case rmwSet && assertSet:
		if rmw != assert {
			return nil, rclerr.New(rclerr.MismatchedRmwID,
				"RMW_IMPLEMENTATION=%q does not match RCL_ASSERT_RMW_ID_MATCHES=%q", rmw, assert)
		}
		s.MiddlewareImplementation = rmw
	case rmwSet:
		s.MiddlewareImplementation = rmw
	case assertSet:
		s.MiddlewareImplementation = assert
	}

	return s, nil
}
