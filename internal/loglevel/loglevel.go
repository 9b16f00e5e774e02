// Package loglevel implements the LogLevels store and the --log-level
// rule grammar described in spec.md §3 and §4.7.
package loglevel

import (
	"log/slog"
	"strings"

	"github.com/dmagro/rclcfg/internal/rclerr"
)

// Severity mirrors spec.md's LogSeverity enum.
type Severity int

const (
	Unset Severity = iota
	Debug
	Info
	Warn
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Unset:
		return "UNSET"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func parseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return Debug, true
	case "info":
		return Info, true
	case "warn":
		return Warn, true
	case "error":
		return Error, true
	case "fatal":
		return Fatal, true
	case "unset":
		return Unset, true
	default:
		return Unset, false
	}
}

// LoggerSetting binds a single logger name to a severity.
type LoggerSetting struct {
	Name  string
	Level Severity
}

// Levels is the {default, per_logger} aggregate. per_logger preserves
// insertion order with last-write-wins semantics on a repeated name,
// enforced by ApplyRule, which overwrites an existing entry in place.
type Levels struct {
	Default   Severity
	PerLogger []LoggerSetting
}

// New returns an empty Levels with Default == Unset.
func New() *Levels {
	return &Levels{}
}

// ApplyRule parses and applies a single log-level rule:
//
//	log_rule = (logger_name ":=" severity) | severity
//
// A bare severity overwrites Default (last one wins; a debug message is
// logged if it overwrites a previously non-UNSET default). A rule with a
// logger_name sets/overwrites that logger's severity.
func (l *Levels) ApplyRule(rule string) *rclerr.Error {
	if idx := strings.LastIndex(rule, ":="); idx >= 0 {
		name := rule[:idx]
		sevText := rule[idx+2:]
		if name == "" {
			return rclerr.New(rclerr.InvalidLogLevelRule, "log-level rule %q has an empty logger name", rule)
		}
		sev, ok := parseSeverity(sevText)
		if !ok {
			return rclerr.New(rclerr.InvalidLogLevelRule, "log-level rule %q has an unrecognized severity %q", rule, sevText)
		}
		l.setLogger(name, sev)
		return nil
	}

	sev, ok := parseSeverity(rule)
	if !ok {
		return rclerr.New(rclerr.InvalidLogLevelRule, "log-level rule %q is neither a bare severity nor name:=severity", rule)
	}
	if l.Default != Unset && l.Default != sev {
		slog.Debug("overwriting previously set default log severity", "previous", l.Default, "next", sev)
	}
	l.Default = sev
	return nil
}

func (l *Levels) setLogger(name string, sev Severity) {
	for i := range l.PerLogger {
		if l.PerLogger[i].Name == name {
			l.PerLogger[i].Level = sev
			return
		}
	}
	l.PerLogger = append(l.PerLogger, LoggerSetting{Name: name, Level: sev})
}

// Shrink is a no-op placeholder matching the naming of the other
// post-parse compaction steps in spec.md §4.9; Levels never
// over-allocates beyond Go's normal slice growth, so there is nothing to
// shrink, but the method exists so callers can compact uniformly.
func (l *Levels) Shrink() {}
