// Package prof wires Go's CPU, heap and execution-trace profilers to CLI flags.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	rtrace "runtime/trace"
)

// Config names the output file for each profile; empty disables it.
type Config struct {
	CPU   string
	Mem   string
	Trace string
}

// Enabled reports whether any profile was requested.
func (c Config) Enabled() bool {
	return c.CPU != "" || c.Mem != "" || c.Trace != ""
}

// Session is a running set of profiles. The heap profile is written on Stop.
type Session struct {
	cfg       Config
	cpuFile   *os.File
	traceFile *os.File
}

// Start begins the CPU profile and execution trace requested by cfg.
// On error, anything already started is stopped.
func Start(cfg Config) (*Session, error) {
	s := &Session{cfg: cfg}
	if cfg.CPU != "" {
		f, err := os.Create(cfg.CPU)
		if err != nil {
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		s.cpuFile = f
	}
	if cfg.Trace != "" {
		f, err := os.Create(cfg.Trace)
		if err != nil {
			s.cfg.Mem = ""
			_ = s.Stop()
			return nil, fmt.Errorf("execution trace: %w", err)
		}
		if err := rtrace.Start(f); err != nil {
			_ = f.Close()
			s.cfg.Mem = ""
			_ = s.Stop()
			return nil, fmt.Errorf("execution trace: %w", err)
		}
		s.traceFile = f
	}
	return s, nil
}

// Stop ends every running profile and writes the heap profile. It is safe
// to call on a nil Session and more than once.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpuFile.Close())
		s.cpuFile = nil
	}
	if s.traceFile != nil {
		rtrace.Stop()
		errs = append(errs, s.traceFile.Close())
		s.traceFile = nil
	}
	if s.cfg.Mem != "" {
		errs = append(errs, writeHeap(s.cfg.Mem))
		s.cfg.Mem = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
