package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"decaf/internal/trace"
)

var activeTracer trace.Tracer = trace.Nop

// setupTracing builds the tracer described by the trace flags and attaches
// it to the command context.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace alone implies phase-level tracing.
	if level == trace.LevelOff && output != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return nil
	}

	cfg := trace.Config{Level: level, OutputPath: output, RingSize: ringSize}
	if modeStr != "" {
		if cfg.Mode, err = trace.ParseMode(modeStr); err != nil {
			return fmt.Errorf("invalid trace mode: %w", err)
		}
	}
	if cfg.Format, err = trace.ParseFormat(formatStr); err != nil {
		return fmt.Errorf("invalid trace format: %w", err)
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

// closeTracing flushes the tracer. When the command failed, the ring buffer
// (if any) is dumped to stderr so the last events before the failure survive.
func closeTracing(cmdErr error) {
	if cmdErr != nil {
		if ring := trace.Ring(activeTracer); ring != nil {
			fmt.Fprintf(os.Stderr, "trace: last %d events (session %s)\n", len(ring.Snapshot()), trace.Session(activeTracer))
			if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
				fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
			}
		}
	}
	if err := activeTracer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
	}
	if err := activeTracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
}
