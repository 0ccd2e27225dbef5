// Package sinks provides logging.Sink implementations.
package sinks

import (
	"context"
	"fmt"
	"io"
	"log"

	"arena-server/logging"
)

// ConsoleSink writes events as single log lines, one per event.
type ConsoleSink struct {
	logger *log.Logger
}

// NewConsole builds a ConsoleSink writing to w.
func NewConsole(w io.Writer) *ConsoleSink {
	return &ConsoleSink{logger: log.New(w, "", log.LstdFlags)}
}

func (s *ConsoleSink) Write(event logging.Event) error {
	if s.logger == nil {
		return nil
	}
	s.logger.Printf("[%s] tick=%d actor=%s severity=%s%s",
		event.Type, event.Tick, formatEntity(event.Actor), formatSeverity(event.Severity), formatTargets(event.Targets))
	return nil
}

// Close implements logging.Sink.
func (s *ConsoleSink) Close(context.Context) error {
	return nil
}

func formatSeverity(sev logging.Severity) string {
	switch sev {
	case logging.SeverityDebug:
		return "debug"
	case logging.SeverityInfo:
		return "info"
	case logging.SeverityWarn:
		return "warn"
	case logging.SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func formatEntity(ref logging.EntityRef) string {
	if ref.ID == "" {
		return string(ref.Kind)
	}
	if ref.Kind == "" {
		return ref.ID
	}
	return fmt.Sprintf("%s:%s", ref.Kind, ref.ID)
}

func formatTargets(targets []logging.EntityRef) string {
	if len(targets) == 0 {
		return ""
	}
	out := " targets="
	for i, t := range targets {
		if i > 0 {
			out += ","
		}
		out += formatEntity(t)
	}
	return out
}
