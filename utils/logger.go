//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Logger implements the logging facility of the tools.
type Logger struct {
	Verbose bool
	out     io.Writer
}

// NewLogger creates a new logger outputting to the argument io.Writer.
func NewLogger(out io.Writer) *Logger {
	return &Logger{
		out: out,
	}
}

func (l *Logger) print(prefix string, loc Point, format string,
	a ...interface{}) string {

	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	switch {
	case loc.Undefined() && len(loc.Source) == 0:
		fmt.Fprintf(l.out, "%s%s", prefix, msg)
	case loc.Undefined():
		fmt.Fprintf(l.out, "%s: %s%s", loc.Source, prefix, msg)
	default:
		fmt.Fprintf(l.out, "%s: %s%s", loc, prefix, msg)
	}
	return msg
}

// Errorf logs an error message and returns it as an error. The
// returned error contains only the first line of the message.
func (l *Logger) Errorf(loc Point, format string, a ...interface{}) error {
	msg := l.print("", loc, format, a...)

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	if !loc.Undefined() {
		msg = fmt.Sprintf("%s: %s", loc, msg)
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(loc Point, format string, a ...interface{}) {
	l.print("warning: ", loc, format, a...)
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, a ...interface{}) {
	l.print("", Point{}, format, a...)
}

// Debugf logs a debug message if verbose output is enabled.
func (l *Logger) Debugf(format string, a ...interface{}) {
	if !l.Verbose {
		return
	}
	l.print("", Point{}, format, a...)
}
