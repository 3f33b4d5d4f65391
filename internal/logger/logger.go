/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide diagnostic logger.
// Output goes to stderr so rendered documents on stdout stay clean.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	// Default logs to stderr. Set to io.Discard for --quiet and tests.
	output  io.Writer = os.Stderr
	logger  *log.Logger
	verbose bool
)

func init() {
	logger = log.New(output, "", 0)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}

// Debug logs a message only when verbose output is enabled.
func Debug(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}
