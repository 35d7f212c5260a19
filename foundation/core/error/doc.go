// Package error provides structured errors for the toolbox.
//
// Package: error
// Title: Toolbox Error Handling
// Description: Structured errors carrying a code, a severity, key/value details
//              and the operation that raised them, with stack traces for
//              debugging and JSON marshalling for structured logs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	err := mdwerror.New("start index is not an integer").
//		WithCode(mdwerror.CodeInvalidInput).
//		WithOperation("delete").
//		WithDetail("argument", "x")
//
// Codes determine the default severity (see GetSeverityFromCode) and the
// CLI exit status (see Code.ExitCode).
package error
