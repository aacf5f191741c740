// Package error provides structured error handling for the ACDC toolchain.
//
// Package: error
// Title: ACDC Error Handling Framework
// Description: Structured errors with codes, severities, details and
//              operation context. Front end errors (lexical and parse
//              errors) are plain Go types that expose a Code() method, so
//              GetCode and HasCode classify them without conversion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Usage:
//
//	err := mdwerror.New("undeclared variable").
//		WithCode(mdwerror.CodeACDCUndeclared).
//		WithDetail("name", "a").
//		WithOperation("codegen.Generate")
//
//	if mdwerror.HasCode(err, mdwerror.CodeACDCUndeclared) {
//		// report to the user
//	}
package error
