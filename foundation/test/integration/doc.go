// Package integration holds tests that drive the ACDC packages together.
//
// Package: integration
// Title: ACDC Integration Tests
// Description: Tests crossing package boundaries: source text through the
//              engine, the dc code generator and the reference evaluator,
//              with errors and log entries checked on the way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-17 v0.2.0: Rewritten around the ACDC pipeline
//
// Test Categories:
//
// Pipeline Tests (pipeline_integration_test.go):
// - Programs compiled by the engine agree with the evaluator
// - Error codes survive wrapping from lexer, parser and code generator
// - Logged errors carry their code and position
//
// Performance Tests (performance_test.go):
// - Batch compilation of large programs
// - Sequential against parallel line parsing
package integration
