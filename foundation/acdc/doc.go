// Package acdc compiles ACDC programs to dc instructions.
//
// An Engine resolves a language revision, then parses source one line per
// statement. CompileProgram parses the lines of a file concurrently and
// returns the statements in source order; Compile additionally runs the dc
// code generator. Diagnostic renders an error with its source line and a
// caret under the offending column.
//
//	eng, err := acdc.New(acdc.Options{})
//	res, err := eng.Compile(ctx, "ia\na = 3 + 4 * 2\npa\n")
//	fmt.Print(res.Code)
package acdc
