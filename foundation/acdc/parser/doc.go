// Package parser implements the ACDC front end: a character source, the
// lexer, the token sequence and the statement parser.
//
// One call handles one line:
//
//	p, _ := parser.New(parser.Options{})
//	stmt, err := p.Parse("a = (3 + 4) * 2")
//	// stmt.String() == "a=((3+4)*2)"
//
// Failures are *LexicalError or *ParseError values carrying the line and
// column of the offending token. Expressions are built with the
// shunting-yard algorithm; ^ binds tightest and groups to the right, * and
// / come next and + and - bind loosest, all grouping to the left.
package parser
