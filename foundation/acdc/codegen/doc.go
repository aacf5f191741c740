// Package codegen compiles ACDC statements to dc.
//
// Each statement becomes a short instruction sequence; "ia" declares
// register a with "0 sa", "pa" prints it with "la p", and an assignment
// evaluates its expression in postfix order before storing. Using a
// variable before its declaration, declaring it twice or naming it with
// more than one letter is an error.
package codegen
