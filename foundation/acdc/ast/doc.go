// Package ast defines the syntax tree produced by the ACDC parser.
//
// A tree has one statement root (IntDeclare, Print or Assign). Assign holds
// an expression built from IntLiteral, VarRef and BinOp. String renders a
// node fully parenthesised, so "a = 3 + 4 * 2" prints as "a=(3+(4*2))" and
// the output parses back to an identical tree.
//
// Code that must handle every node kind implements Visitor; TreeVisitor,
// NameCollector and Evaluator are the implementations shipped here.
package ast
