// Package expr compiles and evaluates restricted mathematical expressions
// of two variables, such as "sin(x)*cos(y)" or "x**2 + y**2".
//
// The grammar is closed: numeric literals, the variables x and y, the
// constants pi and e, the operators + - * / ** and unary minus, parentheses,
// and single-argument calls to sin, cos, tan, exp, log, sqrt and abs.
// Nothing else parses, so there is no capability to sandbox away: an
// expression either compiles into a pure arithmetic tree or fails with
// [*Error] at compile time.
//
// A compiled [Expr] is immutable and safe for concurrent evaluation.
package expr
