// Package calc evaluates arithmetic expressions.
//
// An expression is the usual infix notation with + - * /, parentheses, and a
// small set of mathematical functions: cos, acos, sin, asin, tan, atan, sqrt,
// and the two-argument pow. Trigonometric functions work in radians.
//
// Literals written without a decimal point are integers and literals written
// with one are floats, and the distinction carries through evaluation: "2+3"
// is the integer 5 while "2+3.0" is the float 5. Addition, subtraction,
// multiplication, and negation of integers stay integers, with overflow
// reported as an error rather than wrapped around. Division and the
// one-argument functions always produce floats. pow keeps integers integral
// when both arguments are integers and the exponent is not negative.
package calc
