// Package arith implements a small, safe calculator for arithmetic
// expressions.
//
// Expressions are made of decimal numbers, the operators + - * /, and
// parentheses. Multiplication and division bind tighter than addition and
// subtraction, and operators of equal precedence group left to right, so
// "8-2-1" is 5 and "2+3*4" is 14. A number may carry a leading minus sign,
// which is how "3*-2" and "3--2" work. Spaces are ignored everywhere, but
// other whitespace is an invalid character.
//
// Arithmetic uses float64. Format renders a result the way a pocket
// calculator would, hiding representation noise like 0.30000000000000004.
//
// Every failure is an *Error whose Kind says what went wrong and whose Pos
// says where.
package arith
