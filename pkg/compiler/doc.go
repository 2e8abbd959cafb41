// Package compiler provides the front end of a compiler for a tiny C subset:
// a lexer and a parser for programs made of "int name() { return expr; }"
// functions, where expr is an integer literal under any chain of the prefix
// operators ~, ! and -.
//
// Pipeline: C source → Lex → Parse → *Program
package compiler
