package compiler

import (
	"strings"
	"testing"
)

// simpleSource is a minimal program used for benchmarking the fast path.
const simpleSource = `
int main() {
	return 2;
}
`

// complexSource is a larger program with many functions and long unary
// chains.
var complexSource = buildComplexSource(200)

func buildComplexSource(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("int f")
		sb.WriteString(strings.Repeat("x", i%7+1))
		sb.WriteString("() {\n\treturn ")
		sb.WriteString(strings.Repeat("!-~", i%11))
		sb.WriteString("12345;\n}\n")
	}
	return sb.String()
}

// --- Lex benchmarks ---

func BenchmarkLex_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Lex(simpleSource)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLex_Complex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Lex(complexSource)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Parse benchmarks ---
// Tokens are pre-computed outside the timed region.

func BenchmarkParse_Simple(b *testing.B) {
	tokens, err := Lex(simpleSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Parse(tokens)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Complex(b *testing.B) {
	tokens, err := Lex(complexSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Parse(tokens)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Full pipeline benchmarks (Lex + Parse) ---

func BenchmarkCompile_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(simpleSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile_Complex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(complexSource); err != nil {
			b.Fatal(err)
		}
	}
}
