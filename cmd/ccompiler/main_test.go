package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunBuiltinSource(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	want := "Function(main, Return(UnaryOp(LogicalNeg, UnaryOp(Negation, UnaryOp(BitComp, Int(5))))))"
	if !strings.Contains(stdout.String(), want) {
		t.Errorf("output missing %q:\n%s", want, stdout.String())
	}
}

func TestRunFileWithTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.c")
	src := "int a(){return 1;}\nint b(){return 2;}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-tokens", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"Tokens (18)", "Function(a, Return(Int(1)))", "Function(b, Return(Int(2)))"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Function(a") > strings.Index(out, "Function(b") {
		t.Errorf("functions out of source order:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"Lex", []string{write("lex.c", "int main(){return 2;}@")}, 1, "lex error: unexpected character '@'"},
		{"Parse", []string{write("parse.c", "int main(){return 2;")}, 1, `parse error: function main: expected "}", found end of input`},
		{"Missing File", []string{filepath.Join(dir, "nope.c")}, 1, "read error:"},
		{"Bad Flag", []string{"-nope"}, 2, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr missing %q:\n%s", tt.want, stderr.String())
			}
		})
	}
}
