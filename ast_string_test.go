package main

import "testing"

func TestRenderProgram(t *testing.T) {
	src := "function add(a, b)\n  return a + b;\nend\nlocal n 5;\nif n < x then\n  add(n, 1);\nend"
	want := src

	if got := mustParse(t, src).String(); got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderNestedBodies(t *testing.T) {
	src := "function f()\n  if x then\n    return baz();\n  end\nend"

	if got := mustParse(t, src).String(); got != src {
		t.Fatalf("want:\n%s\ngot:\n%s", src, got)
	}
}

// Rendering is a fixed point: parsing a rendered AST and rendering again
// yields the same text.
func TestRenderRoundTrip(t *testing.T) {
	srcs := []string{
		"local x 5;",
		"5(x);",
		"foo(bar(1), baz());",
		"function noop()\nend",
		"if a ~= b then return foo(a, b); end",
	}

	for _, src := range srcs {
		rendered := mustParse(t, src).String()
		again := mustParse(t, rendered).String()
		if rendered != again {
			t.Fatalf("rendering not stable for %q:\n%s\n---\n%s", src, rendered, again)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := mustParse(t, "").String(); got != "" {
		t.Fatalf("want empty rendering, got %q", got)
	}
}
