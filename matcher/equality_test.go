// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matcher

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"go.chromium.org/expect/failure"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("int equal", shouldMatch[int](Equal(1), 1, "expected 1 not to equal 1"))
	t.Run("int inequal", shouldNotMatch[int](Equal(2), 1, "expected 1 to equal 2"))
	t.Run("string inequal", shouldNotMatch[string](Equal("b"), "a", `expected "a" to equal "b"`))

	type foo struct {
		A uint16
		B string
	}
	t.Run("struct equal", shouldMatch[foo](Equal(foo{10, "Hello"}), foo{10, "Hello"}))
	t.Run("struct inequal", shouldNotMatch[foo](
		Equal(foo{10, "Goodbye"}), foo{10, "Hello"},
		`expected matcher.foo{A:10, B:"Hello"} to equal matcher.foo{A:10, B:"Goodbye"}`))

	t.Run("NaN never matches", shouldNotMatch[float64](Equal(math.NaN()), math.NaN()))

	a, b := 100, 100
	t.Run("pointers compare by identity", shouldNotMatch[*int](Equal(&a), &b, "expected &100 to equal &100"))

	t.Run("message is pure", func(t *testing.T) {
		m := Equal(3)
		for range 3 {
			if got := m.FailMsg(4); got != "expected 4 to equal 3" {
				t.Fatalf("FailMsg changed across calls: %q", got)
			}
		}
	})
}

func TestEqualInterfaces(t *testing.T) {
	t.Parallel()

	t.Run("comparable dynamic values", shouldMatch[any](Equal[any](1), 1, "expected 1 not to equal 1"))
	t.Run("different dynamic types", shouldNotMatch[any](Equal[any](1), "1", `expected "1" to equal 1`))
	t.Run("nil", shouldMatch[any](Equal[any](nil), nil))
	t.Run("nil and a value", shouldNotMatch[any](Equal[any](nil), 0, "expected 0 to equal nil"))

	t.Run("uncomparable dynamic values", func(t *testing.T) {
		m := Equal[any]([]int{1})
		if m.Match([]int{1}) {
			t.Fatal("uncomparable values matched")
		}
		err := m.CheckOperand([]int{1})
		if err == nil {
			t.Fatal("expected an operand error")
		}
		if diff := cmp.Diff("[]int is not comparable with ==", err.Error()); diff != "" {
			t.Errorf("unexpected error (-want +got):\n%s", diff)
		}
		want := []*failure.Finding{
			failure.Because("[]int is not comparable with ==; use Resemble to compare it structurally"),
		}
		for _, negated := range []bool{false, true} {
			if diff := cmp.Diff(want, m.Explain([]int{1}, negated)); diff != "" {
				t.Errorf("unexpected findings, negated=%t (-want +got):\n%s", negated, diff)
			}
		}
	})

	t.Run("uncomparable expected value", func(t *testing.T) {
		m := Equal[any](map[string]int{})
		if m.Match(1) {
			t.Fatal("uncomparable values matched")
		}
		if m.CheckOperand(1) == nil {
			t.Fatal("expected an operand error")
		}
	})

	t.Run("struct with an interface field", func(t *testing.T) {
		type box struct{ V any }
		shouldMatch[box](Equal(box{1}), box{1})(t)
		shouldNotMatch[box](Equal(box{1}), box{[]int{1}})(t)
		if err := Equal(box{1}).CheckOperand(box{[]int{1}}); err == nil {
			t.Fatal("expected an operand error")
		}
	})

	t.Run("static types skip the operand check", func(t *testing.T) {
		if err := Equal(1).CheckOperand(2); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	})
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	caseless := func(a, b string) bool { return strings.EqualFold(a, b) }
	t.Run("match", shouldMatch[string](EqualFunc("HeLLo", caseless), "hello"))
	t.Run("no match", shouldNotMatch[string](EqualFunc("hello", caseless), "bye", `expected "bye" to equal "hello"`))
}

func TestResemble(t *testing.T) {
	t.Parallel()

	t.Run("slices", shouldMatch[[]int](Resemble([]int{1, 2}), []int{1, 2}))
	t.Run("slices differ", shouldNotMatch[[]int](Resemble([]int{1, 2}), []int{1, 3},
		"expected []int{1, 3} to equal []int{1, 2}"))
	t.Run("protos", shouldMatch[*wrapperspb.StringValue](
		Resemble(wrapperspb.String("x")), wrapperspb.String("x")))
	t.Run("protos differ", shouldNotMatch[*wrapperspb.StringValue](
		Resemble(wrapperspb.String("x")), wrapperspb.String("y")))
}

func TestEqualExplain(t *testing.T) {
	t.Parallel()

	diffOf := func(t *testing.T, findings []*failure.Finding) *failure.Finding {
		t.Helper()
		if len(findings) != 1 {
			t.Fatalf("expected exactly one finding, got %d", len(findings))
		}
		return findings[0]
	}

	t.Run("short values need no diff", func(t *testing.T) {
		if f := Equal(1).Explain(2, false); f != nil {
			t.Fatalf("unexpected findings: %v", f)
		}
	})

	t.Run("negated never diffs", func(t *testing.T) {
		if f := Equal(strings.Repeat("x", 100)).Explain(strings.Repeat("x", 100), true); f != nil {
			t.Fatalf("unexpected findings: %v", f)
		}
	})

	t.Run("long single line gets word diff", func(t *testing.T) {
		x := strings.Repeat("X", 40)
		f := diffOf(t, Equal(x+"merp"+x).Explain(x+"woat"+x, false))
		if f.Type != failure.TypeWordDiff {
			t.Fatalf("type = %v", f.Type)
		}
		shouldContain(t, f.Value[0], "[-merp-]", "{+woat+}")
	})

	t.Run("multi-line text gets unified diff", func(t *testing.T) {
		f := diffOf(t, Equal("a\nb\nc\n").Explain("a\nB\nc\n", false))
		if f.Type != failure.TypeUnifiedDiff {
			t.Fatalf("type = %v", f.Type)
		}
		shouldContain(t, strings.Join(f.Value, "\n"), "--- expected", "+++ actual", "-b", "+B")
	})

	t.Run("long structures get cmp diff", func(t *testing.T) {
		type rec struct {
			Name  string
			Count int
		}
		f := diffOf(t, Equal(rec{"a long enough name", 1}).Explain(rec{"a long enough name", 2}, false))
		if f.Type != failure.TypeCmpDiff {
			t.Fatalf("type = %v", f.Type)
		}
		shouldContain(t, strings.Join(f.Value, "\n"), "Count")
	})

	t.Run("unexported fields drop the diff", func(t *testing.T) {
		type opaque struct{ secret string }
		x := strings.Repeat("x", 40)
		if f := Equal(opaque{x}).Explain(opaque{x + "y"}, false); f != nil {
			t.Fatalf("unexpected findings: %v", f)
		}
	})

	t.Run("different pointers to equal values", func(t *testing.T) {
		a, b := 100, 100
		want := []*failure.Finding{
			failure.Because("the pointers differ but point to equal values; did you want Resemble?"),
		}
		if diff := cmp.Diff(want, Equal(&a).Explain(&b, false)); diff != "" {
			t.Errorf("unexpected findings (-want +got):\n%s", diff)
		}
	})

	t.Run("NaN", func(t *testing.T) {
		f := diffOf(t, Equal(math.NaN()).Explain(1.0, false))
		shouldContain(t, f.Value[0], "NaN")
	})
}
