/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/angel/resolver"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

func tok(path, value string) *token.Token {
	return &token.Token{Path: strings.Split(path, "."), Value: value, RawValue: value}
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	graph := resolver.BuildDependencyGraph([]*token.Token{
		tok("a", "1"),
		tok("b", "{a}"),
		tok("c", "{b}"),
	})

	if cycle := graph.FindCycle(); cycle != nil {
		t.Errorf("expected no cycle, got %v", cycle)
	}
	order, err := graph.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(order, ","); got != "a,b,c" {
		t.Errorf("TopologicalSort() = %s, want a,b,c", got)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	graph := resolver.BuildDependencyGraph([]*token.Token{
		tok("a", "{c}"),
		tok("b", "{a}"),
		tok("c", "{b}"),
	})

	cycle := graph.FindCycle()
	want := []string{"a", "c", "b", "a"}
	if strings.Join(cycle, ",") != strings.Join(want, ",") {
		t.Errorf("FindCycle() = %v, want %v", cycle, want)
	}

	_, err := graph.TopologicalSort()
	if !errors.Is(err, schema.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}

func TestDependencyGraph_SelfReference(t *testing.T) {
	graph := resolver.BuildDependencyGraph([]*token.Token{tok("a", "{a}")})
	if cycle := graph.FindCycle(); strings.Join(cycle, ",") != "a,a" {
		t.Errorf("expected self reference cycle a,a, got %v", cycle)
	}
}

func TestDependencyGraph_TopologicalSortKeepsOrder(t *testing.T) {
	graph := resolver.BuildDependencyGraph([]*token.Token{
		tok("z", "{y}"),
		tok("x", "1"),
		tok("y", "2"),
	})

	order, err := graph.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(order, ","); got != "y,z,x" {
		t.Errorf("TopologicalSort() = %s, want y,z,x", got)
	}
}

func TestDependencyGraph_Dangling(t *testing.T) {
	graph := resolver.BuildDependencyGraph([]*token.Token{
		tok("a", "{missing}"),
		tok("b", "{a.value}"),
	})

	dangling := graph.Dangling()
	if len(dangling) != 1 {
		t.Fatalf("expected one dangling reference, got %v", dangling)
	}
	if dangling[0].From != "a" || dangling[0].Ref != "missing" {
		t.Errorf("unexpected dangling reference %+v", dangling[0])
	}
}
