/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver merges token documents and resolves references between tokens.
package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// DanglingRef is a reference whose target does not exist.
type DanglingRef struct {
	// From is the dot path of the referencing token.
	From string

	// Ref is the referenced path as written.
	Ref string
}

// DependencyGraph represents a directed graph of token dependencies,
// keyed by dot path. Traversals follow token insertion order.
type DependencyGraph struct {
	order        []string
	dependencies map[string][]string
	nodes        map[string]bool
	dangling     []DanglingRef
}

// BuildDependencyGraph builds a dependency graph from a list of tokens.
// References are read from each token's RawValue.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, tok := range tokens {
		path := tok.DotPath()
		if !graph.nodes[path] {
			graph.order = append(graph.order, path)
		}
		graph.nodes[path] = true
	}

	for _, tok := range tokens {
		path := tok.DotPath()
		for _, ref := range token.FindReferences(tok.RawValue) {
			target, ok := canonicalPath(ref.Path, graph.nodes)
			if !ok {
				graph.dangling = append(graph.dangling, DanglingRef{From: path, Ref: ref.Path})
				continue
			}
			graph.dependencies[path] = append(graph.dependencies[path], target)
		}
	}

	return graph
}

// canonicalPath maps a reference path to a token path.
func canonicalPath(ref string, nodes map[string]bool) (string, bool) {
	for _, candidate := range token.RefCandidates(ref) {
		if nodes[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// Dangling returns references to paths that are not in the graph,
// in token order.
func (g *DependencyGraph) Dangling() []DanglingRef {
	return g.dangling
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
// The first and last elements of a returned cycle are the same token.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		cycle := append([]string{}, path[cycleStart:]...)
		return append(cycle, node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns tokens in dependency order (dependencies first).
// Independent tokens keep insertion order.
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", schema.ErrCircularReference, strings.Join(cycle, " -> "))
	}

	visited := make(map[string]bool)
	result := make([]string, 0, len(g.order))

	for _, node := range g.order {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
