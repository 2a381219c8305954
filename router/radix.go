// Copyright 2025 The Helix Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"fmt"
	"strings"
)

// defaultWildcardParam is the capture name for an unnamed trailing wildcard.
const defaultWildcardParam = "filepath"

type segmentKind int

const (
	segLiteral segmentKind = iota
	segParam
	segWildcard
)

// segment is one parsed element of a route pattern.
type segment struct {
	kind  segmentKind
	value string // literal text, parameter name, or wildcard capture name
}

// parsePattern splits a route pattern into segments and collects parameter
// names in declaration order.
//
// Accepted syntax per segment:
//   - literal text: "users"
//   - parameter: "{id}" (whole segment wrapped in braces, name required)
//   - trailing wildcard: "*" or "*filepath" (final segment only)
//
// A trailing slash produces a final empty literal segment, which keeps
// "/users" and "/users/" distinct routes.
func parsePattern(pattern string) ([]segment, []string, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, nil, fmt.Errorf("%w: %q must start with '/'", ErrInvalidPattern, pattern)
	}
	if pattern == "/" {
		return nil, nil, nil
	}

	raw := strings.Split(pattern[1:], "/")
	segs := make([]segment, 0, len(raw))
	var params []string

	for i, s := range raw {
		last := i == len(raw)-1
		switch {
		case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
			name := s[1 : len(s)-1]
			if name == "" || strings.ContainsAny(name, "{}*") {
				return nil, nil, fmt.Errorf("%w: bad parameter segment %q in %q", ErrInvalidPattern, s, pattern)
			}
			for _, p := range params {
				if p == name {
					return nil, nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, pattern)
				}
			}
			params = append(params, name)
			segs = append(segs, segment{kind: segParam, value: name})

		case strings.HasPrefix(s, "*"):
			if !last {
				return nil, nil, fmt.Errorf("%w: %q", ErrWildcardNotLast, pattern)
			}
			name := s[1:]
			if name == "" {
				name = defaultWildcardParam
			}
			params = append(params, name)
			segs = append(segs, segment{kind: segWildcard, value: name})

		case strings.ContainsAny(s, "{}"):
			return nil, nil, fmt.Errorf("%w: unbalanced braces in segment %q of %q", ErrInvalidPattern, s, pattern)

		default:
			// Includes the empty final segment produced by a trailing slash.
			segs = append(segs, segment{kind: segLiteral, value: s})
		}
	}

	return segs, params, nil
}

// isLiteralPattern reports whether every segment is literal. Fully literal
// patterns live in the root full-path table for O(1) lookup instead of the
// tree.
func isLiteralPattern(segs []segment) bool {
	for _, s := range segs {
		if s.kind != segLiteral {
			return false
		}
	}
	return true
}

// edge is a per-segment literal child (linear scan beats map hashing for the
// small fan-out typical of route trees).
type edge struct {
	label string
	node  *node
}

// paramChild captures one dynamic segment such as {id}.
// A node has at most one parameter child: two patterns with differing
// parameter names at the same position would match identical concrete paths
// at equal precedence, which is a registration conflict.
type paramChild struct {
	key     string
	pattern string // pattern that created this child, for conflict reports
	node    *node
}

// wildcardChild captures the remainder of the path.
type wildcardChild struct {
	key  string
	node *node
}

// node is one level of the per-method route tree.
//
// The tree is written only during the single-threaded assembly phase and is
// immutable after Freeze, so request goroutines read it without locking.
type node struct {
	route       *Route
	edges       []edge
	param       *paramChild
	wildcard    *wildcardChild
	staticPaths map[string]*node // root node only: full literal path -> terminal
}

func (n *node) findChild(seg string) *node {
	for i := range n.edges {
		if n.edges[i].label == seg {
			return n.edges[i].node
		}
	}
	return nil
}

func (n *node) findOrCreateChild(seg string) *node {
	if child := n.findChild(seg); child != nil {
		return child
	}
	child := &node{}
	n.edges = append(n.edges, edge{label: seg, node: child})
	return child
}

// insertStatic registers a fully literal pattern in the root full-path table.
func (n *node) insertStatic(rt *Route) error {
	if n.staticPaths == nil {
		n.staticPaths = make(map[string]*node, 8)
	}
	if existing := n.staticPaths[rt.pattern]; existing != nil && existing.route != nil {
		return &ConflictError{Method: rt.method, Existing: existing.route.pattern, Pattern: rt.pattern}
	}
	n.staticPaths[rt.pattern] = &node{route: rt}
	return nil
}

// insert adds a parsed route to the tree, reporting conflicts with the
// pattern already occupying the colliding position.
func (n *node) insert(rt *Route, segs []segment) error {
	if len(segs) == 0 { // root pattern "/"
		if n.route != nil {
			return &ConflictError{Method: rt.method, Existing: n.route.pattern, Pattern: rt.pattern}
		}
		n.route = rt
		return nil
	}

	cur := n
	for i, seg := range segs {
		switch seg.kind {
		case segLiteral:
			cur = cur.findOrCreateChild(seg.value)

		case segParam:
			if cur.param == nil {
				cur.param = &paramChild{key: seg.value, pattern: rt.pattern, node: &node{}}
			} else if cur.param.key != seg.value {
				return &ConflictError{Method: rt.method, Existing: cur.param.pattern, Pattern: rt.pattern}
			}
			cur = cur.param.node

		case segWildcard:
			if cur.wildcard == nil {
				cur.wildcard = &wildcardChild{key: seg.value, node: &node{}}
			}
			if cur.wildcard.node.route != nil {
				return &ConflictError{Method: rt.method, Existing: cur.wildcard.node.route.pattern, Pattern: rt.pattern}
			}
			cur.wildcard.node.route = rt
			return nil
		}

		if i == len(segs)-1 {
			if cur.route != nil {
				return &ConflictError{Method: rt.method, Existing: cur.route.pattern, Pattern: rt.pattern}
			}
			cur.route = rt
		}
	}

	return nil
}

// match resolves a request path to a route, writing captured parameters into
// the context. Segments are sliced from the path in place; nothing allocates
// on the match path for routes with eight or fewer parameters.
//
// Precedence at each position: exact literal edge, then parameter child, then
// wildcard. The tree does not backtrack: once a literal edge consumes a
// segment, a sibling parameter route cannot reclaim it deeper in the path.
func (n *node) match(path string, c *Context) *Route {
	if path == "/" || path == "" {
		return n.route
	}

	if n.staticPaths != nil {
		if terminal := n.staticPaths[path]; terminal != nil {
			return terminal.route
		}
	}

	cur := n
	start := 0
	if path[0] == '/' {
		start = 1
	}
	pathLen := len(path)

	for {
		end := start
		for end < pathLen && path[end] != '/' {
			end++
		}
		seg := path[start:end]
		last := end >= pathLen

		if next := cur.findChild(seg); next != nil {
			cur = next
		} else if cur.param != nil && seg != "" {
			c.addParam(cur.param.key, seg)
			cur = cur.param.node
		} else if cur.wildcard != nil {
			c.addParam(cur.wildcard.key, path[start:])
			return cur.wildcard.node.route
		} else {
			return nil
		}

		if last {
			return cur.route
		}
		start = end + 1
	}
}
