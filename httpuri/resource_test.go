/*
Copyright 2025 Hypertext Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package httpuri

import "testing"

// TestParseResource checks the three-way path/query/fragment split,
// including the precedence rule that a '?' at or after the first '#' is
// literal fragment content, and the normalization of empty components.
func TestParseResource(t *testing.T) {
	testCases := []struct {
		name     string
		tail     string
		path     string
		query    string
		fragment string
	}{
		{name: "path only", tail: "/a/b/c", path: "/a/b/c"},
		{name: "path and query", tail: "/a/b/c?key=val", path: "/a/b/c", query: "key=val"},
		{name: "path and fragment", tail: "/a/b/c#frag", path: "/a/b/c", fragment: "frag"},
		{
			name:     "question mark inside fragment",
			tail:     "/a/b/c#frag?frag-param",
			path:     "/a/b/c",
			fragment: "frag?frag-param",
		},
		{
			name:     "query before fragment",
			tail:     "/a/b/c?key=val&param#frag",
			path:     "/a/b/c",
			query:    "key=val&param",
			fragment: "frag",
		},
		{
			name:     "trailing slash kept in path",
			tail:     "/a/b/c/?key=val&param#frag",
			path:     "/a/b/c/",
			query:    "key=val&param",
			fragment: "frag",
		},
		{
			name:     "slashes inside query and fragment",
			tail:     "/a/b/c?key=d/e#frag/ment?param",
			path:     "/a/b/c",
			query:    "key=d/e",
			fragment: "frag/ment?param",
		},
		{
			name:     "fragment suppresses later query marker",
			tail:     "/a/b/c#frag?param&key=val",
			path:     "/a/b/c",
			fragment: "frag?param&key=val",
		},
		{name: "adversarial both delimiters", tail: "/a?x#y?z", path: "/a", query: "x", fragment: "y?z"},
		{name: "adversarial fragment first", tail: "/a#y?z", path: "/a", fragment: "y?z"},
		{name: "percent escapes untouched", tail: "/%02/%03/%04#frag", path: "/%02/%03/%04", fragment: "frag"},
		{name: "root path", tail: "/", path: "/"},
		{name: "empty tail", tail: "", path: "/"},
		{name: "bare delimiters", tail: "?#", path: "/"},
		{name: "empty fragment dropped", tail: "?key=val#", path: "/", query: "key=val"},
		{name: "empty query dropped", tail: "?#frag", path: "/", fragment: "frag"},
		{name: "fragment only", tail: "#frag", path: "/", fragment: "frag"},
		{name: "query only", tail: "?key=val", path: "/", query: "key=val"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ParseResource(tc.tail)

			if got := res.Path(); got != tc.path {
				t.Errorf("Path() = %q, want %q", got, tc.path)
			}

			query, hasQuery := res.Query()
			if hasQuery != (tc.query != "") || query != tc.query {
				t.Errorf("Query() = %q, %v, want %q, %v", query, hasQuery, tc.query, tc.query != "")
			}

			fragment, hasFragment := res.Fragment()
			if hasFragment != (tc.fragment != "") || fragment != tc.fragment {
				t.Errorf("Fragment() = %q, %v, want %q, %v",
					fragment, hasFragment, tc.fragment, tc.fragment != "")
			}
		})
	}
}

// TestParseResourceNormalizationIdempotence checks that the empty tail
// and the root path parse to identical values.
func TestParseResourceNormalizationIdempotence(t *testing.T) {
	if ParseResource("") != ParseResource("/") {
		t.Errorf("ParseResource(\"\") = %+v, ParseResource(\"/\") = %+v, want equal",
			ParseResource(""), ParseResource("/"))
	}
}

// TestResourceString checks rendering, including the round trip for
// already-normalized tails.
func TestResourceString(t *testing.T) {
	testCases := []struct {
		name     string
		tail     string
		expected string
	}{
		{name: "full resource", tail: "/a/b/c?key=val#frag", expected: "/a/b/c?key=val#frag"},
		{name: "path only", tail: "/a", expected: "/a"},
		{name: "empty tail normalized", tail: "", expected: "/"},
		{name: "bare delimiters normalized", tail: "?#", expected: "/"},
		{name: "question mark in fragment", tail: "/a#y?z", expected: "/a#y?z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ParseResource(tc.tail)
			if got := res.String(); got != tc.expected {
				t.Errorf("ParseResource(%q).String() = %q, want %q", tc.tail, got, tc.expected)
			}

			// Rendering a parsed resource and re-parsing it must be a
			// fixed point.
			if reparsed := ParseResource(res.String()); reparsed != res {
				t.Errorf("re-parse of %q = %+v, want %+v", res.String(), reparsed, res)
			}
		})
	}
}
