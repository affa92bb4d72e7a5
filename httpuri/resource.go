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

package httpuri

import "strings"

// Resource holds the path, query, and fragment views of a request-line
// URI. All three alias the string given to ParseResource, so a Resource
// stays valid for as long as the caller keeps that string reachable.
// Comparing two Resources with == compares the viewed text.
//
// The query and fragment are stored without their leading '?' and '#'
// delimiters. Internally the empty string means the component is absent;
// the encoding is unambiguous because ParseResource normalizes a present
// but empty component to absent.
type Resource struct {
	path     string
	query    string
	fragment string
}

// ParseResource splits a path+query+fragment tail into its components.
// It never fails: any input, including the empty string, maps to a
// well-formed Resource.
//
// The first '?' and the first '#' are located independently. A '?' only
// opens a query when it occurs before any '#'. A '?' at or after the '#'
// is literal fragment content and is never re-parsed as a query
// delimiter, so a fragment may itself contain an unescaped '?'.
//
// Normalization: an empty path becomes "/", and an empty query or
// fragment (delimiter present with nothing behind it) becomes absent.
// No percent-decoding or validation is performed; the components are raw
// sub-slices of the input.
func ParseResource(tail string) Resource {
	q := strings.IndexByte(tail, '?')
	f := strings.IndexByte(tail, '#')

	var r Resource
	switch {
	case q >= 0 && f >= 0 && q < f:
		r = Resource{path: tail[:q], query: tail[q+1 : f], fragment: tail[f+1:]}
	case f >= 0:
		// Either there is no '?', or it sits inside the fragment.
		// Only the '#' acts as a delimiter.
		r = Resource{path: tail[:f], fragment: tail[f+1:]}
	case q >= 0:
		r = Resource{path: tail[:q], query: tail[q+1:]}
	default:
		r = Resource{path: tail}
	}

	if r.path == "" {
		r.path = "/"
	}
	return r
}

// Path returns the path view. It is never empty: a tail with no path
// parses to "/".
func (r Resource) Path() string {
	return r.path
}

// Query returns the query view, without the leading '?', and a boolean
// indicating whether a query is present.
func (r Resource) Query() (string, bool) {
	return r.query, r.query != ""
}

// Fragment returns the fragment view, without the leading '#', and a
// boolean indicating whether a fragment is present.
func (r Resource) Fragment() (string, bool) {
	return r.fragment, r.fragment != ""
}

// AppendTo writes the rendered resource into the provided
// strings.Builder, avoiding the intermediate allocation of String: the
// path, then "?" and the query if present, then "#" and the fragment if
// present.
func (r Resource) AppendTo(b *strings.Builder) {
	b.WriteString(r.path)
	if r.query != "" {
		b.WriteByte('?')
		b.WriteString(r.query)
	}
	if r.fragment != "" {
		b.WriteByte('#')
		b.WriteString(r.fragment)
	}
}

// String renders the resource in request-target form.
func (r Resource) String() string {
	var b strings.Builder
	b.Grow(len(r.path) + len(r.query) + len(r.fragment) + 2) // Pre-allocate for efficiency.
	r.AppendTo(&b)
	return b.String()
}
