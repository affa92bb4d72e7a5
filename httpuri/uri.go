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

// Package httpuri provides a minimal, allocation-free parser for HTTP
// URIs as they appear in a request line (RFC 7230, Section 2.7).
//
// Components are extracted along defined delimiters; further validation
// and processing, such as percent decoding, query decoding, and punycode
// decoding, is left to higher layers. In the pursuit of simplicity the
// package supports no generic or non-http URIs such as "file:" and
// "ftp://". Only the reduced syntax for the "http://" (Section 2.7.1)
// and "https://" (Section 2.7.2) schemes is implemented.
//
// Every component is a sub-slice of the string given to Parse, so a Uri
// is valid exactly as long as the caller keeps that string alive;
// nothing is copied or decoded.
//
//	uri, err := httpuri.Parse("https://example.com:443/r/rarepuppers?k=v&v=k#top")
//	// uri.Scheme()          == httpuri.SchemeHTTPS
//	// uri.Authority()       == "example.com:443"
//	// uri.Resource().Path() == "/r/rarepuppers"
package httpuri

import (
	"encoding/json"
	"strings"
)

// schemeDelim separates the scheme token from the rest of the URI.
const schemeDelim = "://"

// Uri holds the components of an HTTP request-line URI: the scheme, the
// authority for the target resource (typically a domain name or IP
// address, possibly with a username and port), and the path+query+
// fragment resource. The authority and resource views alias the parsed
// input; see the package documentation for the lifetime rule.
//
// A Uri is immutable. Comparing two Uris with == compares the viewed
// text, not buffer identity.
type Uri struct {
	scheme    Scheme
	authority string
	resource  Resource
}

// Parse splits s into Uri components.
//
// The string must contain no whitespace, as required by RFC 7230,
// Section 3.1.1; the caller is expected to have enforced that already.
// Parse fails with ErrMalformed when the first "://" is missing, when
// the scheme token preceding it is neither "http" nor "https", or when
// the authority is empty.
func Parse(s string) (Uri, error) {
	i := strings.Index(s, schemeDelim)
	if i < 0 {
		return Uri{}, ErrMalformed
	}

	// An input starting with "://" yields an empty scheme token, which
	// ParseScheme rejects like any other unrecognized token.
	scheme, err := ParseScheme(s[:i])
	if err != nil {
		return Uri{}, err
	}

	rest := s[i+len(schemeDelim):]
	authority, tail := rest, ""
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		// The slash stays on the tail so the resource keeps its
		// leading '/'.
		authority, tail = rest[:j], rest[j:]
	}
	if authority == "" {
		return Uri{}, ErrMalformed
	}

	return Uri{
		scheme:    scheme,
		authority: authority,
		resource:  ParseResource(tail),
	}, nil
}

// Scheme returns the URI's scheme.
func (u Uri) Scheme() Scheme {
	return u.scheme
}

// Authority returns the authority view. It is never empty on a Uri
// produced by Parse.
func (u Uri) Authority() string {
	return u.authority
}

// Resource returns the path+query+fragment components.
func (u Uri) Resource() Resource {
	return u.resource
}

// AppendTo writes the rendered URI into the provided strings.Builder in
// the format required by RFC 7230, Sections 2.7.1 and 2.7.2.
func (u Uri) AppendTo(b *strings.Builder) {
	b.WriteString(u.scheme.String())
	b.WriteString(schemeDelim)
	b.WriteString(u.authority)
	u.resource.AppendTo(b)
}

// String renders the URI: the scheme token, "://", the authority, and
// the resource. Parsing the result yields a Uri equal to u, since
// rendering only re-inserts the delimiters the parse consumed.
func (u Uri) String() string {
	var b strings.Builder
	b.Grow(len("https") + len(schemeDelim) + len(u.authority) +
		len(u.resource.path) + len(u.resource.query) + len(u.resource.fragment) + 2)
	u.AppendTo(&b)
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface, encoding the Uri
// as its rendered string.
func (u Uri) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a
// JSON string into a Uri, performing validation in the process. The
// resulting views alias the decoded string, which the Uri keeps
// reachable.
func (u *Uri) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
