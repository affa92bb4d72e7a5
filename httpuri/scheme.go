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

// Scheme identifies one of the two request-line URI schemes. RFC 7230,
// Section 2.7 only gives syntax for "http" and "https", so the set is
// closed: parsing any other token fails instead of producing a third
// variant.
type Scheme int

const (
	// SchemeHTTP is plaintext http.
	SchemeHTTP Scheme = iota
	// SchemeHTTPS is http over TLS.
	SchemeHTTPS
)

// ParseScheme resolves a scheme token to its Scheme value. The match is
// exact and case-sensitive; any other token, including the empty string,
// returns ErrMalformed.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "http":
		return SchemeHTTP, nil
	case "https":
		return SchemeHTTPS, nil
	}
	return 0, ErrMalformed
}

// String returns the scheme token. It is the inverse of ParseScheme for
// the two declared values; out-of-range values render as the empty
// string.
func (s Scheme) String() string {
	switch s {
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	}
	return ""
}

// DefaultPort returns the port implied by the scheme when the authority
// carries none: 80 for http, 443 for https.
func (s Scheme) DefaultPort() uint16 {
	if s == SchemeHTTPS {
		return 443
	}
	return 80
}
