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

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ASCII returns the URI re-encoded for on-the-wire use. Each component
// is first normalized to Unicode Normalization Form C (NFC), non-ASCII
// characters in the userinfo, path, query, and fragment are
// percent-encoded using their UTF-8 representation, and the host is
// converted to its IDNA (Punycode) ASCII form so the result is
// resolvable in DNS.
//
// Unlike the accessors, the result is a newly allocated string; Parse
// accepts it and the parse is unaffected because no new delimiters are
// introduced. A bracketed IP literal is kept verbatim, as is a host that
// fails IDNA conversion. The Uri itself is not modified.
func (u Uri) ASCII() string {
	var b strings.Builder
	b.Grow(len("https") + len(schemeDelim) + len(u.authority) +
		len(u.resource.path) + len(u.resource.query) + len(u.resource.fragment) + 2)

	b.WriteString(u.scheme.String())
	b.WriteString(schemeDelim)

	userinfo, host, port := splitAuthority(u.authority)
	if userinfo != "" {
		// Per RFC 3987, Section 3.1, components must be in NFC before
		// percent-encoding.
		percentEncode(norm.NFC.String(userinfo), &b)
		b.WriteByte('@')
	}
	if strings.HasPrefix(host, "[") {
		b.WriteString(host)
	} else if asciiHost, err := idna.ToASCII(norm.NFC.String(host)); err == nil {
		b.WriteString(asciiHost)
	} else {
		b.WriteString(host)
	}
	if port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}

	percentEncode(norm.NFC.String(u.resource.path), &b)
	if query, ok := u.resource.Query(); ok {
		b.WriteByte('?')
		percentEncode(norm.NFC.String(query), &b)
	}
	if fragment, ok := u.resource.Fragment(); ok {
		b.WriteByte('#')
		percentEncode(norm.NFC.String(fragment), &b)
	}

	return b.String()
}

// percentEncode writes s to b with every non-ASCII rune expanded to the
// percent-encoded octets of its UTF-8 encoding. ASCII passes through
// untouched, including any '%' already present: existing escapes belong
// to the caller and are not re-encoded.
func percentEncode(s string, b *strings.Builder) {
	for _, ru := range s {
		if ru <= unicode.MaxASCII {
			b.WriteRune(ru)
			continue
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], ru)
		for i := 0; i < n; i++ {
			fmt.Fprintf(b, "%%%02X", buf[i])
		}
	}
}

// splitAuthority splits an authority string into its userinfo, host, and
// port components. The userinfo ends at the last '@'; the port starts
// after the last ':' of the remainder, unless the host is a bracketed IP
// literal, in which case only a ':' after the closing bracket opens a
// port. An unterminated bracket swallows the rest of the authority.
func splitAuthority(authority string) (userinfo, host, port string) {
	hostport := authority
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		userinfo, hostport = authority[:at], authority[at+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		end := strings.LastIndexByte(hostport, ']')
		if end < 0 {
			return userinfo, hostport, ""
		}
		host = hostport[:end+1]
		if len(hostport) > end+1 && hostport[end+1] == ':' {
			port = hostport[end+2:]
		}
		return userinfo, host, port
	}

	if colon := strings.LastIndexByte(hostport, ':'); colon >= 0 {
		return userinfo, hostport[:colon], hostport[colon+1:]
	}
	return userinfo, hostport, ""
}
