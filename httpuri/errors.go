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

import "errors"

// ErrMalformed is the only error returned by the parsing functions in this
// package. A missing "://" delimiter, a scheme token other than "http" or
// "https", and an empty authority all report it without further detail.
// Callers that need diagnostics re-inspect the input themselves.
var ErrMalformed = errors.New("httpuri: malformed request-line URI")
