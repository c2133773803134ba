// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package syntax provides the immutable, trivia-preserving syntax tree
// that [fillmore-labs.com/namematch/match] resolves locations against.
//
// The tree covers the constructs the matcher cares about: calls with
// argument labels and trailing closures, function, initializer and
// subscript declarations, #selector references, string literals with
// interpolation, and #if configuration blocks whose clauses carry an
// active flag. All positions are byte offsets into the original buffer,
// expressed as half-open [Range] values.
package syntax
