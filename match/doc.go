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

// Package match resolves source locations to the name and argument-label
// ranges of the construct enclosing them.
//
// # Overview
//
// Given a parsed [fillmore-labs.com/namematch/syntax.File] and a batch of
// byte offsets, [Resolve] finds, for each offset, the call, declaration,
// selector reference, string literal or comment it falls in, and reports
// the exact text spans a rename or label-rewrite edit would have to
// replace.
//
// # Example
//
// For the buffer
//
//	foo(a: 2, 3)
//
// a location on the label a resolves to the base-name range of foo, a
// label range covering "a: " (the colon's trivia is included so an edit
// can consume it) and an empty label range in front of 3.
//
// # Guarantees
//
// Resolution is batch-never-fails: every location produces a result, with
// a null match for locations outside any matchable construct. The output
// has one element per input location, in input order.
package match
