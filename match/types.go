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

package match

import (
	"strconv"

	"fillmore-labs.com/namematch/syntax"
)

// SourceRange is a half-open byte-offset span into the source buffer the
// tree was parsed from.
type SourceRange = syntax.Range

// LabelRangeType describes what the label ranges of a [ResolvedLoc] cover.
type LabelRangeType uint8

//go:generate go tool stringer -type LabelRangeType -linecomment
const (
	// LabelNone marks a construct without labels, e.g. a bare reference.
	LabelNone LabelRangeType = iota // none
	// LabelCallArg marks argument labels in a call: foo([a: ]2).
	LabelCallArg // call-arg
	// LabelParam marks parameter labels in a declaration: func([a b]: Int).
	LabelParam // param
	// LabelNoncollapsibleParam marks parameter labels that cannot be
	// written as a single name: subscript([a a]: Int).
	LabelNoncollapsibleParam // noncollapsible-param
	// LabelSelector marks labels inside a selector: #selector(foo([a]:)).
	LabelSelector // selector
)

// Context is the lexical environment a resolved location lives in,
// independent of the matched construct's kind.
type Context uint8

//go:generate go tool stringer -type Context -linecomment
const (
	ContextDefault       Context = iota // default
	ContextSelector                     // selector
	ContextComment                      // comment
	ContextStringLiteral                // string-literal
)

// TrailingIndex is an optional index into [ResolvedLoc.LabelRanges]. The
// zero value means "no trailing closure".
type TrailingIndex struct {
	index int
	valid bool
}

// TrailingAt returns a valid index.
func TrailingAt(i int) TrailingIndex {
	return TrailingIndex{index: i, valid: true}
}

// Index returns the index and whether it is present.
func (t TrailingIndex) Index() (int, bool) { return t.index, t.valid }

// Valid reports whether an index is present.
func (t TrailingIndex) Valid() bool { return t.valid }

func (t TrailingIndex) String() string {
	if !t.valid {
		return "none"
	}

	return strconv.Itoa(t.index)
}

// ResolvedLoc describes the construct enclosing one input location. All
// ranges are copied offsets; the value does not reference the tree.
type ResolvedLoc struct {
	// Range covers the base name of the matched construct, excluding
	// trivia.
	Range SourceRange

	// LabelRanges holds one entry per argument or parameter slot, in
	// source order. Call-argument labels span from the label name
	// through the trivia following the colon, so that a label rewrite
	// can consume the colon; declaration labels span first and second
	// name; a labelless slot is an empty range at the slot's start.
	LabelRanges []SourceRange

	// FirstTrailingLabel indexes the first label slot belonging to a
	// trailing closure, when one is present.
	FirstTrailingLabel TrailingIndex

	LabelType LabelRangeType

	// IsActive is false when the construct sits in a conditional-
	// compilation branch that is not compiled.
	IsActive bool

	Context Context
}
