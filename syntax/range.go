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

package syntax

import "fmt"

// Range is a half-open span [Start, End) of byte offsets into one source buffer.
type Range struct {
	Start int
	End   int
}

// At returns an empty range positioned at off.
func At(off int) Range {
	return Range{Start: off, End: off}
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool { return r.Start == r.End }

// Contains reports whether off falls inside the range.
func (r Range) Contains(off int) bool {
	return r.Start <= off && off < r.End
}

// Adjacent reports whether one range's end is the other's start.
func (r Range) Adjacent(o Range) bool {
	return r.End == o.Start || o.End == r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
