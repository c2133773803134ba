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

package match_test

import (
	"bytes"
	"log/slog"
	"testing"

	"fillmore-labs.com/namematch/internal/testsource"
	. "fillmore-labs.com/namematch/match"
)

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithConcurrency(4), nil, Options{WithLogger(slog.Default())}}

	v := opts.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("LogValue().Kind() = %v, want group", v.Kind())
	}

	attrs := v.Group()
	if len(attrs) != 3 {
		t.Fatalf("Got %d attrs, want 3", len(attrs))
	}
	if attrs[0].Key != "concurrency" || attrs[0].Value.Int64() != 4 {
		t.Errorf("attrs[0] = %v, want concurrency=4", attrs[0])
	}
	if attrs[1].Key != "nil" {
		t.Errorf("attrs[1] = %v, want nil placeholder", attrs[1])
	}
	if attrs[2].Key != "logger" || !attrs[2].Value.Bool() {
		t.Errorf("attrs[2] = %v, want logger=true", attrs[2])
	}
}

func TestWithLoggerDebugsNullMatches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := testsource.ParseFile(t, "foo(a: 2)")

	got := Resolve(f, []int{-1, 0}, WithLogger(logger))
	if len(got) != 2 {
		t.Fatalf("Got %d results, want 2", len(got))
	}

	if !bytes.Contains(buf.Bytes(), []byte("out of bounds")) {
		t.Errorf("Log output %q does not mention the out-of-bounds location", buf.String())
	}
}
