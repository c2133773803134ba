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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/namematch/match"
	"fillmore-labs.com/namematch/syntax"
)

var (
	offsets     []int
	defines     []string
	jsonOutput  bool
	highlighted bool
	concurrency int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] <file>",
	Short: "Resolve offsets in a source file",
	Long: `Resolve reads a source file ("-" for standard input), parses it and
resolves each --offset to the enclosing construct. Results are printed one
per offset, in the order the offsets were given.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().IntSliceVarP(&offsets, "offset", "o", nil, "Byte offset to resolve (repeatable)")
	resolveCmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "Build configuration name to treat as true")
	resolveCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	resolveCmd.Flags().BoolVar(&highlighted, "highlight", false, "Print the source with resolved ranges highlighted")
	resolveCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 1, "Number of offsets resolved in parallel")

	_ = resolveCmd.MarkFlagRequired("offset")
}

func runResolve(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	file, err := syntax.Parse(src, defines...)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	results := match.Resolve(file, offsets,
		match.WithConcurrency(concurrency),
		match.WithLogger(slog.Default()),
	)

	out := cmd.OutOrStdout()
	switch {
	case jsonOutput:
		return writeJSON(out, offsets, results)

	case highlighted:
		return highlight(out, src, results)

	default:
		return writeText(out, offsets, results)
	}
}

// readSource reads the named file, or standard input when name is "-".
func readSource(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}

		return src, nil
	}

	src, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	return src, nil
}

func writeText(w io.Writer, locs []int, results []match.ResolvedLoc) error {
	for i, r := range results {
		if _, err := fmt.Fprintf(w, "%d: %s %v %s", locs[i], r.LabelType, r.Range, r.Context); err != nil {
			return err
		}

		for _, l := range r.LabelRanges {
			if _, err := fmt.Fprintf(w, " %v", l); err != nil {
				return err
			}
		}

		if idx, ok := r.FirstTrailingLabel.Index(); ok {
			if _, err := fmt.Fprintf(w, " trailing=%d", idx); err != nil {
				return err
			}
		}

		if !r.IsActive {
			if _, err := fmt.Fprint(w, " inactive"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

type jsonRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonResult struct {
	Offset             int         `json:"offset"`
	Range              jsonRange   `json:"range"`
	LabelRanges        []jsonRange `json:"labelRanges,omitempty"`
	FirstTrailingLabel *int        `json:"firstTrailingLabel,omitempty"`
	LabelType          string      `json:"labelType"`
	IsActive           bool        `json:"isActive"`
	Context            string      `json:"context"`
}

func writeJSON(w io.Writer, locs []int, results []match.ResolvedLoc) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		jr := jsonResult{
			Offset:    locs[i],
			Range:     jsonRange{Start: r.Range.Start, End: r.Range.End},
			LabelType: r.LabelType.String(),
			IsActive:  r.IsActive,
			Context:   r.Context.String(),
		}

		for _, l := range r.LabelRanges {
			jr.LabelRanges = append(jr.LabelRanges, jsonRange{Start: l.Start, End: l.End})
		}

		if idx, ok := r.FirstTrailingLabel.Index(); ok {
			jr.FirstTrailingLabel = &idx
		}

		out[i] = jr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

type span struct {
	rng  syntax.Range
	name bool
}

// highlight prints src with base-name ranges in red and label ranges in
// yellow. Overlapping or empty ranges are skipped.
func highlight(w io.Writer, src []byte, results []match.ResolvedLoc) error {
	var spans []span
	for _, r := range results {
		if !r.Range.Empty() {
			spans = append(spans, span{rng: r.Range, name: true})
		}

		for _, l := range r.LabelRanges {
			if !l.Empty() {
				spans = append(spans, span{rng: l})
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].rng.Start < spans[j].rng.Start })

	nameColor := color.New(color.FgRed, color.Bold)
	labelColor := color.New(color.FgYellow)

	pos := 0
	for _, s := range spans {
		if s.rng.Start < pos || s.rng.End > len(src) {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s", src[pos:s.rng.Start]); err != nil {
			return err
		}

		c := labelColor
		if s.name {
			c = nameColor
		}

		if _, err := c.Fprintf(w, "%s", src[s.rng.Start:s.rng.End]); err != nil {
			return err
		}

		pos = s.rng.End
	}

	_, err := fmt.Fprintf(w, "%s", src[pos:])

	return err
}
