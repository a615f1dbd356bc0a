// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type result struct {
	Input  string   `json:"input" yaml:"input"`
	Tokens []string `json:"tokens" yaml:"tokens"`
}

// writeResults writes results in the requested format: text and quoted
// write one token per line, json writes one array of tokens per input
// and yaml writes a single sequence of input/tokens pairs.
func writeResults(out io.Writer, format string, results []result) error {
	w := bufio.NewWriter(out)
	switch format {
	case "text", "quoted":
		verb := "%s\n"
		if format == "quoted" {
			verb = "%q\n"
		}
		for _, r := range results {
			for _, tok := range r.Tokens {
				fmt.Fprintf(w, verb, tok)
			}
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, r := range results {
			if err := enc.Encode(r.Tokens); err != nil {
				return err
			}
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return w.Flush()
}
