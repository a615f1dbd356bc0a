// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command strsplit prints the tokens obtained by splitting its arguments,
// or the contents of a file, on a delimiter.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/file"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/strsplit"
)

type splitFlags struct {
	CommonFlags
}

type untilFlags struct {
	CommonFlags
}

type delimitersFlags struct{}

type runner struct {
	out io.Writer
}

func newCommandSet(out io.Writer) *subcmd.CommandSet {
	r := &runner{out: out}

	splitCmd := subcmd.NewCommand("split",
		subcmd.MustRegisterFlagStruct(&splitFlags{}, nil, nil),
		r.split)
	splitCmd.Document("print the tokens obtained by splitting each argument, or the contents of --file, on a delimiter", "<text>...")

	untilCmd := subcmd.NewCommand("until",
		subcmd.MustRegisterFlagStruct(&untilFlags{}, nil, nil),
		r.until)
	untilCmd.Document("print the text that precedes the first occurrence of the delimiter in each argument, or the contents of --file", "<text>...")

	delimitersCmd := subcmd.NewCommand("delimiters",
		subcmd.MustRegisterFlagStruct(&delimitersFlags{}, nil, nil),
		r.delimiters, subcmd.WithoutArguments())
	delimitersCmd.Document("list the supported delimiter kinds")

	cmdSet := subcmd.NewCommandSet(splitCmd, untilCmd, delimitersCmd)
	cmdSet.Document(`split text on a delimiter.

Tokens are the text between occurrences of the delimiter, a trailing
delimiter yields a single empty token and text that does not contain
the delimiter yields itself as the only token. Backslash escapes, such
as \t, are interpreted in the delimiter. Defaults for the delimiter,
its kind, the output format and logging may be read from a YAML
configuration file specified via --config; flags take precedence over
the configuration file.`)
	return cmdSet
}

func main() {
	if err := newCommandSet(os.Stdout).Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func (r *runner) split(ctx context.Context, values any, args []string) error {
	fv := values.(*splitFlags)
	return r.run(ctx, &fv.CommonFlags, args, strsplit.Collect)
}

func (r *runner) until(ctx context.Context, values any, args []string) error {
	fv := values.(*untilFlags)
	return r.run(ctx, &fv.CommonFlags, args, func(input string, delim strsplit.Delimiter) []string {
		return []string{strsplit.Until(input, delim)}
	})
}

func (r *runner) delimiters(_ context.Context, _ any, _ []string) error {
	for _, k := range delimiterKinds {
		fmt.Fprintf(r.out, "%-8s %s\n", k.name, k.description)
	}
	return nil
}

func (r *runner) run(ctx context.Context, fv *CommonFlags, args []string, tokenize func(string, strsplit.Delimiter) []string) error {
	opts, err := fv.options(ctx)
	if err != nil {
		return err
	}
	logger, err := opts.logging.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.Context(ctx, logger.Logger)
	ctxlog.Logger(ctx).Info("splitting", "delimiter", fmt.Sprint(opts.delim), "kind", opts.kind, "format", opts.format)

	inputs, err := readInputs(ctx, fv.File, args)
	if err != nil {
		return err
	}
	results := make([]result, 0, len(inputs))
	for _, input := range inputs {
		tokens := tokenize(input, opts.delim)
		ctxlog.Logger(ctx).Debug("split", "input.bytes", len(input), "tokens", len(tokens))
		results = append(results, result{Input: input, Tokens: tokens})
	}
	return writeResults(r.out, opts.format, results)
}

// readInputs returns either the command line arguments or the contents
// of filename, less any trailing newline.
func readInputs(ctx context.Context, filename string, args []string) ([]string, error) {
	switch {
	case len(filename) > 0 && len(args) > 0:
		return nil, fmt.Errorf("text may be supplied as arguments or via --file, but not both")
	case len(filename) > 0:
		data, err := file.FSReadFile(ctx, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read %v: %w", filename, err)
		}
		return []string{strings.TrimSuffix(string(data), "\n")}, nil
	case len(args) == 0:
		return nil, fmt.Errorf("no text to split: supply arguments or --file")
	}
	return args, nil
}
