// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/strsplit"
)

var (
	ErrUnknownKind    = errors.New("unknown delimiter kind")
	ErrDelimiterWidth = errors.New("delimiter has the wrong width for its kind")
	ErrUnknownFormat  = errors.New("unknown output format")
)

// CommonFlags are the flags shared by the split and until commands.
type CommonFlags struct {
	Delimiter string `subcmd:"delimiter,,'the delimiter to split on, defaults to a single space'"`
	Kind      string `subcmd:"kind,,'the kind of delimiter: string, rune, byte, any or space, defaults to string'"`
	Format    string `subcmd:"format,,'output format: text, quoted, json or yaml, defaults to text'"`
	File      string `subcmd:"file,,'read the text to be split from this file rather than the command line'"`
	Config    string `subcmd:"config,,'yaml configuration file'"`
	cmdutil.LoggingFlags
}

// config represents the YAML configuration file.
type config struct {
	Delimiter string                 `yaml:"delimiter"`
	Kind      string                 `yaml:"kind"`
	Format    string                 `yaml:"format"`
	Logging   *cmdutil.LoggingConfig `yaml:"logging"`
}

type options struct {
	delim   strsplit.Delimiter
	kind    string
	format  string
	logging cmdutil.LoggingConfig
}

type delimiterKind struct {
	name        string
	description string
	create      func(string) (strsplit.Delimiter, error)
}

var delimiterKinds = []delimiterKind{
	{"string", "the delimiter is matched exactly, an empty delimiter never matches",
		func(d string) (strsplit.Delimiter, error) { return strsplit.String(d), nil }},
	{"rune", "the delimiter must be a single rune",
		func(d string) (strsplit.Delimiter, error) {
			if utf8.RuneCountInString(d) != 1 {
				return nil, fmt.Errorf("%q: %w: rune delimiters must be exactly one rune", d, ErrDelimiterWidth)
			}
			r, _ := utf8.DecodeRuneInString(d)
			return strsplit.Rune(r), nil
		}},
	{"byte", "the delimiter must be a single byte",
		func(d string) (strsplit.Delimiter, error) {
			if len(d) != 1 {
				return nil, fmt.Errorf("%q: %w: byte delimiters must be exactly one byte", d, ErrDelimiterWidth)
			}
			return strsplit.Byte(d[0]), nil
		}},
	{"any", "any one of the runes in the delimiter matches",
		func(d string) (strsplit.Delimiter, error) { return strsplit.AnyOf(d), nil }},
	{"space", "any unicode white space rune matches, the delimiter is ignored",
		func(string) (strsplit.Delimiter, error) { return strsplit.Func(unicode.IsSpace), nil }},
}

var formats = []string{"text", "quoted", "json", "yaml"}

func newDelimiter(kind, delim string) (strsplit.Delimiter, error) {
	for _, k := range delimiterKinds {
		if k.name == kind {
			return k.create(delim)
		}
	}
	return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}

// unescape interprets Go backslash escapes, such as \t, in delim.
func unescape(delim string) (string, error) {
	if !strings.Contains(delim, `\`) {
		return delim, nil
	}
	quoted := &strings.Builder{}
	quoted.WriteByte('"')
	escaped := false
	for i := 0; i < len(delim); i++ {
		c := delim[i]
		if c == '"' && !escaped {
			quoted.WriteByte('\\')
		}
		escaped = c == '\\' && !escaped
		quoted.WriteByte(c)
	}
	quoted.WriteByte('"')
	u, err := strconv.Unquote(quoted.String())
	if err != nil {
		return "", fmt.Errorf("%q: invalid escape sequence: %w", delim, err)
	}
	return u, nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}

// logging merges the logging flags with those in the config file, if any.
// A flag left at its default value does not override the config file.
func (fv *CommonFlags) logging(cfg *cmdutil.LoggingConfig) cmdutil.LoggingConfig {
	lc := fv.LoggingConfig()
	if cfg == nil {
		return lc
	}
	merged := *cfg
	if lc.Level != 0 {
		merged.Level = lc.Level
	}
	if len(lc.File) > 0 {
		merged.File = lc.File
	}
	if len(lc.Format) > 0 && (lc.Format != "json" || len(merged.Format) == 0) {
		merged.Format = lc.Format
	}
	if lc.SourceCode {
		merged.SourceCode = true
	}
	return merged
}

func (fv *CommonFlags) config(ctx context.Context) (config, error) {
	var cfg config
	if len(fv.Config) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, fv.Config, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// options merges the flags, configuration file and defaults and validates
// the result, reporting all errors encountered.
func (fv *CommonFlags) options(ctx context.Context) (options, error) {
	cfg, err := fv.config(ctx)
	if err != nil {
		return options{}, err
	}
	opts := options{
		kind:    firstSet(fv.Kind, cfg.Kind, "string"),
		format:  firstSet(fv.Format, cfg.Format, "text"),
		logging: fv.logging(cfg.Logging),
	}
	errs := &errors.M{}
	delim, err := unescape(firstSet(fv.Delimiter, cfg.Delimiter, " "))
	errs.Append(err)
	if err == nil {
		opts.delim, err = newDelimiter(opts.kind, delim)
		errs.Append(err)
	}
	if !slices.Contains(formats, opts.format) {
		errs.Append(fmt.Errorf("%q: %w: must be one of %v", opts.format, ErrUnknownFormat, strings.Join(formats, ", ")))
	}
	return opts, errs.Err()
}
