// File: parser.go
// Title: Parameter Parser
// Description: Turns the remainder of a command line into positional and
//              keyed parameter values, resolving abbreviated keys against
//              the command's allowed names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"strings"
	"unicode"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
	"github.com/msto63/mrepl/foundation/repl/abbrev"
	mdwstringx "github.com/msto63/mrepl/foundation/utils/stringx"
)

// Parse splits remainder on runs of whitespace. Tokens without '=' become
// positional values in order of appearance; tokens with '=' are split at the
// first '=' into key and value. A later value for the same canonical key
// replaces an earlier one.
func Parse(remainder string, spec Spec) (*Parameters, error) {
	params := newParameters()

	for _, token := range mdwstringx.Tokens(remainder) {
		rawKey, value, keyed := strings.Cut(token, "=")
		if keyed && rawKey == "" {
			return nil, missingKey(token)
		}
		if !keyed {
			if spec.kind == KindNone {
				return nil, unexpectedParameter(token)
			}
			params.positional = append(params.positional, token)
			continue
		}

		key, err := resolveKey(rawKey, spec)
		if err != nil {
			return nil, err
		}
		params.keyed[key] = value
	}

	return params, nil
}

func resolveKey(rawKey string, spec Spec) (string, error) {
	switch spec.kind {
	case KindUnrestricted:
		return rawKey, nil
	case KindNone:
		return "", unknownParameter(rawKey)
	}

	key, err := abbrev.Resolve(rawKey, spec.names)
	if err == nil {
		return key, nil
	}

	var ambiguous *abbrev.AmbiguousError
	if errors.As(err, &ambiguous) {
		return "", mdwerror.Newf("Parameter %s is ambiguous. It matches %s.",
			rawKey, strings.Join(ambiguous.Candidates, ",")).
			WithCode(mdwerror.CodeAmbiguousParameter).
			WithOperation("parser.Parse").
			WithDetail("parameter", rawKey).
			WithDetail("candidates", ambiguous.Candidates)
	}
	return "", unknownParameter(rawKey)
}

func unknownParameter(rawKey string) error {
	return mdwerror.Newf("%s is not an allowed parameter", rawKey).
		WithCode(mdwerror.CodeUnknownParameter).
		WithOperation("parser.Parse").
		WithDetail("parameter", rawKey)
}

func unexpectedParameter(token string) error {
	return mdwerror.Newf("%s is not an allowed parameter, the command takes no parameters", token).
		WithCode(mdwerror.CodeUnexpectedParameter).
		WithOperation("parser.Parse").
		WithDetail("parameter", token)
}

func missingKey(token string) error {
	return mdwerror.Newf("'%s' has no parameter name before '='", token).
		WithCode(mdwerror.CodeUnknownParameter).
		WithOperation("parser.Parse").
		WithDetail("parameter", token)
}

func foldKey(s string) string {
	return strings.Map(unicode.ToLower, s)
}
