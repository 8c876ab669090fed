// Package tsv converts between the lexicon line format and lexemes.
//
// A record is a single line of five tab separated fields:
//
//	id	lemma	morph	pos	parent
//
// The parent field is empty for forest roots. The derived children of a
// lexeme are not part of a record.
package tsv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	lex "github.com/tiefling-cat/derinet/lexeme"
)

const numFields = 5

var (
	// ErrMalformedRecord reports a line with the wrong number of fields.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidInteger reports an id or parent field that is not a
	// non-negative integer.
	ErrInvalidInteger = errors.New("invalid integer field")
)

// Decode parses one line into a Lexeme. The Children field of the
// result is always nil.
func Decode(line string) (lex.Lexeme, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		return lex.Lexeme{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), numFields)
	}

	id, err := parseId(fields[0])
	if err != nil {
		return lex.Lexeme{}, err
	}

	parent := lex.NoParent
	if fields[4] != "" {
		parent, err = parseId(fields[4])
		if err != nil {
			return lex.Lexeme{}, err
		}
	}

	return lex.Lexeme{
		Id:     id,
		Lemma:  fields[1],
		Morph:  fields[2],
		Pos:    fields[3],
		Parent: parent,
	}, nil
}

// Encode is the inverse of Decode. A root lexeme gets an empty parent
// field; children are omitted.
func Encode(l lex.Lexeme) string {
	parent := ""
	if l.Parent != lex.NoParent {
		parent = strconv.Itoa(l.Parent)
	}

	return strings.Join([]string{strconv.Itoa(l.Id), l.Lemma, l.Morph, l.Pos, parent}, "\t")
}

func parseId(field string) (int, error) {
	id, err := strconv.Atoi(field)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, field)
	}

	return id, nil
}
