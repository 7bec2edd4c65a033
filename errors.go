package wikidex

import "errors"

// ErrMalformedQuery names the condition ToPostfix reports with ok == false:
// the query string cannot be parsed into a well-formed postfix program
// (unbalanced parentheses, an operator with too few operands). It is
// distinct from an empty result set: a malformed query never reaches the
// evaluator at all. This package has no Search function, and no function
// here returns this error.
var ErrMalformedQuery = errors.New("wikidex: malformed query")

// ErrDocIDOutOfRange is raised when AddDocument is called with a doc_id
// outside [0, doc_count). Per spec this is a violated precondition, not
// a recoverable runtime condition.
var ErrDocIDOutOfRange = errors.New("wikidex: doc_id out of range")

// ErrCorruptIndexFile describes a persisted index file that cannot be
// decoded as a term-to-postings map. This package has no Save or Load
// function, and no function here returns this error.
var ErrCorruptIndexFile = errors.New("wikidex: corrupt index file")
