package wikidex

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/RoaringBitmap/roaring"
)

// Tokenize splits text at every non-alphanumeric rune and lowercases what
// remains. Runs of non-alphanumeric characters collapse to nothing —
// there are no empty tokens, and token order matches document order
// (downstream posting-list construction does not care about order).
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	terms := make([]string, len(fields))
	for i, f := range fields {
		terms[i] = strings.ToLower(f)
	}
	return terms
}

// InvertedIndex maps terms to sorted, duplicate-free document-ID posting
// lists. doc_count is fixed at construction and never mutated by
// AddDocument: NOT needs a stable universe even when the index is
// rehydrated from a file that carries no document count of its own.
type InvertedIndex struct {
	postings   map[string][]int
	docBitmaps map[string]*roaring.Bitmap
	docCount   int
}

// NewInvertedIndex constructs an empty index over doc_count documents.
func NewInvertedIndex(docCount int) *InvertedIndex {
	return &InvertedIndex{
		postings:   make(map[string][]int),
		docBitmaps: make(map[string]*roaring.Bitmap),
		docCount:   docCount,
	}
}

// DocCount reports the universe size NOT complements against.
func (idx *InvertedIndex) DocCount() int {
	return idx.docCount
}

// AddDocument tokenizes text and, for every distinct term it contains,
// records docID in that term's posting list. Repeated terms within a
// document contribute docID once. docID must lie in [0, doc_count); a
// caller that violates this has a bug, so AddDocument panics rather than
// silently corrupting a posting list's ascending order.
func (idx *InvertedIndex) AddDocument(docID int, text string) {
	if docID < 0 || docID >= idx.docCount {
		panic(fmt.Errorf("%w: doc_id=%d doc_count=%d", ErrDocIDOutOfRange, docID, idx.docCount))
	}

	seen := make(map[string]bool)
	for _, term := range Tokenize(text) {
		if seen[term] {
			continue
		}
		seen[term] = true
		idx.addPosting(term, docID)
	}
}

// addPosting appends docID to term's posting list if it isn't already the
// last element. Callers are expected to add documents in ascending docID
// order, which keeps the append itself a valid sorted-insert; AddDocument
// never sorts after the fact.
func (idx *InvertedIndex) addPosting(term string, docID int) {
	postings := idx.postings[term]
	if len(postings) == 0 || postings[len(postings)-1] != docID {
		idx.postings[term] = append(postings, docID)
	}

	bitmap, ok := idx.docBitmaps[term]
	if !ok {
		bitmap = roaring.NewBitmap()
		idx.docBitmaps[term] = bitmap
	}
	bitmap.Add(uint32(docID))
}

// Postings returns term's posting list, or nil if the term was never
// indexed. The returned slice must not be mutated by the caller.
func (idx *InvertedIndex) Postings(term string) []int {
	return idx.postings[term]
}

// Terms returns every term currently present in the index, in no
// particular order.
func (idx *InvertedIndex) Terms() []string {
	terms := make([]string, 0, len(idx.postings))
	for t := range idx.postings {
		terms = append(terms, t)
	}
	return terms
}
