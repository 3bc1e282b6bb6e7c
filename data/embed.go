// Package data embeds the lexicons used by the sentiment analyzer.
package data

import _ "embed"

// PolarityLexicon holds the general English lexicon as tab-separated
// "word\tpolarity" lines. It is generated by scripts/buildlexicon.go.
//
//go:embed lexicon.txt
var PolarityLexicon string

// DomainLexicon holds fare and transit polarities in the same format.
// Its entries override PolarityLexicon.
//
//go:embed domain_lexicon.txt
var DomainLexicon string

// Intensifiers holds tab-separated "word\tmultiplier" lines.
//
//go:embed intensifiers.txt
var Intensifiers string

// Stopwords holds one English stop word per line.
//
//go:embed stopwords.txt
var Stopwords string
