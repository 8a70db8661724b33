package domain

import (
	"iter"
	"regexp"
)

var (
	// Anything may sit between the two labels, including newlines.
	loosePairPattern = regexp.MustCompile(
		`<partition_name>([^\r\n]*?)</partition_name>(?s:.*?)<file_name>([^\r\n]*?)</file_name>`,
	)
	// Only whitespace may separate the two labels.
	adjacentPairPattern = regexp.MustCompile(
		`<partition_name>([^\r\n]*?)</partition_name>\s*<file_name>([^\r\n]*?)</file_name>`,
	)
)

// ScanOptions selects the pair pattern used by a Scanner.
type ScanOptions struct {
	// Adjacent requires <file_name> to follow </partition_name> with
	// nothing but whitespace in between.
	Adjacent bool
}

// Scanner pulls partition/file pairs out of scatter file text.
type Scanner struct {
	pattern *regexp.Regexp
}

// NewScanner creates a Scanner for the given options.
func NewScanner(opts ScanOptions) *Scanner {
	p := loosePairPattern
	if opts.Adjacent {
		p = adjacentPairPattern
	}
	return &Scanner{pattern: p}
}

// Matches yields every non-overlapping pair in text, left to right, with
// values exactly as written. Nothing is filtered.
func (s *Scanner) Matches(text string) iter.Seq[PartitionEntry] {
	return func(yield func(PartitionEntry) bool) {
		pos := 0
		for pos < len(text) {
			loc := s.pattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			entry := PartitionEntry{
				PartitionName: text[pos+loc[2] : pos+loc[3]],
				FileName:      text[pos+loc[4] : pos+loc[5]],
			}
			if !yield(entry) {
				return
			}
			pos += loc[1]
		}
	}
}

// Extract returns the accepted flash plan for text: pairs whose file is
// SentinelNone are dropped and only the first pair per partition is kept.
// SkippedPartition is kept here; Renderer drops it.
func (s *Scanner) Extract(text string) []PartitionEntry {
	seen := make(map[string]struct{})
	var entries []PartitionEntry
	for e := range s.Matches(text) {
		if e.FileName == SentinelNone {
			continue
		}
		if _, ok := seen[e.PartitionName]; ok {
			continue
		}
		seen[e.PartitionName] = struct{}{}
		entries = append(entries, e)
	}
	return entries
}
