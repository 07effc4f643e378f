// Package logids pulls identifier-like tokens out of free-form log text and
// matches them against a known set of master ids.
package logids

import (
	"regexp"
	"sort"
	"strings"

	"drillbook/internal/logging"
)

var nonWord = regexp.MustCompile(`\W+`)

// Extract splits text on runs of non-word characters ([^0-9A-Za-z_]) and
// returns the tokens in order. Duplicates are kept; empty tokens are not.
func Extract(text string) []string {
	parts := nonWord.Split(text, -1)
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			ids = append(ids, p)
		}
	}
	logging.Get(logging.CategoryLogIDs).Debug("extracted %d tokens", len(ids))
	return ids
}

// ExactMatches returns the ids that appear verbatim in master, in ids order.
func ExactMatches(ids, master []string) []string {
	set := make(map[string]struct{}, len(master))
	for _, m := range master {
		set[m] = struct{}{}
	}

	matches := []string{}
	for _, id := range ids {
		if _, ok := set[id]; ok {
			matches = append(matches, id)
		}
	}
	return matches
}

// PrefixMatches returns, for each id in order, every distinct master id that
// starts with it. Master ids are visited in sorted order.
func PrefixMatches(ids, master []string) []string {
	set := make(map[string]struct{}, len(master))
	for _, m := range master {
		set[m] = struct{}{}
	}
	sorted := make([]string, 0, len(set))
	for m := range set {
		sorted = append(sorted, m)
	}
	sort.Strings(sorted)

	matches := []string{}
	for _, id := range ids {
		for _, m := range sorted {
			if strings.HasPrefix(m, id) {
				matches = append(matches, m)
			}
		}
	}
	return matches
}
