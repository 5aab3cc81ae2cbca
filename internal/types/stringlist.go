package types

import (
	"encoding/json"
	"strings"
)

// StringList is a []string that also accepts a single delimited string when
// unmarshaling JSON. Upstream sources disagree on the shape of list fields:
// the heuristic path produces arrays while LLM responses sometimes return
// "JavaScript, React, HTML". Both decode to the same canonical slice here so
// the ambiguity never reaches the matcher.
type StringList []string

// UnmarshalJSON accepts either a JSON array of strings or a single string
// split on commas and Chinese list delimiters. Elements are trimmed and
// empties dropped.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = cleanList(arr)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = SplitList(single)
	return nil
}

// SplitList splits a delimited string into a trimmed, empty-free slice.
// Recognized delimiters: "," "，" "、" ";" "；".
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	normalized := raw
	for _, delim := range []string{"，", "、", "；", ";"} {
		normalized = strings.ReplaceAll(normalized, delim, ",")
	}
	return cleanList(strings.Split(normalized, ","))
}

// cleanList trims each element and drops empties, preserving order.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
