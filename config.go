package wikinote

import "strings"

// ExclusionSet is a case-insensitive set of heading texts to drop during
// extraction. Derived once per run from the operator's comma-separated
// exclusion list.
type ExclusionSet map[string]struct{}

// ParseExclusionList builds an ExclusionSet from a comma-separated list.
// Entries are trimmed and lower-cased; empty entries are dropped.
func ParseExclusionList(list string) ExclusionSet {
	set := make(ExclusionSet)
	for _, entry := range strings.Split(list, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		set[entry] = struct{}{}
	}
	return set
}

// Contains reports whether text is a member of the set, ignoring case.
func (s ExclusionSet) Contains(text string) bool {
	_, ok := s[strings.ToLower(text)]
	return ok
}

// Config holds the acquisition parameters for one run. It is read-only for
// the duration of the run.
type Config struct {
	// MinHeadings is the smallest heading count an article may have and
	// still be accepted.
	MinHeadings int

	// MaxRetries is the total attempt budget. Zero means no attempt is
	// made at all.
	MaxRetries int

	// Exclusions holds heading texts omitted during extraction.
	Exclusions ExclusionSet
}

// Validate returns an error if the config contains invalid fields.
func (c Config) Validate() error {
	if c.MinHeadings < 0 {
		return Errorf(EINVALID, "minimum heading count must not be negative")
	}
	if c.MaxRetries < 0 {
		return Errorf(EINVALID, "retry limit must not be negative")
	}
	return nil
}
