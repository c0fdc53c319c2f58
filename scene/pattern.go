package scene

import (
	"strconv"
	"strings"

	vac "github.com/gogpu/vac"
)

// URLValidity is the outcome of validating a background image URL while
// it is being typed.
type URLValidity int

const (
	// URLAcceptable means the input is a well-formed pattern: at most one
	// '*', with no '/' after it.
	URLAcceptable URLValidity = iota
	// URLIntermediate means the input is not valid as-is but could become
	// valid with further editing (extra wildcards, or a '/' after one).
	URLIntermediate
)

// ValidateImageURL checks a background image URL pattern: at most one
// '*' wildcard is allowed, and no '/' may follow a wildcard (the
// wildcard substitutes a frame number inside a file name, never a
// directory).
func ValidateImageURL(input string) URLValidity {
	wildcards := 0
	for _, r := range input {
		switch {
		case r == '*':
			if wildcards > 0 {
				return URLIntermediate
			}
			wildcards++
		case r == '/' && wildcards > 0:
			return URLIntermediate
		}
	}
	return URLAcceptable
}

// FixupImageURL auto-corrects a malformed pattern by removing every '*'
// except the last one not followed by a path separator. Fixup is
// idempotent: applying it twice equals applying it once.
func FixupImageURL(input string) string {
	j := strings.LastIndexByte(input, '*')
	k := strings.LastIndexByte(input, '/')

	// A wildcard followed by '/' is not a valid wildcard; drop them all.
	if k > j {
		j = -1
	}

	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if input[i] != '*' || i == j {
			b.WriteByte(input[i])
		}
	}
	return b.String()
}

// SplitImagePattern splits a pattern around its wildcard.
// ok is false when the pattern has no wildcard.
func SplitImagePattern(pattern string) (prefix, suffix string, ok bool) {
	i := strings.IndexByte(pattern, '*')
	if i < 0 {
		return pattern, "", false
	}
	return pattern[:i], pattern[i+1:], true
}

// InferImagePattern derives a wildcard pattern from a set of file names
// selected together (e.g. "image1.png", "image2.png" -> "image*.png").
//
// The shared prefix of the first two names is computed, trailing digits
// are chopped off it, and a trailing '-' is chopped too unless every
// name carries it at that position, in which case it is a separating
// dash rather than a minus sign. The wildcard span is then read off the
// first name (an optional '-' followed by digits), and whatever follows
// becomes the suffix.
//
// Names that do not match the inferred pattern are reported through a
// *vac.InconsistentPatternError. The error is non-fatal: the pattern is
// still returned and the offending files are simply ignored by loading.
func InferImagePattern(filenames []string) (string, error) {
	switch len(filenames) {
	case 0:
		return "", nil
	case 1:
		return filenames[0], nil
	}

	s0, s1 := filenames[0], filenames[1]

	// Largest shared prefix of the first two names.
	prefixLen := 0
	for prefixLen < len(s0) && prefixLen < len(s1) && s0[prefixLen] == s1[prefixLen] {
		prefixLen++
	}

	// Chop digits at the end of the prefix; they belong to the wildcard.
	for prefixLen > 0 && isDigit(s0[prefixLen-1]) {
		prefixLen--
	}

	// Chop a '-' too, unless all names have one at that position: then it
	// is a separating dash, not a minus sign.
	if prefixLen > 0 && s0[prefixLen-1] == '-' {
		allHaveIt := true
		for _, name := range filenames {
			if len(name) < prefixLen || name[prefixLen-1] != '-' {
				allHaveIt = false
				break
			}
		}
		if !allHaveIt {
			prefixLen--
		}
	}

	// Measure the wildcard span of s0: an optional minus sign followed by
	// digits. A zero span means s0 is the fallback name.
	wildcardLen := 0
	switch {
	case len(s0) == prefixLen:
		// Fallback name with the wildcard at the very end.
	case s0[prefixLen] == '-':
		wildcardLen++
		for prefixLen+wildcardLen < len(s0) && isDigit(s0[prefixLen+wildcardLen]) {
			wildcardLen++
		}
	case isDigit(s0[prefixLen]):
		for prefixLen+wildcardLen < len(s0) && isDigit(s0[prefixLen+wildcardLen]) {
			wildcardLen++
		}
	}

	prefix := s0[:prefixLen]
	suffix := s0[prefixLen+wildcardLen:]
	pattern := prefix + "*" + suffix

	// Collect names that do not fit prefix + integer + suffix (or the
	// bare fallback name prefix + suffix).
	var excluded []string
	for _, name := range filenames {
		if !matchesPattern(name, prefix, suffix) {
			excluded = append(excluded, name)
		}
	}
	if len(excluded) > 0 {
		return pattern, &vac.InconsistentPatternError{Pattern: pattern, Excluded: excluded}
	}
	return pattern, nil
}

// matchesPattern reports whether name is prefix + wildcard + suffix with
// an integer (or empty, the fallback) wildcard part.
func matchesPattern(name, prefix, suffix string) bool {
	if len(name) < len(prefix)+len(suffix) {
		return false
	}
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
		return false
	}
	middle := name[len(prefix) : len(name)-len(suffix)]
	if middle == "" {
		return true // fallback name
	}
	_, err := strconv.Atoi(middle)
	return err == nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
