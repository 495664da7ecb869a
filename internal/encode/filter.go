package encode

// TypeFilter selects processed files by their file_type field. The zero
// value matches every type; MatchType and MatchTypes restrict the match
// to one or several types. Raw files are never subject to the filter.
type TypeFilter struct {
	types []string
}

// MatchAny returns a filter that admits every file type.
func MatchAny() TypeFilter {
	return TypeFilter{}
}

// MatchType returns a filter that admits a single file type.
func MatchType(fileType string) TypeFilter {
	return TypeFilter{types: []string{fileType}}
}

// MatchTypes returns a filter that admits any of the given file types.
// With no arguments it behaves like MatchAny.
func MatchTypes(fileTypes ...string) TypeFilter {
	return TypeFilter{types: fileTypes}
}

// IsAny reports whether the filter admits every file type.
func (f TypeFilter) IsAny() bool {
	return len(f.types) == 0
}

// Match reports whether the given file type is admitted.
func (f TypeFilter) Match(fileType string) bool {
	if len(f.types) == 0 {
		return true
	}
	for _, t := range f.types {
		if t == fileType {
			return true
		}
	}
	return false
}
