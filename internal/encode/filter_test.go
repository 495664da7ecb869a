package encode

import "testing"

func TestTypeFilterZeroValueMatchesAll(t *testing.T) {
	var f TypeFilter
	if !f.IsAny() {
		t.Error("zero value should match any type")
	}
	if !f.Match("bam") || !f.Match("") {
		t.Error("zero value should admit every file type")
	}
}

func TestMatchAny(t *testing.T) {
	f := MatchAny()
	if !f.IsAny() || !f.Match("bigWig") {
		t.Error("MatchAny should admit every file type")
	}
}

func TestMatchType(t *testing.T) {
	f := MatchType("bam")
	if f.IsAny() {
		t.Error("single-type filter should not be any")
	}
	if !f.Match("bam") {
		t.Error("expected bam to match")
	}
	if f.Match("bigWig") {
		t.Error("bigWig should not match a bam filter")
	}
}

func TestMatchTypes(t *testing.T) {
	f := MatchTypes("bam", "bigWig")
	if !f.Match("bam") || !f.Match("bigWig") {
		t.Error("expected both member types to match")
	}
	if f.Match("tsv") {
		t.Error("tsv should not match")
	}

	// No arguments degrades to match-all, mirroring an absent filter.
	if !MatchTypes().IsAny() {
		t.Error("MatchTypes() should match any type")
	}
}
