package textprep

import "testing"

func TestDocument_CleanExtraWhitespace(t *testing.T) {
	doc := NewDocument("ITEM 1.     BUSINESS ", nil)
	doc.CleanExtraWhitespace()

	if doc.Content != "ITEM 1. BUSINESS" {
		t.Errorf("Expected %q, got %q", "ITEM 1. BUSINESS", doc.Content)
	}
}

func TestDocument_CleanLigatures(t *testing.T) {
	doc := NewDocument("The ﬁrst ﬂoor", nil)
	doc.CleanLigatures()

	if doc.Content != "The first floor" {
		t.Errorf("Expected %q, got %q", "The first floor", doc.Content)
	}
}

func TestDocument_CleanBullets(t *testing.T) {
	doc := NewDocument("●  First item\n●  Second item", nil)
	doc.CleanBullets()

	want := "  First item\n  Second item"
	if doc.Content != want {
		t.Errorf("Expected %q, got %q", want, doc.Content)
	}
}

func TestDocument_CleanNonASCIIChars(t *testing.T) {
	doc := NewDocument("café 世界", nil)
	doc.CleanNonASCIIChars()

	if doc.Content != "caf " {
		t.Errorf("Expected %q, got %q", "caf ", doc.Content)
	}
}

func TestDocument_GroupBrokenParagraphs(t *testing.T) {
	doc := NewDocument("The compliance report\nwas filed on time.\n\nThe next audit\nis in March.", nil)
	doc.GroupBrokenParagraphs()

	want := "The compliance report was filed on time.\n\nThe next audit is in March."
	if doc.Content != want {
		t.Errorf("Expected %q, got %q", want, doc.Content)
	}
}

func TestDocument_ReplaceUnicodeQuotes(t *testing.T) {
	doc := NewDocument("donât say hello", nil)
	doc.ReplaceUnicodeQuotes()

	want := "don't say “hello”"
	if doc.Content != want {
		t.Errorf("Expected %q, got %q", want, doc.Content)
	}
}

func TestDocument_GroupNewLineParagraphs(t *testing.T) {
	doc := NewDocument("caption one\ncaption two", nil)
	doc.GroupNewLineParagraphs()

	want := "caption one\n\ncaption two"
	if doc.Content != want {
		t.Errorf("Expected %q, got %q", want, doc.Content)
	}
}

func TestDocument_AutoGroupParagraphs(t *testing.T) {
	doc := NewDocument("a\nb\n\nc\nd", nil)
	doc.AutoGroupParagraphs()

	if doc.Content != "a b\n\nc d" {
		t.Errorf("Expected %q, got %q", "a b\n\nc d", doc.Content)
	}
}

func TestDocument_Clean(t *testing.T) {
	doc := NewDocument(
		"●   The ﬁrst   ﬂoor\nreport was filed.\n\n●   Successor café data",
		Metadata{"source": "10k.pdf"},
	)
	doc.Clean()

	want := " The first floor report was filed.\n\n Successor caf data"
	if doc.Content != want {
		t.Errorf("Expected %q, got %q", want, doc.Content)
	}
	if len(doc.Metadata) != 1 || doc.Metadata["source"] != "10k.pdf" {
		t.Errorf("Expected metadata untouched, got %v", doc.Metadata)
	}
}

func TestDocument_Clean_Empty(t *testing.T) {
	doc := NewDocument("", nil)
	doc.Clean()

	if doc.Content != "" {
		t.Errorf("Expected empty content, got %q", doc.Content)
	}
}
