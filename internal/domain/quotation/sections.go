package quotation

import "soga/quote_backend/internal/domain/numword"

// Resequence returns a copy of sections with every RomanIndex re-derived from
// the section's 1-based position. It always relabels the whole list, not just
// the sections an edit touched, so labels stay consistent after any sequence
// of edits. The input is never mutated.
func Resequence(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, sec := range sections {
		sec.RomanIndex = numword.ToRoman(i + 1)
		out[i] = sec
	}
	return out
}

// AppendSection adds an empty section with a fresh identity at the end of the
// list and relabels.
func AppendSection(sections []Section, title string) []Section {
	out := make([]Section, 0, len(sections)+1)
	out = append(out, sections...)
	out = append(out, Section{ID: NewID(), Title: title})
	return Resequence(out)
}

// RemoveSection drops the section with the given id together with all of its
// items, then relabels. An unknown id leaves the content unchanged.
func RemoveSection(sections []Section, id string) []Section {
	out := make([]Section, 0, len(sections))
	for _, sec := range sections {
		if sec.ID == id {
			continue
		}
		out = append(out, sec)
	}
	return Resequence(out)
}

// MoveSection extracts the section at from and reinserts it at to, shifting
// the sections in between by one position. Out-of-range indices and
// from == to are no-ops apart from relabeling.
func MoveSection(sections []Section, from, to int) []Section {
	n := len(sections)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return Resequence(sections)
	}

	cp := make([]Section, n)
	copy(cp, sections)
	moved := cp[from]
	cp = append(cp[:from], cp[from+1:]...)
	cp = append(cp[:to], append([]Section{moved}, cp[to:]...)...)
	return Resequence(cp)
}

// Normalize fills in missing section and item identities and re-derives the
// Roman labels. Applied to every document accepted over the API, so a client
// that sends hand-edited labels or blank ids still stores a consistent
// document.
func Normalize(doc Document) Document {
	sections := make([]Section, len(doc.Sections))
	for i, sec := range doc.Sections {
		if sec.ID == "" {
			sec.ID = NewID()
		}
		items := make([]LineItem, len(sec.Items))
		for j, it := range sec.Items {
			if it.ID == "" {
				it.ID = NewID()
			}
			items[j] = it
		}
		sec.Items = items
		sections[i] = sec
	}
	doc.Sections = Resequence(sections)
	if doc.Language != LanguageEN {
		doc.Language = LanguageVI
	}
	return doc
}
