package cleaning

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

// deriveTextFeatures synthesizes word and author counts:
// abstract_word_count and title_word_count are whitespace-token counts
// (missing text counts as 0), author_count splits on semicolons with the
// Unknown sentinel treated as zero authors.
func (p *Pipeline) deriveTextFeatures() {
	p.deriveWordCount(p.opts.AbstractColumn, "abstract_word_count")
	p.deriveWordCount(p.opts.TitleColumn, "title_word_count")
	p.deriveAuthorCount()
}

func (p *Pipeline) deriveWordCount(source, target string) {
	if source == "" {
		return
	}
	col, ok := p.work.Column(source)
	if !ok {
		p.logger.Warn("word count skipped, column absent", "column", source)
		return
	}

	counts := table.NewColumn(target, table.KindInt)
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			counts.AppendInt(0)
			continue
		}
		counts.AppendInt(int64(len(strings.Fields(col.Text(i)))))
	}

	if err := p.work.ReplaceColumn(counts); err != nil {
		p.logger.Warn("word count derivation failed", "column", target, "error", err)
	}
}

func (p *Pipeline) deriveAuthorCount() {
	if p.opts.AuthorsColumn == "" {
		return
	}
	col, ok := p.work.Column(p.opts.AuthorsColumn)
	if !ok {
		p.logger.Warn("author count skipped, column absent", "column", p.opts.AuthorsColumn)
		return
	}

	counts := table.NewColumn("author_count", table.KindInt)
	for i := 0; i < col.Len(); i++ {
		v := col.Text(i)
		if col.IsMissing(i) || v == Unknown || v == "" {
			counts.AppendInt(0)
			continue
		}
		counts.AppendInt(int64(len(strings.Split(v, ";"))))
	}

	if err := p.work.ReplaceColumn(counts); err != nil {
		p.logger.Warn("author count derivation failed", "error", err)
	}
}

// normalizeText collapses runs of whitespace to single spaces, strips
// embedded markup and removes everything outside the printable ASCII
// range from the configured text columns. Missing entries become empty
// strings, matching the downstream empty-title filter.
func (p *Pipeline) normalizeText() {
	for _, name := range p.opts.TextColumns {
		col, ok := p.work.Column(name)
		if !ok {
			p.logger.Warn("text normalization skipped, column absent", "column", name)
			continue
		}
		if col.Kind() != table.KindText {
			continue
		}

		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				col.SetText(i, "")
				continue
			}
			col.SetText(i, normalizeCell(col.Text(i)))
		}
	}
}

func normalizeCell(v string) string {
	v = stripMarkup(v)
	v = strings.Join(strings.Fields(v), " ")
	return printableASCII(v)
}

// stripMarkup extracts plain text from cells carrying HTML/JATS fragments.
func stripMarkup(v string) string {
	if !strings.Contains(v, "<") {
		return v
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(v))
	if err != nil {
		return v
	}
	return doc.Text()
}

func printableASCII(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r >= 0x20 && r <= 0x7E {
			b.WriteRune(r)
		}
	}
	return b.String()
}
