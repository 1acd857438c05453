package repos

import (
	"fmt"

	"github.com/temirov/ghzero/internal/output"
)

const (
	listHeaderConstant             = "📚 Your Repositories:"
	emptyListMessageConstant       = "📭 No repositories found matching your criteria."
	privateGlyphConstant           = "🔒"
	publicGlyphConstant            = "🌍"
	recordLineTemplateConstant     = "%s %s %s %s"
	indexTemplateConstant          = "%d."
	languageTemplateConstant       = "(%s)"
	descriptionIndentConstant      = "   "
	selectionLabelTemplateConstant = "%s %s %s"
)

// RenderText writes the human-readable repository listing.
func RenderText(textWriter *output.TextWriter, records []Record) {
	if len(records) == 0 {
		textWriter.Line("%s", textWriter.Comment(emptyListMessageConstant))
		return
	}

	textWriter.Line("%s", textWriter.Info(listHeaderConstant))
	textWriter.Blank()

	for index, record := range records {
		textWriter.Line(
			recordLineTemplateConstant,
			textWriter.Comment(fmt.Sprintf(indexTemplateConstant, index+1)),
			VisibilityGlyph(record),
			textWriter.Info(record.FullName),
			languageLabel(textWriter, record),
		)
		if record.Description != nil && len(*record.Description) > 0 {
			textWriter.Line("%s%s", descriptionIndentConstant, *record.Description)
		}
		textWriter.Blank()
	}
}

// VisibilityGlyph returns the glyph marking a repository private or public.
func VisibilityGlyph(record Record) string {
	if record.Private {
		return privateGlyphConstant
	}
	return publicGlyphConstant
}

// SelectionLabel renders the prompt label of a repository: visibility glyph, full name and language.
func SelectionLabel(record Record) string {
	language := ""
	if record.Language != nil && len(*record.Language) > 0 {
		language = fmt.Sprintf(languageTemplateConstant, *record.Language)
	}
	return fmt.Sprintf(selectionLabelTemplateConstant, VisibilityGlyph(record), record.FullName, language)
}

func languageLabel(textWriter *output.TextWriter, record Record) string {
	if record.Language == nil || len(*record.Language) == 0 {
		return ""
	}
	return textWriter.Comment(fmt.Sprintf(languageTemplateConstant, *record.Language))
}
