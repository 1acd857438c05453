package issues

import (
	"strings"

	"github.com/temirov/ghzero/internal/output"
)

const (
	listTitleConstant               = "🐛 GitHub Issues"
	titleRuleConstant               = "═══════════════════"
	descriptionRuleConstant         = "───────────────"
	emptyListMessageConstant        = "📭 No issues found"
	openGlyphConstant               = "🟢"
	closedGlyphConstant             = "🔴"
	openStateLabelConstant          = "🟢 Open"
	closedStateLabelConstant        = "🔴 Closed"
	openStateConstant               = "open"
	listLineTemplateConstant        = "%d. %s #%d: %s"
	labelsLineTemplateConstant      = "   🏷️  %s"
	authorLineTemplateConstant      = "   👤 %s • %s"
	createdHeaderConstant           = "✅ Issue created successfully!"
	createdLinkTemplateConstant     = "🔗 %s"
	createdSummaryTemplateConstant  = "📋 #%d: %s"
	detailHeaderTemplateConstant    = "📋 Issue #%d"
	detailTitleTemplateConstant     = "📝 Title: %s"
	detailURLTemplateConstant       = "🔗 URL: %s"
	detailStateTemplateConstant     = "📊 State: %s"
	detailAuthorTemplateConstant    = "👤 Author: %s"
	detailCreatedTemplateConstant   = "📅 Created: %s"
	detailLabelsTemplateConstant    = "🏷️  Labels: %s"
	detailAssigneesTemplateConstant = "👥 Assignees: %s"
	descriptionHeaderConstant       = "📄 Description:"
	missingDescriptionConstant      = "No description provided."
	listSeparatorConstant           = ", "
)

// RenderText writes the human-readable view of an issues result.
func RenderText(textWriter *output.TextWriter, issuesOutput Output) {
	switch issuesOutput.Action {
	case ActionCreate:
		if issuesOutput.Issue != nil {
			renderCreated(textWriter, *issuesOutput.Issue)
		}
	case ActionShow:
		if issuesOutput.Issue != nil {
			renderDetail(textWriter, *issuesOutput.Issue)
		}
	default:
		renderList(textWriter, issuesOutput.Issues)
	}
}

func renderList(textWriter *output.TextWriter, records []Record) {
	textWriter.Line("%s", textWriter.Info(listTitleConstant))
	textWriter.Line("%s", textWriter.Info(titleRuleConstant))
	textWriter.Blank()

	if len(records) == 0 {
		textWriter.Line("%s", textWriter.Info(emptyListMessageConstant))
		return
	}

	for index, record := range records {
		textWriter.Line(listLineTemplateConstant, index+1, stateGlyph(record.State), record.Number, record.Title)
		if labels := labelNames(record.Labels); len(labels) > 0 {
			textWriter.Line(labelsLineTemplateConstant, labels)
		}
		textWriter.Line(authorLineTemplateConstant, record.User.Login, textWriter.Comment(record.CreatedAt))
		textWriter.Blank()
	}
}

func renderCreated(textWriter *output.TextWriter, record Record) {
	textWriter.Line("%s", textWriter.Info(createdHeaderConstant))
	textWriter.Line(createdLinkTemplateConstant, record.HTMLURL)
	textWriter.Line(createdSummaryTemplateConstant, record.Number, record.Title)
}

func renderDetail(textWriter *output.TextWriter, record Record) {
	textWriter.Line(detailHeaderTemplateConstant, record.Number)
	textWriter.Line("%s", titleRuleConstant)
	textWriter.Line(detailTitleTemplateConstant, record.Title)
	textWriter.Line(detailURLTemplateConstant, record.HTMLURL)
	textWriter.Line(detailStateTemplateConstant, stateLabel(record.State))
	textWriter.Line(detailAuthorTemplateConstant, record.User.Login)
	textWriter.Line(detailCreatedTemplateConstant, record.CreatedAt)

	if labels := labelNames(record.Labels); len(labels) > 0 {
		textWriter.Line(detailLabelsTemplateConstant, labels)
	}
	if assignees := assigneeLogins(record.Assignees); len(assignees) > 0 {
		textWriter.Line(detailAssigneesTemplateConstant, assignees)
	}

	textWriter.Blank()
	textWriter.Line("%s", textWriter.Info(descriptionHeaderConstant))
	textWriter.Line("%s", descriptionRuleConstant)
	if record.Body == nil || len(*record.Body) == 0 {
		textWriter.Line("%s", missingDescriptionConstant)
		return
	}
	textWriter.Line("%s", *record.Body)
}

func stateGlyph(state string) string {
	if state == openStateConstant {
		return openGlyphConstant
	}
	return closedGlyphConstant
}

func stateLabel(state string) string {
	if state == openStateConstant {
		return openStateLabelConstant
	}
	return closedStateLabelConstant
}

func labelNames(labels []Label) string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.Name)
	}
	return strings.Join(names, listSeparatorConstant)
}

func assigneeLogins(assignees []Assignee) string {
	logins := make([]string, 0, len(assignees))
	for _, assignee := range assignees {
		logins = append(logins, assignee.Login)
	}
	return strings.Join(logins, listSeparatorConstant)
}
