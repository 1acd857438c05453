package issues

import (
	"time"

	"github.com/google/go-github/v81/github"
)

const timestampLayoutConstant = time.RFC3339

// User identifies the author of an issue.
type User struct {
	Login     string `json:"login" yaml:"login"`
	ID        int64  `json:"id" yaml:"id"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
}

// Label is a label attached to an issue.
type Label struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// Assignee is a user assigned to an issue.
type Assignee struct {
	Login string `json:"login" yaml:"login"`
	ID    int64  `json:"id" yaml:"id"`
}

// Record is the flattened representation of an issue.
type Record struct {
	ID        int64      `json:"id" yaml:"id"`
	Number    int        `json:"number" yaml:"number"`
	Title     string     `json:"title" yaml:"title"`
	Body      *string    `json:"body" yaml:"body"`
	State     string     `json:"state" yaml:"state"`
	User      User       `json:"user" yaml:"user"`
	Labels    []Label    `json:"labels" yaml:"labels"`
	Assignees []Assignee `json:"assignees" yaml:"assignees"`
	HTMLURL   string     `json:"html_url" yaml:"html_url"`
	CreatedAt string     `json:"created_at" yaml:"created_at"`
	UpdatedAt string     `json:"updated_at" yaml:"updated_at"`
}

func flattenIssue(issue *github.Issue) Record {
	labels := make([]Label, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		if label == nil {
			continue
		}
		labels = append(labels, Label{Name: label.GetName(), Color: label.GetColor()})
	}

	assignees := make([]Assignee, 0, len(issue.Assignees))
	for _, assignee := range issue.Assignees {
		if assignee == nil {
			continue
		}
		assignees = append(assignees, Assignee{Login: assignee.GetLogin(), ID: assignee.GetID()})
	}

	author := issue.GetUser()
	return Record{
		ID:     issue.GetID(),
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.Body,
		State:  issue.GetState(),
		User: User{
			Login:     author.GetLogin(),
			ID:        author.GetID(),
			AvatarURL: author.GetAvatarURL(),
		},
		Labels:    labels,
		Assignees: assignees,
		HTMLURL:   issue.GetHTMLURL(),
		CreatedAt: formatTimestamp(issue.CreatedAt),
		UpdatedAt: formatTimestamp(issue.UpdatedAt),
	}
}

func flattenIssues(issues []*github.Issue, limit int) []Record {
	if limit > 0 && len(issues) > limit {
		issues = issues[:limit]
	}
	records := make([]Record, 0, len(issues))
	for _, issue := range issues {
		if issue == nil {
			continue
		}
		records = append(records, flattenIssue(issue))
	}
	return records
}

func formatTimestamp(timestamp *github.Timestamp) string {
	if timestamp == nil || timestamp.IsZero() {
		return ""
	}
	return timestamp.UTC().Format(timestampLayoutConstant)
}
