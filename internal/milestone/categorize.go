// Package milestone fetches milestones of a repository and sorts the issues of
// a milestone into categories by label.
package milestone

import (
	"slices"

	"github.com/stoner-cli/stoner/internal/gh"
)

// Recognized labels. Only these are retained on categorized issues.
const (
	LabelFeature  = "k.feature"
	LabelBug      = "k.bug"
	LabelUpkeep   = "k.upkeep"
	LabelFirebase = "x.firebase"
)

var allowedLabels = []string{LabelFeature, LabelBug, LabelUpkeep, LabelFirebase}

// CategorizedIssues groups issues by category. An issue appears in every
// category whose label it carries, so the groups may overlap.
type CategorizedIssues struct {
	Bug     []gh.Issue
	Feature []gh.Issue
	Upkeep  []gh.Issue
}

// Categorize reduces each issue's labels to the recognized ones and places the
// issue into the bug, feature and upkeep groups it is labelled with.
// LabelFirebase is kept on the issue but has no group of its own.
func Categorize(issues []gh.Issue) *CategorizedIssues {
	c := &CategorizedIssues{
		Bug:     []gh.Issue{},
		Feature: []gh.Issue{},
		Upkeep:  []gh.Issue{},
	}
	for _, issue := range issues {
		issue.Labels = retainedLabels(issue.Labels)
		if slices.Contains(issue.Labels, LabelBug) {
			c.Bug = append(c.Bug, issue)
		}
		if slices.Contains(issue.Labels, LabelFeature) {
			c.Feature = append(c.Feature, issue)
		}
		if slices.Contains(issue.Labels, LabelUpkeep) {
			c.Upkeep = append(c.Upkeep, issue)
		}
	}
	return c
}

func retainedLabels(labels []string) []string {
	ret := []string{}
	for _, l := range labels {
		if slices.Contains(allowedLabels, l) && !slices.Contains(ret, l) {
			ret = append(ret, l)
		}
	}
	return ret
}

// Len returns the number of distinct issues across all groups.
func (c *CategorizedIssues) Len() int {
	seen := map[int]bool{}
	for _, group := range [][]gh.Issue{c.Bug, c.Feature, c.Upkeep} {
		for _, i := range group {
			seen[i.Number] = true
		}
	}
	return len(seen)
}
