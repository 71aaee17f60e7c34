package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m-mizutani/chronocode/pkg/domain/types"
)

// TimelineFilter selects which subcommits appear in a timeline view.
type TimelineFilter struct {
	// Types is the active type set. A nil set means every type is active.
	Types types.SubcommitTypeSet
	// Query is matched case-insensitively against title, description and idea.
	Query string
}

func (x TimelineFilter) activeTypes() types.SubcommitTypeSet {
	if x.Types == nil {
		return types.AllTypes()
	}
	return x.Types
}

// Match reports whether sc passes both the type filter and the text filter.
func (x TimelineFilter) Match(sc *Subcommit) bool {
	if sc == nil {
		return false
	}
	if !x.activeTypes().Has(sc.Type) {
		return false
	}
	if x.Query == "" {
		return true
	}

	q := strings.ToLower(x.Query)
	return containsFold(sc.Title, q) ||
		containsFold(sc.Description, q) ||
		containsFold(sc.Idea, q)
}

func containsFold(field, lowerQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), lowerQuery)
}

// FilterSubcommits returns the subcommits matching filter in source order.
// The input slice is never modified.
func FilterSubcommits(subcommits []*Subcommit, filter TimelineFilter) []*Subcommit {
	result := make([]*Subcommit, 0, len(subcommits))
	for _, sc := range subcommits {
		if filter.Match(sc) {
			result = append(result, sc)
		}
	}
	return result
}

// DayGroup is one calendar day column of the timeline.
type DayGroup struct {
	Date       string       `json:"date"`
	Subcommits []*Subcommit `json:"subcommits"`
	Epics      []*EpicGroup `json:"epics,omitempty"`
}

// EpicGroup buckets subcommits of one day by epic label. An empty Epic holds
// entries without a label.
type EpicGroup struct {
	Epic       string       `json:"epic"`
	Subcommits []*Subcommit `json:"subcommits"`
}

// GroupByDay buckets subcommits by Day(), ordered by descending day key.
// Entries keep their source order inside a bucket.
func GroupByDay(subcommits []*Subcommit) []*DayGroup {
	index := make(map[string]*DayGroup)
	var groups []*DayGroup

	for _, sc := range subcommits {
		day := sc.Day()
		g, ok := index[day]
		if !ok {
			g = &DayGroup{Date: day}
			index[day] = g
			groups = append(groups, g)
		}
		g.Subcommits = append(g.Subcommits, sc)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})

	return groups
}

// GroupByEpic buckets subcommits by epic label in first-seen order. Entries
// without an epic are collected in a trailing group with an empty label.
func GroupByEpic(subcommits []*Subcommit) []*EpicGroup {
	index := make(map[string]*EpicGroup)
	var groups []*EpicGroup
	var unlabeled *EpicGroup

	for _, sc := range subcommits {
		if sc.Epic == "" {
			if unlabeled == nil {
				unlabeled = &EpicGroup{}
			}
			unlabeled.Subcommits = append(unlabeled.Subcommits, sc)
			continue
		}

		g, ok := index[sc.Epic]
		if !ok {
			g = &EpicGroup{Epic: sc.Epic}
			index[sc.Epic] = g
			groups = append(groups, g)
		}
		g.Subcommits = append(g.Subcommits, sc)
	}

	if unlabeled != nil {
		groups = append(groups, unlabeled)
	}
	return groups
}

// Siblings returns the other subcommits carved out of the same commit as
// selected, in source order.
func Siblings(all []*Subcommit, selected *Subcommit) []*Subcommit {
	if selected == nil {
		return nil
	}

	var result []*Subcommit
	for _, sc := range all {
		if sc == nil || sc.ID == selected.ID {
			continue
		}
		if sc.CommitSHA == selected.CommitSHA {
			result = append(result, sc)
		}
	}
	return result
}

// FindSubcommit looks a subcommit up by id.
func FindSubcommit(all []*Subcommit, id int64) *Subcommit {
	for _, sc := range all {
		if sc != nil && sc.ID == id {
			return sc
		}
	}
	return nil
}

// TimelineView is the derived structure a timeline renders.
type TimelineView struct {
	Days        []*DayGroup `json:"days"`
	ResultCount int         `json:"resultCount"`
	TotalCount  int         `json:"totalCount"`
}

// BuildTimelineView filters all, groups the result by day and, when epics
// is set, sub-groups each day by epic.
func BuildTimelineView(all []*Subcommit, filter TimelineFilter, epics bool) *TimelineView {
	filtered := FilterSubcommits(all, filter)
	days := GroupByDay(filtered)
	if epics {
		for _, d := range days {
			d.Epics = GroupByEpic(d.Subcommits)
		}
	}

	return &TimelineView{
		Days:        days,
		ResultCount: len(filtered),
		TotalCount:  len(all),
	}
}

// CountLabel is the result counter of the filter bar.
func (x *TimelineView) CountLabel() string {
	if x.ResultCount == x.TotalCount {
		return fmt.Sprintf("%d subcommits", x.TotalCount)
	}
	return fmt.Sprintf("%d / %d", x.ResultCount, x.TotalCount)
}

// TimelinePage is a timeline view together with the repository state it was built from.
type TimelinePage struct {
	RepoID      types.RepoID  `json:"repoId"`
	RepoURL     string        `json:"repoUrl,omitempty"`
	IsAnalyzing bool          `json:"isAnalyzing"`
	View        *TimelineView `json:"view"`
	CountLabel  string        `json:"countLabel"`
}

// SubcommitDetail is the content of the detail panel.
type SubcommitDetail struct {
	Subcommit *Subcommit   `json:"subcommit"`
	Siblings  []*Subcommit `json:"siblings"`
	CommitURL string       `json:"commitUrl,omitempty"`
}
