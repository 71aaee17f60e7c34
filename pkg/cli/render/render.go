package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Renderer writes human readable views of dashboard data to a terminal.
type Renderer struct {
	w io.Writer
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (x *Renderer) write(s string) error {
	if _, err := io.WriteString(x.w, s); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}

// Timeline renders a timeline page: header, day groups and optional epic groups.
func (x *Renderer) Timeline(page *model.TimelinePage) error {
	var b strings.Builder

	header := "Repository " + page.RepoID.String()
	if page.RepoURL != "" {
		header = page.RepoURL
	}
	b.WriteString(styleTitle.Render(header))
	b.WriteString("  ")
	b.WriteString(styleMuted.Render(page.CountLabel))
	if page.IsAnalyzing {
		b.WriteString("  ")
		b.WriteString(styleLabel.Render(iconActive + " analyzing"))
	}
	b.WriteString("\n")

	if page.View == nil || len(page.View.Days) == 0 {
		b.WriteString(styleMuted.Render("No subcommits match the current filters."))
		b.WriteString("\n")
		return x.write(b.String())
	}

	for _, day := range page.View.Days {
		b.WriteString(styleDay.Render(day.Date))
		b.WriteString("\n")

		if len(day.Epics) == 0 {
			for _, sc := range day.Subcommits {
				writeEntry(&b, sc, "  ")
			}
			continue
		}

		for _, epic := range day.Epics {
			label := epic.Epic
			if label == "" {
				label = "(no epic)"
			}
			b.WriteString(styleEpic.Render(label))
			b.WriteString("\n")
			for _, sc := range epic.Subcommits {
				writeEntry(&b, sc, "    ")
			}
		}
	}

	return x.write(b.String())
}

func writeEntry(b *strings.Builder, sc *model.Subcommit, indent string) {
	fmt.Fprintf(b, "%s%s %s %s %s\n",
		indent,
		styleMuted.Render(fmt.Sprintf("#%d", sc.ID)),
		typeBadge(sc.Type),
		sc.Title,
		styleMuted.Render(sc.ShortSHA()),
	)
}

// Detail renders the detail panel of one subcommit.
func (x *Renderer) Detail(detail *model.SubcommitDetail) error {
	sc := detail.Subcommit
	var b strings.Builder

	b.WriteString(typeBadge(sc.Type) + " " + styleTitle.Render(sc.Title) + "\n")
	if sc.Epic != "" {
		b.WriteString(styleLabel.Render("Epic") + "  " + sc.Epic + "\n")
	}
	b.WriteString(styleLabel.Render("Date") + "  " + sc.CreatedAt + "\n")

	commit := sc.CommitSHA
	if detail.CommitURL != "" {
		commit = detail.CommitURL
	}
	b.WriteString(styleLabel.Render("Commit") + "  " + commit + "\n")

	if sc.Idea != "" {
		b.WriteString("\n" + styleLabel.Render("Idea") + "\n" + sc.Idea + "\n")
	}
	if sc.Description != "" {
		b.WriteString("\n" + styleLabel.Render("Description") + "\n" + sc.Description + "\n")
	}
	if len(sc.Files) > 0 {
		b.WriteString("\n" + styleLabel.Render("Files") + "\n")
		for _, f := range sc.Files {
			b.WriteString("  " + f + "\n")
		}
	}
	if len(detail.Siblings) > 0 {
		b.WriteString("\n" + styleLabel.Render("Same commit") + "\n")
		for _, sib := range detail.Siblings {
			writeEntry(&b, sib, "  ")
		}
	}

	return x.write(styleDetailBorder.Render(strings.TrimRight(b.String(), "\n")) + "\n")
}

func (x *Renderer) Repositories(repos []*model.UserRepository) error {
	if len(repos) == 0 {
		return x.write(styleMuted.Render("No repositories analysed yet.") + "\n")
	}

	var b strings.Builder
	for _, repo := range repos {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			styleMuted.Render(repo.ID.String()),
			styleTitle.Render(repo.Name),
			styleMuted.Render(repo.URL),
		)
	}
	return x.write(b.String())
}

func (x *Renderer) SearchResults(query string, repos []*model.Repository) error {
	if len(repos) == 0 {
		return x.write(styleMuted.Render(fmt.Sprintf("No repositories found for %q.", query)) + "\n")
	}

	var b strings.Builder
	for _, repo := range repos {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			styleMuted.Render(fmt.Sprintf("%d", repo.ID)),
			styleTitle.Render(repo.Name),
			styleMuted.Render(repo.URL),
		)
	}
	return x.write(b.String())
}

func (x *Renderer) Profile(profile *model.GitHubProfile) error {
	line := styleTitle.Render(profile.DisplayName()) + " " + styleMuted.Render("@"+profile.Login)
	if profile.Email != "" {
		line += " " + styleMuted.Render("<"+profile.Email+">")
	}
	return x.write(line + "\n")
}

// AnalysisState renders the progress steps of an analysis session.
func (x *Renderer) AnalysisState(state model.AnalysisState) error {
	if state.Error != "" {
		return x.write(styleError.Render(iconFailed+" "+state.Error) + "\n")
	}
	if state.Step == model.AnalysisIdle {
		return nil
	}

	var b strings.Builder
	for _, step := range model.AnalysisProgressSteps {
		switch model.StepProgress(step, state.Step) {
		case model.StepDone:
			b.WriteString(styleMuted.Render(iconDone+" "+step.Label()) + "\n")
		case model.StepActive:
			b.WriteString(styleLabel.Render(iconActive+" "+step.Label()) + "\n")
		default:
			b.WriteString(styleMuted.Render(iconPending+" "+step.Label()) + "\n")
		}
	}
	return x.write(b.String())
}

// Status renders a one line message such as the analysis indicator.
func (x *Renderer) Status(msg string) error {
	return x.write(styleMuted.Render(msg) + "\n")
}
