package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jturek/wikinote"
	"github.com/jturek/wikinote/acquire"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config     wikinote.Config
	Source     wikinote.ArticleSource
	Summaries  wikinote.SummarySource
	Extractor  wikinote.HeadingExtractor
	Converter  wikinote.Converter
	Writer     wikinote.NoteWriter
	Progress   acquire.ProgressFunc
	RetryDelay time.Duration

	// Now stamps the rendered note. Defaults to time.Now.
	Now func() time.Time
}

// NoteCmd acquires one article and writes (or previews) its note.
type NoteCmd struct {
	Preview bool
	Summary bool
}

// Run executes the note command.
func (c *NoteCmd) Run(deps *Dependencies) error {
	acquirer := &acquire.Acquirer{
		Source:     deps.Source,
		Extractor:  deps.Extractor,
		Progress:   deps.Progress,
		RetryDelay: deps.RetryDelay,
		Now:        deps.Now,
	}

	article, err := acquirer.Acquire(deps.Ctx, deps.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikinote.ErrorMessage(err))
		return err
	}

	summary := c.fetchSummary(deps, article.Title)

	now := deps.Now
	if now == nil {
		now = time.Now
	}
	body := wikinote.RenderNote(article, now(), summary)

	if c.Preview {
		fmt.Fprintln(deps.Stdout, body)
		return nil
	}

	path, err := deps.Writer.WriteNote(deps.Ctx, article, body)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikinote.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}

// fetchSummary returns the article's lead extract as markdown. The article
// is already accepted at this point, so summary failures only cost the
// summary block, never the note.
func (c *NoteCmd) fetchSummary(deps *Dependencies, title string) string {
	if !c.Summary || deps.Summaries == nil || deps.Converter == nil {
		return ""
	}

	html, err := deps.Summaries.Summary(deps.Ctx, title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "summary unavailable: %s\n", wikinote.ErrorMessage(err))
		return ""
	}

	md, err := deps.Converter.Convert(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "summary unavailable: %s\n", wikinote.ErrorMessage(err))
		return ""
	}
	return md
}
