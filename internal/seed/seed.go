// Package seed provisions the initial board from the built-in fixture or a
// seed file. Seed files are only ever read.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"dragboard/internal/board"
	"dragboard/internal/card"
	"dragboard/internal/column"
)

var (
	cardLineRegex = regexp.MustCompile(`^\s*[-*]\s+(?:\[[ xX]\]\s+)?(.+?)\s*$`)
	cardLinkRegex = regexp.MustCompile(`^\[(.*?)\]\((.*?)\)$`)
	slugRegex     = regexp.MustCompile(`[^a-z0-9]+`)
)

// Load reads the seed file at path. The format is chosen by extension:
// .yaml/.yml or .md.
func Load(path string, now time.Time) (board.Board, error) {
	var parse func(io.Reader, time.Time) (board.Board, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".md", ".markdown":
		parse = ParseMarkdown
	default:
		return board.Board{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return board.Board{}, err
	}
	defer f.Close()

	b, err := parse(f, now)
	if err != nil {
		return board.Board{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// ParseYAML decodes a board of the form
//
//	columns:
//	  - id: todo
//	    title: Todo
//	    cards:
//	      - id: card-1
//	        title: Write docs
func ParseYAML(r io.Reader, now time.Time) (board.Board, error) {
	var b board.Board
	if err := yaml.NewDecoder(r).Decode(&b); err != nil && err != io.EOF {
		return board.Board{}, fmt.Errorf("decode yaml: %w", err)
	}
	return finish(b, now)
}

// ParseMarkdown reads the kanban.md layout: one "# Title" header per column
// followed by "- card title" items. Column ids are slugs of the titles and
// cards are numbered within their column, e.g. "in-progress-2".
func ParseMarkdown(r io.Reader, now time.Time) (board.Board, error) {
	cols := make([]column.Column, 0)
	var currentColumn *column.Column

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "# ") {
			if currentColumn != nil {
				cols = append(cols, *currentColumn)
			}
			title := strings.TrimSpace(strings.TrimPrefix(line, "# "))
			currentColumn = &column.Column{
				ID:    slug(title),
				Title: title,
				Cards: []card.Card{},
			}
			continue
		}
		matches := cardLineRegex.FindStringSubmatch(line)
		if len(matches) != 2 {
			continue
		}
		if currentColumn == nil {
			return board.Board{}, fmt.Errorf("line %d: %w", lineNo, ErrCardOutsideColumn)
		}
		title := matches[1]
		if link := cardLinkRegex.FindStringSubmatch(title); len(link) == 3 {
			title = link[1]
		}
		id := fmt.Sprintf("%s-%d", currentColumn.ID, len(currentColumn.Cards)+1)
		currentColumn.Cards = append(currentColumn.Cards, card.Card{ID: id, Title: title})
	}
	if currentColumn != nil {
		cols = append(cols, *currentColumn)
	}
	if err := scanner.Err(); err != nil {
		return board.Board{}, err
	}

	return finish(board.New(cols...), now)
}

// finish fills in missing ids and timestamps, then validates.
func finish(b board.Board, now time.Time) (board.Board, error) {
	for i := range b.Columns {
		col := &b.Columns[i]
		if col.ID == "" {
			col.ID = slug(col.Title)
		}
		for j := range col.Cards {
			c := &col.Cards[j]
			c.Title = strings.TrimSpace(c.Title)
			if c.Title == "" {
				return board.Board{}, fmt.Errorf("column %q card %d: %w", col.ID, j, board.ErrEmptyTitle)
			}
			if c.ID == "" {
				c.ID = card.NewID()
			}
			if c.CreatedAt.IsZero() {
				c.CreatedAt = now
			}
		}
	}
	if err := b.Validate(); err != nil {
		return board.Board{}, fmt.Errorf("invalid board: %w", err)
	}
	return b, nil
}

func slug(title string) string {
	return strings.Trim(slugRegex.ReplaceAllString(strings.ToLower(title), "-"), "-")
}
