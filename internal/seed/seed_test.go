package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragboard/internal/board"
)

var loadTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestDefaultIsValid(t *testing.T) {
	b := Default()
	require.NoError(t, b.Validate())

	require.Len(t, b.Columns, 3)
	assert.Equal(t, "todo", b.Columns[0].ID)
	assert.Equal(t, "in-progress", b.Columns[1].ID)
	assert.Equal(t, "done", b.Columns[2].ID)
	assert.Equal(t, 7, b.CardCount())

	col, i, ok := b.Locate("card-4")
	require.True(t, ok)
	assert.Equal(t, "in-progress", col)
	assert.Equal(t, 0, i)
}

func TestParseYAML(t *testing.T) {
	src := `columns:
  - id: backlog
    title: Backlog
    cards:
      - id: b-1
        title: Sketch the layout
        description: "**rough** first pass"
        createdAt: 2024-01-10
      - title: "  Untitled id  "
  - title: Shipped It
`
	b, err := ParseYAML(strings.NewReader(src), loadTime)
	require.NoError(t, err)
	require.Len(t, b.Columns, 2)

	backlog := b.Columns[0]
	require.Len(t, backlog.Cards, 2)
	assert.Equal(t, "b-1", backlog.Cards[0].ID)
	assert.Equal(t, "**rough** first pass", backlog.Cards[0].Description)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), backlog.Cards[0].CreatedAt)

	generated := backlog.Cards[1]
	assert.True(t, strings.HasPrefix(generated.ID, "card-"))
	assert.Equal(t, "Untitled id", generated.Title)
	assert.Equal(t, loadTime, generated.CreatedAt)

	assert.Equal(t, "shipped-it", b.Columns[1].ID)
	assert.Empty(t, b.Columns[1].Cards)
}

func TestParseYAMLRejectsDuplicates(t *testing.T) {
	src := `columns:
  - id: a
    cards: [{id: x, title: one}]
  - id: b
    cards: [{id: x, title: two}]
`
	_, err := ParseYAML(strings.NewReader(src), loadTime)
	assert.ErrorIs(t, err, board.ErrCardInTwoColumns)
}

func TestParseYAMLRejectsBlankTitle(t *testing.T) {
	src := `columns:
  - id: a
    cards: [{id: x, title: "  "}]
`
	_, err := ParseYAML(strings.NewReader(src), loadTime)
	assert.ErrorIs(t, err, board.ErrEmptyTitle)
}

func TestParseMarkdown(t *testing.T) {
	src := `# Todo
- Research project requirements
- [ ] Review pull requests

some prose that is ignored

# In Progress
* [x] Write unit tests
- [Linked card](.kanban/todo/abc.md)

# Done
`
	b, err := ParseMarkdown(strings.NewReader(src), loadTime)
	require.NoError(t, err)
	require.Len(t, b.Columns, 3)

	assert.Equal(t, "todo", b.Columns[0].ID)
	assert.Equal(t, "in-progress", b.Columns[1].ID)
	assert.Equal(t, "done", b.Columns[2].ID)

	var titles []string
	for _, c := range b.Columns[0].Cards {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Research project requirements", "Review pull requests"}, titles)
	assert.Equal(t, "Write unit tests", b.Columns[1].Cards[0].Title)
	assert.Equal(t, "Linked card", b.Columns[1].Cards[1].Title)
	assert.Empty(t, b.Columns[2].Cards)
	assert.Equal(t, 4, b.CardCount())

	assert.Equal(t, []string{"todo-1", "todo-2"}, []string{b.Columns[0].Cards[0].ID, b.Columns[0].Cards[1].ID})
	assert.Equal(t, []string{"in-progress-1", "in-progress-2"}, []string{b.Columns[1].Cards[0].ID, b.Columns[1].Cards[1].ID})
}

func TestParseMarkdownDuplicateColumnTitle(t *testing.T) {
	_, err := ParseMarkdown(strings.NewReader("# Todo\n- one\n# Todo\n- two\n"), loadTime)
	assert.ErrorIs(t, err, board.ErrDuplicateColumn)
	assert.ErrorIs(t, err, board.ErrCardInTwoColumns)
}

func TestParseMarkdownCardBeforeHeader(t *testing.T) {
	_, err := ParseMarkdown(strings.NewReader("- orphan\n# Todo\n"), loadTime)
	assert.ErrorIs(t, err, ErrCardOutsideColumn)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "board.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("columns:\n  - id: todo\n    title: Todo\n"), 0o644))
	b, err := Load(yamlPath, loadTime)
	require.NoError(t, err)
	assert.Equal(t, "todo", b.Columns[0].ID)

	mdPath := filepath.Join(dir, "kanban.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("# Todo\n- one\n"), 0o644))
	b, err = Load(mdPath, loadTime)
	require.NoError(t, err)
	assert.Equal(t, 1, b.CardCount())

	txtPath := filepath.Join(dir, "board.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o644))
	_, err = Load(txtPath, loadTime)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"), loadTime)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
