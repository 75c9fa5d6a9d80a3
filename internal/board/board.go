package board

import "dragboard/internal/column"

type Board struct {
	Columns []column.Column `yaml:"columns"`
}

func New(columns ...column.Column) Board {
	return Board{Columns: columns}
}

// ColumnIndex returns the position of the column with the given id, or -1.
func (b Board) ColumnIndex(id string) int {
	for i, col := range b.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// Column looks up a column by id.
func (b Board) Column(id string) (column.Column, bool) {
	i := b.ColumnIndex(id)
	if i < 0 {
		return column.Column{}, false
	}
	return b.Columns[i], true
}

// Locate finds the column and position holding cardID.
func (b Board) Locate(cardID string) (columnID string, index int, ok bool) {
	for _, col := range b.Columns {
		if i := col.IndexOf(cardID); i >= 0 {
			return col.ID, i, true
		}
	}
	return "", -1, false
}

func (b Board) HasCard(cardID string) bool {
	_, _, ok := b.Locate(cardID)
	return ok
}

func (b Board) CardCount() int {
	n := 0
	for _, col := range b.Columns {
		n += col.CardCount()
	}
	return n
}

func (b Board) DeepCopy() Board {
	cols := make([]column.Column, len(b.Columns))
	for i, col := range b.Columns {
		cols[i] = col.Copy()
	}
	return Board{Columns: cols}
}

// withColumn returns a board sharing every column but the one at i,
// which is replaced by col.
func (b Board) withColumn(i int, col column.Column) Board {
	cols := make([]column.Column, len(b.Columns))
	copy(cols, b.Columns)
	cols[i] = col
	return Board{Columns: cols}
}
