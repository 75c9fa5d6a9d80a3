package store

// Command is a single board mutation request. Commands are applied one at a
// time through Store.Apply.
type Command interface {
	name() string
}

type AddCard struct {
	ColumnID string
	Title    string
}

type DeleteCard struct {
	ColumnID string
	CardID   string
}

type EditCard struct {
	ColumnID string
	CardID   string
	Title    string
}

type MoveCard struct {
	SourceColumnID string
	TargetColumnID string
	CardID         string
	TargetIndex    int
}

func (AddCard) name() string    { return "add" }
func (DeleteCard) name() string { return "delete" }
func (EditCard) name() string   { return "edit" }
func (MoveCard) name() string   { return "move" }
