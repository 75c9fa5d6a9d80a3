package board

import (
	"errors"
	"fmt"
)

// Validate checks the board invariants: column ids are non-empty and unique,
// and every card id is non-empty and appears exactly once across the board.
// All violations are reported together.
func (b Board) Validate() error {
	var errs []error
	columns := make(map[string]struct{}, len(b.Columns))
	cards := make(map[string]string)

	for _, col := range b.Columns {
		if col.ID == "" {
			errs = append(errs, fmt.Errorf("column %q: %w", col.Title, ErrEmptyColumnID))
		} else if _, dup := columns[col.ID]; dup {
			errs = append(errs, fmt.Errorf("%q: %w", col.ID, ErrDuplicateColumn))
		}
		columns[col.ID] = struct{}{}

		for _, c := range col.Cards {
			if c.ID == "" {
				errs = append(errs, fmt.Errorf("card %q in %q: %w", c.Title, col.ID, ErrEmptyCardID))
				continue
			}
			if owner, dup := cards[c.ID]; dup {
				errs = append(errs, fmt.Errorf("card %q in %q and %q: %w", c.ID, owner, col.ID, ErrCardInTwoColumns))
				continue
			}
			cards[c.ID] = col.ID
		}
	}
	return errors.Join(errs...)
}
