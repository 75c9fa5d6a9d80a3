package seed

import (
	"time"

	"dragboard/internal/board"
	"dragboard/internal/card"
	"dragboard/internal/column"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

// Default is the board shown when no seed file is configured.
func Default() board.Board {
	return board.New(
		column.New("todo", "Todo",
			card.New("card-1", "Research project requirements", day(10)),
			card.New("card-2", "Create wireframes for new feature", day(11)),
			card.New("card-3", "Review pull requests", day(12)),
		),
		column.New("in-progress", "In Progress",
			card.New("card-4", "Implement authentication module", day(8)),
			card.New("card-5", "Write unit tests for API", day(9)),
		),
		column.New("done", "Done",
			card.New("card-6", "Setup development environment", day(5)),
			card.New("card-7", "Database schema design", day(6)),
		),
	)
}
