package game

import "fmt"

// ValidationError contains details about a malformed board grid.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// validateShape checks that the grid is square and large enough.
func validateShape(rows [][]int) error {
	if len(rows) < 2 {
		return ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("grid has %d rows, want at least 2", len(rows)),
		}
	}

	for y, row := range rows {
		if len(row) != len(rows) {
			return ValidationError{
				Code:    "NOT_SQUARE",
				Message: fmt.Sprintf("row %d has %d cells, want %d", y, len(row), len(rows)),
			}
		}
	}

	return nil
}

// validateRows checks shape plus tile values: each cell must hold 0 or
// a power of two of at least 2. Malformed boards are rejected here, at
// construction time, so the move engine and search never see one.
func validateRows(rows [][]int) error {
	if err := validateShape(rows); err != nil {
		return err
	}

	for y, row := range rows {
		for x, v := range row {
			if v < 0 {
				return ValidationError{
					Code:    "NEGATIVE_VALUE",
					Message: fmt.Sprintf("cell (%d,%d) holds %d", y, x, v),
				}
			}
			if v != 0 && !isTile(v) {
				return ValidationError{
					Code:    "NOT_POWER_OF_TWO",
					Message: fmt.Sprintf("cell (%d,%d) holds %d, want 0 or a power of two", y, x, v),
				}
			}
		}
	}

	return nil
}

// isTile returns true for values a tile can legally hold (powers of two
// starting at 2).
func isTile(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
