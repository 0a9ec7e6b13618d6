package game

// MoveResult is the outcome of applying a direction to a board.
// Changed is false when the move left every tile in place, in which
// case the caller must reject the move and spawn nothing.
type MoveResult struct {
	Board       Board
	Changed     bool
	ScoreGained int
}

// Apply slides the board in the given direction and merges equal
// neighbors, without mutating the input. ScoreGained is the sum of all
// merged tile values produced by this move.
func Apply(b Board, dir Direction) (MoveResult, error) {
	switch dir {
	case DirLeft:
		nb, score, changed := slideLeft(b)
		return MoveResult{Board: nb, Changed: changed, ScoreGained: score}, nil
	case DirRight:
		nb, score, changed := slideRight(b)
		return MoveResult{Board: nb, Changed: changed, ScoreGained: score}, nil
	case DirUp:
		nb, score, changed := slideUp(b)
		return MoveResult{Board: nb, Changed: changed, ScoreGained: score}, nil
	case DirDown:
		nb, score, changed := slideDown(b)
		return MoveResult{Board: nb, Changed: changed, ScoreGained: score}, nil
	default:
		return MoveResult{}, ErrInvalidDirection
	}
}

// CanMove returns true if applying the direction would change the board.
func (b Board) CanMove(dir Direction) bool {
	res, err := Apply(b, dir)
	return err == nil && res.Changed
}

// slideRow slides and merges a single row to the left.
// Returns the updated row and the score gained from merges. A tile
// produced by a merge is locked for the rest of the pass so it never
// merges again within the same move.
func slideRow(row []int) (result []int, score int) {
	result = make([]int, len(row))
	writePos := 0
	lastMerged := -1

	for _, v := range row {
		if v == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == v && lastMerged != writePos-1 {
			// Merge with previous tile
			result[writePos-1] *= 2
			score += result[writePos-1]
			lastMerged = writePos - 1
		} else {
			// Move tile
			result[writePos] = v
			writePos++
		}
	}

	return result, score
}

// reverseRow reverses a row in place.
func reverseRow(row []int) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}

// slideLeft slides all tiles left and merges.
// Returns the new board, score gained, and whether the board changed.
func slideLeft(b Board) (Board, int, bool) {
	newBoard := Board{size: b.size, cells: make([]int, len(b.cells))}
	totalScore := 0
	changed := false

	for y := 0; y < b.size; y++ {
		row := b.cells[y*b.size : (y+1)*b.size]
		newRow, score := slideRow(row)
		totalScore += score

		for x, v := range newRow {
			newBoard.cells[y*b.size+x] = v
			if v != row[x] {
				changed = true
			}
		}
	}

	return newBoard, totalScore, changed
}

// slideRight slides all tiles right and merges.
func slideRight(b Board) (Board, int, bool) {
	newBoard := Board{size: b.size, cells: make([]int, len(b.cells))}
	totalScore := 0
	changed := false

	for y := 0; y < b.size; y++ {
		// Reverse, slide left, reverse back
		row := make([]int, b.size)
		copy(row, b.cells[y*b.size:(y+1)*b.size])
		reverseRow(row)

		newRow, score := slideRow(row)
		reverseRow(newRow)
		totalScore += score

		for x, v := range newRow {
			newBoard.cells[y*b.size+x] = v
			if v != b.cells[y*b.size+x] {
				changed = true
			}
		}
	}

	return newBoard, totalScore, changed
}

// slideUp slides all tiles up and merges.
func slideUp(b Board) (Board, int, bool) {
	// Transpose, slide left, transpose back
	slid, score, changed := slideLeft(transpose(b))
	return transpose(slid), score, changed
}

// slideDown slides all tiles down and merges.
func slideDown(b Board) (Board, int, bool) {
	// Transpose, slide right, transpose back
	slid, score, changed := slideRight(transpose(b))
	return transpose(slid), score, changed
}

// transpose returns the matrix transpose.
func transpose(b Board) Board {
	result := Board{size: b.size, cells: make([]int, len(b.cells))}
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			result.cells[y*result.size+x] = b.cells[x*b.size+y]
		}
	}
	return result
}
