package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aurianecodebien/tictactoe-cli/internal/apperror"
	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
)

// parseCell turns the player's 1-based position into a board cell index.
func parseCell(line string) (int, error) {
	line = strings.TrimSpace(line)

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidMove, line)
	}

	if n < 1 || n > entity.BoardSize {
		return 0, fmt.Errorf("%w: position %d is out of range", apperror.ErrInvalidMove, n)
	}

	return n - 1, nil
}

// readLines pumps lines from r into a channel and closes it when the
// input ends. Reading through a channel lets the prompt select on ctx.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
