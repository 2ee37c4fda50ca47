package board

import (
	"errors"
	"fmt"
)

// ErrUnknownLevel indicates a premade level number outside 1..PremadeCount.
var ErrUnknownLevel = errors.New("board: unknown premade level")

// premade holds the hand-built levels, easiest first.
var premade = [...]string{
	`
.........
....****.
..A*..**.
..**..**.
..**.*X*.
.***.**..
.........
.........
.........
`,
	`
.........
.........
.A*......
.**......
.****....
....*....
....****.
....**X*.
.....**..
`,
	`
.........
.A*......
.**......
.****....
....*.**.
....*.**.
....**X*.
.....**..
.........
`,
}

// PremadeCount is the number of hand-built levels.
const PremadeCount = len(premade)

// Premade returns hand-built level n (1-based).
func Premade(n int) (*Board, error) {
	if n < 1 || n > PremadeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, n)
	}

	return Parse(premade[n-1])
}
