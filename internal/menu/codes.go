package menu

import (
	"strconv"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
)

// Menu codes are 1-based positions.

func categoryForCode(code string) (convert.Category, bool) {
	cats := convert.Categories()
	i, ok := position(code, len(cats))
	if !ok {
		return 0, false
	}
	return cats[i], true
}

func directionForCode(dirs []convert.Direction, code string) (convert.Direction, bool) {
	i, ok := position(code, len(dirs))
	if !ok {
		return 0, false
	}
	return dirs[i], true
}

// backCode is the code of the "Go Back" entry that follows the directions.
func backCode(dirs []convert.Direction) string {
	return strconv.Itoa(len(dirs) + 1)
}

// position maps a code in 1..n to an index. Only plain decimal digits are
// accepted, so "+1" and "01" are unknown options.
func position(code string, n int) (int, bool) {
	if code == "" || code[0] < '1' || code[0] > '9' {
		return 0, false
	}
	i, err := strconv.Atoi(code)
	if err != nil || i > n {
		return 0, false
	}
	return i - 1, true
}
