package helper

import (
	"strconv"
)

func First(input []int, count int) []int {
	return input[:Min(len(input), Max(0, count))]
}

func IntSliceToString(input []int) string {
	b := ""

	for _, v := range input {
		if len(b) > 0 {
			b += ", "
		}

		b += strconv.Itoa(v)
	}

	return b
}

// Preview renders at most count values, noting how many were left out.
func Preview(input []int, count int) string {
	shown := First(input, count)
	b := IntSliceToString(shown)

	if rest := len(input) - len(shown); rest > 0 {
		b += ", ... (" + strconv.Itoa(rest) + " more)"
	}

	return b
}
