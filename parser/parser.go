package parser

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const separator = ","

var ErrInvalidInput = errors.New("invalid input")

// Parse converts a comma separated list into integers, keeping input order.
// Any blank or non numeric token rejects the whole input.
func Parse(raw string) ([]int, error) {
	tokens := strings.Split(raw, separator)
	numbers := make([]int, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)

		if token == "" {
			return nil, ErrInvalidInput
		}

		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, ErrInvalidInput
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}

// FromQuery parses the first value of key. A missing key is invalid input.
func FromQuery(values url.Values, key string) ([]int, error) {
	if !values.Has(key) {
		return nil, ErrInvalidInput
	}

	return Parse(values.Get(key))
}
