package stat

import (
	"errors"
	"fmt"
	"strconv"
)

type Operation string

const (
	OperationMean   Operation = "mean"
	OperationMedian Operation = "median"
	OperationMode   Operation = "mode"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Result is a computed statistic with its value already rendered as text.
type Result struct {
	Operation Operation `json:"operation"`
	Value     string    `json:"value"`
}

func Operations() []Operation {
	return []Operation{OperationMean, OperationMedian, OperationMode}
}

func (o Operation) Valid() bool {
	switch o {
	case OperationMean, OperationMedian, OperationMode:
		return true
	default:
		return false
	}
}

func Summarize(op Operation, numbers []int) (Result, error) {
	r := Result{Operation: op}

	switch op {
	case OperationMean:
		r.Value = FormatReal(Mean(numbers))
	case OperationMedian:
		r.Value = FormatReal(Median(numbers))
	case OperationMode:
		r.Value = strconv.Itoa(Mode(numbers))
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	return r, nil
}

// FormatReal prints whole values without a fraction ("20") and fractional
// values in the shortest form that round-trips ("1.5").
func FormatReal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
