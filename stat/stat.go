package stat

import "sort"

func Mean(numbers []int) float64 {
	if len(numbers) == 0 {
		return float64(0)
	}

	var sum float64

	for _, n := range numbers {
		sum += float64(n)
	}

	return sum / float64(len(numbers))
}

// Median sorts a copy, the caller's ordering is left untouched.
func Median(numbers []int) float64 {
	if len(numbers) == 0 {
		return 0
	}

	sorted := sortedCopy(numbers)
	l := len(sorted)

	if l%2 == 0 {
		return (float64(sorted[l/2-1]) + float64(sorted[l/2])) / float64(2)
	}

	return float64(sorted[(l-1)/2])
}

// Mode returns the most frequent value. On equal frequencies the smallest
// value wins: keys are scanned in ascending order and only a strictly
// higher count replaces the current candidate.
func Mode(numbers []int) int {
	if len(numbers) == 0 {
		return 0
	}

	frequencies := make(map[int]int, len(numbers))

	for _, n := range numbers {
		frequencies[n]++
	}

	keys := make([]int, 0, len(frequencies))

	for k := range frequencies {
		keys = append(keys, k)
	}

	sort.Ints(keys)

	mode, maxFrequency := keys[0], 0

	for _, k := range keys {
		if frequencies[k] > maxFrequency {
			maxFrequency = frequencies[k]
			mode = k
		}
	}

	return mode
}

func sortedCopy(numbers []int) []int {
	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	return sorted
}
