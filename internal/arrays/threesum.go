package arrays

import "sort"

// Triplet is a value-sorted 3-tuple (a <= b <= c).
type Triplet [3]int

// Sum returns a + b + c.
func (t Triplet) Sum() int {
	return t[0] + t[1] + t[2]
}

// ThreeSum returns every distinct triplet of nums that sums to zero.
// Triplets are emitted in ascending anchor order and each triplet is
// ascending internally. nums itself is left untouched.
func ThreeSum(nums []int) []Triplet {
	result := []Triplet{}
	if len(nums) < 3 {
		return result
	}

	sorted := make([]int, len(nums))
	copy(sorted, nums)
	sort.Ints(sorted)

	n := len(sorted)
	for i := 0; i < n; i++ {
		// Everything after a positive anchor is positive too.
		if sorted[i] > 0 {
			break
		}
		if i > 0 && sorted[i] == sorted[i-1] {
			continue
		}

		l, r := i+1, n-1
		for l < r {
			sum := sorted[i] + sorted[l] + sorted[r]
			switch {
			case sum == 0:
				result = append(result, Triplet{sorted[i], sorted[l], sorted[r]})
				l++
				r--
				for l < r && sorted[l] == sorted[l-1] {
					l++
				}
				for l < r && sorted[r] == sorted[r+1] {
					r--
				}
			case sum > 0:
				r--
			default:
				l++
			}
		}
	}
	return result
}
