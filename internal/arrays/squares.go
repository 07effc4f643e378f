package arrays

// SortedSquares squares an ascending slice and returns the squares in
// ascending order. The largest remaining square always sits at one of the
// two ends, so the result is filled from the back.
func SortedSquares(nums []int) []int {
	n := len(nums)
	result := make([]int, n)

	left, right := 0, n-1
	pos := n - 1
	for left <= right {
		leftSquare := nums[left] * nums[left]
		rightSquare := nums[right] * nums[right]
		if leftSquare > rightSquare {
			result[pos] = leftSquare
			left++
		} else {
			result[pos] = rightSquare
			right--
		}
		pos--
	}
	return result
}
