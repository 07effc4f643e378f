package arrays

// TwoSum finds indices i < j with nums[i]+nums[j] == target in a single pass.
// The pair returned is the first one completed while scanning left to right;
// when a value repeats, the most recent index of it is used as i.
func TwoSum(nums []int, target int) (i, j int, ok bool) {
	seen := make(map[int]int, len(nums))
	for j, v := range nums {
		if i, found := seen[target-v]; found {
			return i, j, true
		}
		seen[v] = j
	}
	return 0, 0, false
}
