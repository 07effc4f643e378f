package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"drillbook/internal/arrays"
	"drillbook/internal/logging"

	"github.com/spf13/cobra"
)

// ErrUnsorted is returned by squares when the input is not ascending.
var ErrUnsorted = errors.New("input must be sorted ascending (or pass --sort)")

var (
	twoSumTarget int
	sortFirst    bool
)

// threeSumCmd lists zero-sum triplets
var threeSumCmd = &cobra.Command{
	Use:   "threesum [ints...]",
	Short: "List every distinct triplet that sums to zero",
	Example: `  drillbook threesum -- -1 0 1 2 -1 -4
  echo "-1,0,1,2,-1,-4" | drillbook threesum -o json`,
	RunE: runThreeSum,
}

// squaresCmd squares a sorted sequence
var squaresCmd = &cobra.Command{
	Use:   "squares [ints...]",
	Short: "Square an ascending sequence, keeping it sorted",
	Example: `  drillbook squares -- -4 -1 0 3 10
  drillbook squares --sort 3 -7 2`,
	RunE: runSquares,
}

// moveZeroesCmd pushes zeroes to the end
var moveZeroesCmd = &cobra.Command{
	Use:   "movezeroes [ints...]",
	Short: "Move zeroes to the end, keeping the order of everything else",
	RunE:  runMoveZeroes,
}

// reverseCmd reverses a sequence
var reverseCmd = &cobra.Command{
	Use:   "reverse [ints...]",
	Short: "Reverse a sequence",
	RunE:  runReverse,
}

// twoSumCmd finds a pair summing to a target
var twoSumCmd = &cobra.Command{
	Use:     "twosum --target N [ints...]",
	Short:   "Find two indices whose values add up to the target",
	Example: `  drillbook twosum --target 10 2 1 4 6 0 9`,
	RunE:    runTwoSum,
}

func runThreeSum(cmd *cobra.Command, args []string) error {
	nums, err := readInts(cmd, args)
	if err != nil {
		return err
	}

	timer := logging.StartTimer(logging.CategoryArrays, "threesum")
	triplets := arrays.ThreeSum(nums)
	timer.Stop()

	logging.Get(logging.CategoryCLI).Info("threesum: %d inputs, %d triplets", len(nums), len(triplets))

	return render(cmd.OutOrStdout(), triplets, func(w io.Writer) error {
		if len(triplets) == 0 {
			_, err := fmt.Fprintln(w, "no triplets")
			return err
		}
		for _, t := range triplets {
			if _, err := fmt.Fprintln(w, formatInts(t[:])); err != nil {
				return err
			}
		}
		return nil
	})
}

func runSquares(cmd *cobra.Command, args []string) error {
	nums, err := readInts(cmd, args)
	if err != nil {
		return err
	}
	if sortFirst {
		sort.Ints(nums)
	} else if !sort.IntsAreSorted(nums) {
		return ErrUnsorted
	}

	squares := arrays.SortedSquares(nums)
	return renderInts(cmd.OutOrStdout(), squares)
}

func runMoveZeroes(cmd *cobra.Command, args []string) error {
	nums, err := readInts(cmd, args)
	if err != nil {
		return err
	}
	arrays.MoveZeroes(nums)
	return renderInts(cmd.OutOrStdout(), nums)
}

func runReverse(cmd *cobra.Command, args []string) error {
	nums, err := readInts(cmd, args)
	if err != nil {
		return err
	}
	arrays.Reverse(nums)
	return renderInts(cmd.OutOrStdout(), nums)
}

// twoSumResult is the structured form of a twosum answer.
type twoSumResult struct {
	Found  bool `json:"found" yaml:"found"`
	I      int  `json:"i" yaml:"i"`
	J      int  `json:"j" yaml:"j"`
	Target int  `json:"target" yaml:"target"`
}

func runTwoSum(cmd *cobra.Command, args []string) error {
	nums, err := readInts(cmd, args)
	if err != nil {
		return err
	}

	i, j, ok := arrays.TwoSum(nums, twoSumTarget)
	result := twoSumResult{Found: ok, I: i, J: j, Target: twoSumTarget}

	return render(cmd.OutOrStdout(), result, func(w io.Writer) error {
		if !ok {
			_, err := fmt.Fprintf(w, "no pair sums to %d\n", twoSumTarget)
			return err
		}
		_, err := fmt.Fprintf(w, "%d, %d\n", i, j)
		return err
	})
}

func renderInts(w io.Writer, nums []int) error {
	return render(w, nums, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, formatInts(nums))
		return err
	})
}
