package ripshuffle

import "testing"

func bucketContent[T any](b Bucket[T]) []T {
	return append([]T(nil), b.Slice()...)
}

func TestMergeBucketsPreservesProcessedCount(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	left := Bucket[int]{data: data, lo: 0, hi: 6, processed: 4}
	right := Bucket[int]{data: data, lo: 6, hi: 10, processed: 3}

	merged := mergeBuckets(left, right)

	if merged.lo != 0 || merged.hi != 10 {
		t.Fatalf("merged bounds = [%d,%d), want [0,10)", merged.lo, merged.hi)
	}
	if merged.Processed() != 7 {
		t.Fatalf("merged.Processed() = %d, want 7", merged.Processed())
	}
	want := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true, 10: true}
	for _, v := range merged.Slice() {
		if !want[v] {
			t.Fatalf("merged bucket lost element, content=%v", merged.Slice())
		}
		delete(want, v)
	}
	if len(want) != 0 {
		t.Fatalf("merged bucket missing elements: %v", want)
	}
}

// Shrink-right then grow-back round trip, stash-only case: two adjacent
// buckets of lengths (6, 4) and stash sizes (2, 1); shrink left by its
// full stash of 2, then grow it back by 2. Lengths, processed counts,
// and every element's absolute position must all be restored — within
// the stash regime the two operations are exact inverses.
func TestShrinkThenGrowRoundTrip(t *testing.T) {
	orig := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	data := append([]int(nil), orig...)
	left := Bucket[int]{data: data, lo: 0, hi: 6, processed: 4}
	right := Bucket[int]{data: data, lo: 6, hi: 10, processed: 3}

	shrunkLeft, grownRight := shrinkToRight(left, right, 2)
	if shrunkLeft.Len() != 4 || grownRight.Len() != 6 {
		t.Fatalf("after shrink: lengths = (%d, %d), want (4, 6)", shrunkLeft.Len(), grownRight.Len())
	}
	if !shrunkLeft.FullyProcessed() {
		t.Fatalf("shrunk left should be fully processed, got processed=%d len=%d", shrunkLeft.Processed(), shrunkLeft.Len())
	}
	if grownRight.Processed() != 3 {
		t.Fatalf("grown right processed = %d, want 3 (processed elements never change buckets)", grownRight.Processed())
	}

	restoredLeft, restoredRight := growFromRight(shrunkLeft, grownRight, 2)
	if restoredLeft.Len() != 6 || restoredRight.Len() != 4 {
		t.Fatalf("after grow-back: lengths = (%d, %d), want (6, 4)", restoredLeft.Len(), restoredRight.Len())
	}
	if restoredLeft.Processed() != 4 || restoredRight.Processed() != 3 {
		t.Fatalf("after grow-back: processed = (%d, %d), want (4, 3)", restoredLeft.Processed(), restoredRight.Processed())
	}
	for i, v := range data {
		if v != orig[i] {
			t.Fatalf("position %d = %d after round trip, want %d (data=%v)", i, v, orig[i], data)
		}
	}
}

// The same round trip with k = 3 forces the shrink one slot into left's
// processed prefix. That one processed element genuinely changes
// buckets, so the exact positions aren't recoverable; what must still
// hold afterwards: lengths restored, the combined multiset untouched,
// the total processed count conserved, and a valid prefix/suffix split
// on both buckets.
func TestShrinkThenGrowBeyondStashKeepsInvariants(t *testing.T) {
	orig := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	data := append([]int(nil), orig...)
	left := Bucket[int]{data: data, lo: 0, hi: 6, processed: 4}
	right := Bucket[int]{data: data, lo: 6, hi: 10, processed: 3}

	shrunkLeft, grownRight := shrinkToRight(left, right, 3)
	if shrunkLeft.Len() != 3 || grownRight.Len() != 7 {
		t.Fatalf("after shrink: lengths = (%d, %d), want (3, 7)", shrunkLeft.Len(), grownRight.Len())
	}
	if shrunkLeft.Processed() != 3 || grownRight.Processed() != 4 {
		t.Fatalf("after shrink: processed = (%d, %d), want (3, 4)", shrunkLeft.Processed(), grownRight.Processed())
	}

	restoredLeft, restoredRight := growFromRight(shrunkLeft, grownRight, 3)
	if restoredLeft.Len() != 6 || restoredRight.Len() != 4 {
		t.Fatalf("after grow-back: lengths = (%d, %d), want (6, 4)", restoredLeft.Len(), restoredRight.Len())
	}
	if total := restoredLeft.Processed() + restoredRight.Processed(); total != 7 {
		t.Fatalf("after grow-back: total processed = %d, want 7", total)
	}
	if restoredLeft.Processed() < 0 || restoredLeft.Processed() > restoredLeft.Len() ||
		restoredRight.Processed() < 0 || restoredRight.Processed() > restoredRight.Len() {
		t.Fatalf("invalid split after grow-back: processed = (%d, %d), lengths = (%d, %d)",
			restoredLeft.Processed(), restoredRight.Processed(), restoredLeft.Len(), restoredRight.Len())
	}
	isPermutationOf(t, data, orig)
}

func TestShrinkToRightPureStashCase(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7}
	left := Bucket[int]{data: data, lo: 0, hi: 4, processed: 2}
	right := Bucket[int]{data: data, lo: 4, hi: 8, processed: 1}

	newLeft, newRight := shrinkToRight(left, right, 2)
	if newLeft.Processed() != 2 || newLeft.Len() != 2 {
		t.Fatalf("newLeft = (len %d, processed %d), want (2, 2)", newLeft.Len(), newLeft.Processed())
	}
	if newRight.Processed() != 1 || newRight.Len() != 6 {
		t.Fatalf("newRight = (len %d, processed %d), want (6, 1)", newRight.Len(), newRight.Processed())
	}
}

func TestAdjacentRejectsNonAdjacentBuckets(t *testing.T) {
	data := make([]int, 20)
	left := Bucket[int]{data: data, lo: 0, hi: 5}
	right := Bucket[int]{data: data, lo: 6, hi: 10}
	if adjacent(left, right) {
		t.Fatal("non-adjacent buckets reported as adjacent")
	}
}

func TestMergeNonAdjacentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic merging non-adjacent buckets")
		}
	}()
	data := make([]int, 20)
	left := Bucket[int]{data: data, lo: 0, hi: 5}
	right := Bucket[int]{data: data, lo: 6, hi: 10}
	mergeBuckets(left, right)
}
