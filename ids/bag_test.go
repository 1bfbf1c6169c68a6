// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ids_test

import (
	"testing"

	"github.com/firnlabs/avalanche/ids"
)

func TestBagAdd(t *testing.T) {

	red := testId(0x01)
	blue := testId(0x02)

	bag := ids.Bag{}
	if 0 != bag.Len() {
		t.Fatalf("empty bag size: %d", bag.Len())
	}

	bag.Add(red)
	bag.Add(blue, blue)

	if 3 != bag.Len() {
		t.Errorf("size: %d  expected: 3", bag.Len())
	}
	if 1 != bag.Count(red) {
		t.Errorf("red count: %d  expected: 1", bag.Count(red))
	}
	if 2 != bag.Count(blue) {
		t.Errorf("blue count: %d  expected: 2", bag.Count(blue))
	}
	if 2 != len(bag.List()) {
		t.Errorf("list length: %d  expected: 2", len(bag.List()))
	}

	mode, freq := bag.Mode()
	if blue != mode || 2 != freq {
		t.Errorf("mode: %v/%d  expected: %v/2", mode, freq, blue)
	}

	// zero and negative counts are ignored
	bag.AddCount(red, 0)
	bag.AddCount(red, -5)
	if 1 != bag.Count(red) {
		t.Errorf("red count after no-ops: %d  expected: 1", bag.Count(red))
	}
}

// on a tie the first id to reach the top count stays the mode
func TestBagModeTie(t *testing.T) {

	red := testId(0x01)
	blue := testId(0x02)

	bag := ids.Bag{}
	bag.AddCount(red, 3)
	bag.AddCount(blue, 3)

	mode, freq := bag.Mode()
	if red != mode || 3 != freq {
		t.Fatalf("mode: %v/%d  expected: %v/3", mode, freq, red)
	}

	bag.Add(blue)
	mode, freq = bag.Mode()
	if blue != mode || 4 != freq {
		t.Fatalf("mode: %v/%d  expected: %v/4", mode, freq, blue)
	}
}

func TestBagThreshold(t *testing.T) {

	red := testId(0x01)
	blue := testId(0x02)

	bag := ids.Bag{}
	bag.SetThreshold(2)
	bag.Add(red)
	bag.AddCount(blue, 2)

	met := bag.Threshold()
	if 1 != len(met) {
		t.Fatalf("met: %d ids  expected: 1", len(met))
	}
	if _, ok := met[blue]; !ok {
		t.Error("blue missing from threshold set")
	}

	// lowering the threshold re-admits red
	bag.SetThreshold(1)
	met = bag.Threshold()
	if 2 != len(met) {
		t.Fatalf("met after lowering: %d ids  expected: 2", len(met))
	}

	// raising it evicts both
	bag.SetThreshold(5)
	met = bag.Threshold()
	if 0 != len(met) {
		t.Fatalf("met after raising: %d ids  expected: 0", len(met))
	}
}

func TestBagFilter(t *testing.T) {

	var redBytes, blueBytes, mixBytes [ids.IdLength]byte
	redBytes[0] = 0x00
	blueBytes[0] = 0x0f
	mixBytes[0] = 0x0e

	red, _ := ids.NewId(redBytes[:])
	blue, _ := ids.NewId(blueBytes[:])
	mix, _ := ids.NewId(mixBytes[:])

	bag := ids.Bag{}
	bag.AddCount(red, 1)
	bag.AddCount(blue, 2)
	bag.AddCount(mix, 4)

	// bits [1,4) of blue are 111, matching mix but not red
	filtered := bag.Filter(1, 4, blue)
	if 6 != filtered.Len() {
		t.Fatalf("filtered size: %d  expected: 6", filtered.Len())
	}
	if 0 != filtered.Count(red) {
		t.Errorf("red survived filter: %d", filtered.Count(red))
	}
	if 2 != filtered.Count(blue) || 4 != filtered.Count(mix) {
		t.Errorf("filtered counts: blue %d mix %d  expected: 2 4",
			filtered.Count(blue), filtered.Count(mix))
	}
}

func TestBagSplit(t *testing.T) {

	var evenBytes, oddBytes [ids.IdLength]byte
	oddBytes[0] = 0x01

	even, _ := ids.NewId(evenBytes[:])
	odd, _ := ids.NewId(oddBytes[:])

	bag := ids.Bag{}
	bag.AddCount(even, 3)
	bag.AddCount(odd, 5)

	split := bag.Split(0)
	if 3 != split[0].Count(even) || 0 != split[0].Count(odd) {
		t.Errorf("split[0]: even %d odd %d  expected: 3 0",
			split[0].Count(even), split[0].Count(odd))
	}
	if 5 != split[1].Count(odd) || 0 != split[1].Count(even) {
		t.Errorf("split[1]: even %d odd %d  expected: 0 5",
			split[1].Count(even), split[1].Count(odd))
	}
}

func TestBagEquals(t *testing.T) {

	red := testId(0x01)

	a := ids.Bag{}
	b := ids.Bag{}
	if !a.Equals(&b) {
		t.Error("empty bags unequal")
	}

	a.Add(red)
	if a.Equals(&b) {
		t.Error("different bags equal")
	}

	b.Add(red)
	if !a.Equals(&b) {
		t.Error("identical bags unequal")
	}
}

func TestUniqueBag(t *testing.T) {

	red := testId(0x01)
	blue := testId(0x02)

	votes := ids.UniqueBag{}
	votes.Add(0, red)
	votes.Add(1, red, blue)
	votes.Add(1, red) // duplicate responder, must not double count

	if 2 != votes.GetSet(red).Len() {
		t.Errorf("red responders: %d  expected: 2", votes.GetSet(red).Len())
	}
	if 1 != votes.GetSet(blue).Len() {
		t.Errorf("blue responders: %d  expected: 1", votes.GetSet(blue).Len())
	}

	bag := votes.Bag(2)
	if 2 != bag.Count(red) || 1 != bag.Count(blue) {
		t.Errorf("flattened counts: red %d blue %d  expected: 2 1",
			bag.Count(red), bag.Count(blue))
	}
	met := bag.Threshold()
	if _, ok := met[red]; !ok {
		t.Error("red missing from threshold set")
	}
	if _, ok := met[blue]; ok {
		t.Error("blue must not reach the threshold")
	}

	// removing responder 1's votes leaves only responder 0 on red
	diff := ids.UniqueBag{}
	diff.Add(1, red, blue)
	votes.Difference(&diff)

	if 1 != votes.GetSet(red).Len() {
		t.Errorf("red responders after difference: %d  expected: 1",
			votes.GetSet(red).Len())
	}
	if 0 != votes.GetSet(blue).Len() {
		t.Errorf("blue responders after difference: %d  expected: 0",
			votes.GetSet(blue).Len())
	}

	votes.RemoveSet(red)
	if 0 != votes.GetSet(red).Len() {
		t.Error("red survived removal")
	}
}

func TestSet64(t *testing.T) {

	set := ids.Set64(0)
	set.Add(0)
	set.Add(63)
	set.Add(63)

	if 2 != set.Len() {
		t.Fatalf("length: %d  expected: 2", set.Len())
	}
	if !set.Contains(0) || !set.Contains(63) {
		t.Error("members missing")
	}
	if set.Contains(1) {
		t.Error("phantom member")
	}

	other := ids.Set64(0)
	other.Add(1)
	set.Union(other)
	if 3 != set.Len() {
		t.Errorf("length after union: %d  expected: 3", set.Len())
	}

	set.Intersection(other)
	if 1 != set.Len() || !set.Contains(1) {
		t.Errorf("intersection: %s", set)
	}

	set.Difference(other)
	if 0 != set.Len() {
		t.Errorf("difference: %s", set)
	}

	set.Add(5)
	set.Remove(5)
	set.Clear()
	if 0 != set.Len() {
		t.Errorf("clear: %s", set)
	}
}
