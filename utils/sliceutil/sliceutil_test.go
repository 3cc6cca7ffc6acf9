package sliceutil

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestMapErr(t *testing.T) {
	got, err := MapErr([]string{"1", "2"}, strconv.Atoi)
	if err != nil {
		t.Fatalf("MapErr returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("unexpected result: %v", got)
	}

	sentinel := errors.New("boom")
	_, err = MapErr([]int{1, 2}, func(v int) (int, error) {
		if v == 2 {
			return 0, sentinel
		}
		return v, nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected the mapper error unchanged, got %v", err)
	}
}

func TestMapFixedDepths(t *testing.T) {
	double := func(v int) int { return v * 2 }

	got2 := Map2([][]int{{1, 2}, {}, {3}}, double)
	if !reflect.DeepEqual(got2, [][]int{{2, 4}, {}, {6}}) {
		t.Fatalf("Map2: unexpected result: %v", got2)
	}

	got3 := Map3([][][]int{{{1}, {2, 3}}, {{4}}}, double)
	if !reflect.DeepEqual(got3, [][][]int{{{2}, {4, 6}}, {{8}}}) {
		t.Fatalf("Map3: unexpected result: %v", got3)
	}

	got4 := Map4([][][][]int{{{{1, 2}}}}, double)
	if !reflect.DeepEqual(got4, [][][][]int{{{{2, 4}}}}) {
		t.Fatalf("Map4: unexpected result: %v", got4)
	}

	got5 := Map5([][][][][]int{{{{{5}}}}}, double)
	if !reflect.DeepEqual(got5, [][][][][]int{{{{{10}}}}}) {
		t.Fatalf("Map5: unexpected result: %v", got5)
	}
}
