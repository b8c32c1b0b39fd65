package mapreduce

import (
	"reflect"
	"testing"
)

func TestMapReduce(t *testing.T) {
	a := Map([][]string{{"seo", "content"}, {"content", "quality"}})
	b := Map([][]string{{"content", "seo"}})

	final := Reduce([]map[string]int{a, b})
	want := map[string]int{"seo": 2, "content": 3, "quality": 1}
	if !reflect.DeepEqual(final, want) {
		t.Errorf("Reduce() = %v, want %v", final, want)
	}
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"content": 3, "seo": 2, "quality": 1, "audit": 2}

	got := TopKeywords(counts, 3)
	want := []string{"content:3", "audit:2", "seo:2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywords_LimitBeyondSize(t *testing.T) {
	got := TopKeywords(map[string]int{"one": 1}, 25)
	if len(got) != 1 {
		t.Errorf("TopKeywords() returned %d entries, want 1", len(got))
	}
}

func TestMap_Empty(t *testing.T) {
	if got := Map(nil); len(got) != 0 {
		t.Errorf("Map(nil) = %v, want empty", got)
	}
}
