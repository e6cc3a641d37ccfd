package scrubber

import (
	"reflect"
	"testing"

	"github.com/niagarahome/launcher/internal/model"
)

func entries(letters ...model.Letter) []model.Entry {
	out := make([]model.Entry, len(letters))
	for i, l := range letters {
		out[i] = model.Entry{Letter: l, ID: string(rune('a' + i))}
	}
	return out
}

func TestBuildIndex_Ordering(t *testing.T) {
	ix := BuildIndex(entries('M', '#', 'A', 'A', 'Z'))

	expected := []model.Letter{'A', 'M', 'Z', '#'}
	if got := ix.Letters(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Letters() = %q, expected %q", got, expected)
	}
}

func TestBuildIndex_FirstOccurrence(t *testing.T) {
	ix := BuildIndex(entries('A', 'A', 'B', 'B', 'C'))

	expected := map[model.Letter]int{'A': 0, 'B': 2, 'C': 4}
	for letter, want := range expected {
		got, ok := ix.Position(letter)
		if !ok {
			t.Errorf("Position(%s) missing", letter)
			continue
		}
		if got != want {
			t.Errorf("Position(%s) = %d, expected %d", letter, got, want)
		}
	}

	if _, ok := ix.Position('D'); ok {
		t.Error("Position(D) should be absent")
	}
}

func TestBuildIndex_FoldsUnknownLetters(t *testing.T) {
	ix := BuildIndex(entries('b', '9', 'B'))

	expected := []model.Letter{'B', '#'}
	if got := ix.Letters(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Letters() = %q, expected %q", got, expected)
	}
	if pos, _ := ix.Position('B'); pos != 0 {
		t.Errorf("Position(B) = %d, expected 0", pos)
	}
	if pos, _ := ix.Position('#'); pos != 1 {
		t.Errorf("Position(#) = %d, expected 1", pos)
	}
}

func TestBuildIndex_Empty(t *testing.T) {
	ix := BuildIndex(nil)

	if ix.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", ix.Len())
	}
	if _, ok := ix.At(0); ok {
		t.Error("At(0) should fail on an empty index")
	}
	if ix.BucketOf('A') != -1 {
		t.Error("BucketOf on empty index should be -1")
	}
}

func TestLetterIndex_NilSafe(t *testing.T) {
	var ix *LetterIndex

	if ix.Len() != 0 || ix.Letters() != nil || ix.BucketOf('A') != -1 {
		t.Error("nil index should behave as empty")
	}
	if _, ok := ix.Position('A'); ok {
		t.Error("nil index should have no positions")
	}
}

func TestLetterIndex_AtAndBucketOf(t *testing.T) {
	ix := BuildIndex(entries('C', 'A', '#'))

	tests := []struct {
		bucket int
		letter model.Letter
	}{
		{0, 'A'},
		{1, 'C'},
		{2, '#'},
	}
	for _, test := range tests {
		got, ok := ix.At(test.bucket)
		if !ok || got != test.letter {
			t.Errorf("At(%d) = %s/%v, expected %s", test.bucket, got, ok, test.letter)
		}
		if b := ix.BucketOf(test.letter); b != test.bucket {
			t.Errorf("BucketOf(%s) = %d, expected %d", test.letter, b, test.bucket)
		}
	}
	if _, ok := ix.At(-1); ok {
		t.Error("At(-1) should fail")
	}
	if _, ok := ix.At(3); ok {
		t.Error("At(3) should fail")
	}
}

func TestLetterIndex_LettersIsACopy(t *testing.T) {
	ix := BuildIndex(entries('A', 'B'))
	letters := ix.Letters()
	letters[0] = 'Z'

	if got, _ := ix.At(0); got != 'A' {
		t.Errorf("mutating Letters() leaked into the index: At(0) = %s", got)
	}
}
