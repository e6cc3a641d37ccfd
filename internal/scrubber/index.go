package scrubber

import (
	"github.com/niagarahome/launcher/internal/model"
)

// LetterIndex maps the letters present in a displayed sequence to the
// position of their first occurrence. It is immutable once built; a new
// snapshot gets a new index.
type LetterIndex struct {
	letters []model.Letter
	first   map[model.Letter]int
}

// BuildIndex derives the letter index of entries. Letters enumerate 'A'..'Z'
// followed by '#', whatever the order of entries. Letters outside that set
// are folded into '#'.
func BuildIndex(entries []model.Entry) *LetterIndex {
	first := make(map[model.Letter]int)
	for i, e := range entries {
		letter := e.Letter.Normalize()
		if _, seen := first[letter]; !seen {
			first[letter] = i
		}
	}

	letters := make([]model.Letter, 0, len(first))
	for l := model.Letter('A'); l <= 'Z'; l++ {
		if _, ok := first[l]; ok {
			letters = append(letters, l)
		}
	}
	if _, ok := first[model.LetterOther]; ok {
		letters = append(letters, model.LetterOther)
	}

	return &LetterIndex{letters: letters, first: first}
}

// Len returns the number of letters (buckets) in the index
func (ix *LetterIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.letters)
}

// Letters returns the letters in display order
func (ix *LetterIndex) Letters() []model.Letter {
	if ix == nil {
		return nil
	}
	out := make([]model.Letter, len(ix.letters))
	copy(out, ix.letters)
	return out
}

// At returns the letter of bucket i
func (ix *LetterIndex) At(i int) (model.Letter, bool) {
	if ix == nil || i < 0 || i >= len(ix.letters) {
		return 0, false
	}
	return ix.letters[i], true
}

// Position returns the first position of letter in the indexed sequence
func (ix *LetterIndex) Position(letter model.Letter) (int, bool) {
	if ix == nil {
		return 0, false
	}
	pos, ok := ix.first[letter]
	return pos, ok
}

// BucketOf returns the bucket of letter, or -1 if it is absent
func (ix *LetterIndex) BucketOf(letter model.Letter) int {
	if ix == nil {
		return -1
	}
	for i, l := range ix.letters {
		if l == letter {
			return i
		}
	}
	return -1
}
