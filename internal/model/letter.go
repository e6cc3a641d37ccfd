package model

import (
	"github.com/rivo/uniseg"
)

// Letter is the sort bucket an item belongs to: 'A'..'Z' or the catch-all '#'.
type Letter rune

// LetterOther is the bucket for labels that do not start with a latin letter.
const LetterOther Letter = '#'

// String returns the letter as a one-character string
func (l Letter) String() string {
	return string(rune(l))
}

// IsAlpha reports whether the letter is one of 'A'..'Z'
func (l Letter) IsAlpha() bool {
	return l >= 'A' && l <= 'Z'
}

// Normalize maps lowercase latin letters to uppercase and everything outside
// 'A'..'Z' to LetterOther.
func (l Letter) Normalize() Letter {
	if l >= 'a' && l <= 'z' {
		return l - 'a' + 'A'
	}
	if l.IsAlpha() {
		return l
	}
	return LetterOther
}

// LetterOf derives the sort letter from a display label.
//
// The first user-perceived character is inspected; only a plain latin letter
// maps to its own bucket. Digits, symbols, accented clusters ("e" + combining
// acute) and empty labels all land in LetterOther.
func LetterOf(label string) Letter {
	if label == "" {
		return LetterOther
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(label, -1)
	runes := []rune(cluster)
	if len(runes) != 1 {
		return LetterOther
	}
	return Letter(runes[0]).Normalize()
}

// Entry is one position of the displayed sequence as seen by the scrubber
type Entry struct {
	Letter Letter
	ID     string
}
