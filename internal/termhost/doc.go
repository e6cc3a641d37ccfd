// Package termhost drives the alphabet strip from a terminal. It renders the
// app list with tcell and maps mouse drags on the rightmost column to
// scrubber gestures.
package termhost
