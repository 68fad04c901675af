// Package testutil provides deterministic word corpora for tests and
// benchmarks.
package testutil

import "math/rand"

// wordSeed fixes the generator so corpora are reproducible across runs.
const wordSeed = 0x5eed

const letters = "abcdefghijklmnopqrstuvwxyz"

// Words returns n distinct pseudo-random lowercase words. The sequence
// is the same on every call.
func Words(n int) []string {
	rng := rand.New(rand.NewSource(wordSeed))
	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	for len(words) < n {
		w := randomWord(rng)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// WordsWithDups returns n words where every dupEvery-th entry repeats
// an earlier word, approximating a corpus with recurring strings.
// dupEvery < 2 yields distinct words only.
func WordsWithDups(n, dupEvery int) []string {
	distinct := Words(n)
	words := make([]string, n)
	for i := 0; i < n; i++ {
		if dupEvery >= 2 && i%dupEvery == dupEvery-1 {
			words[i] = words[i/2]
			continue
		}
		words[i] = distinct[i]
	}
	return words
}

// randomWord draws a word of 3 to 12 letters.
func randomWord(rng *rand.Rand) string {
	n := 3 + rng.Intn(10)
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}
