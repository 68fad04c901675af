package strtab

import (
	"testing"

	"github.com/PatrickHead/libstrings/internal/testutil"
)

func BenchmarkStore_AddDistinct(b *testing.B) {
	words := testutil.Words(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := New()
		for _, w := range words {
			s.Add(w)
		}
	}
}

func BenchmarkStore_AddDeduped(b *testing.B) {
	words := testutil.WordsWithDups(4096, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := New()
		for _, w := range words {
			s.Add(w)
		}
	}
}

func BenchmarkStore_FindByText(b *testing.B) {
	words := testutil.Words(4096)
	s := New()
	for _, w := range words {
		s.Add(w)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.FindByText(words[i%len(words)])
	}
}

func BenchmarkStore_FindByID(b *testing.B) {
	words := testutil.Words(4096)
	s := New()
	for _, w := range words {
		s.Add(w)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.FindByID(uint32(i % len(words)))
	}
}

func BenchmarkStore_Renumber(b *testing.B) {
	words := testutil.Words(4096)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := New()
		for _, w := range words {
			s.Add(w)
		}
		for j := 0; j < len(words); j += 3 {
			s.Remove(words[j])
		}
		b.StartTimer()
		s.Renumber()
	}
}
