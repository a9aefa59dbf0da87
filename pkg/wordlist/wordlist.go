// Package wordlist loads the fixed dictionary a "word" rule (§6.2) binds
// its Sequence-membership constraint to: a newline-delimited file of
// candidate words, filtered to one fixed length and indexed for
// pkg/solve's Word lattice. The representation — a flat list of equal-
// length byte slices plus per-position equality checks — is the one
// original_source's constraints/seq.rs uses (a SeqSet bitset over the word
// list rather than a hand-built trie); it is the finite-automaton-
// intersection-equivalent realization §4.1 explicitly sanctions.
package wordlist

import (
	"bufio"
	"cmp"
	"fmt"
	"os"
	"strings"

	"github.com/solvomatic/solvomatic/pkg/solve"
)

// Load reads path, lowercases every line, and keeps only the words whose
// byte length equals wordLen. It returns a *solve.WordList[byte] ready to
// bind a Word constraint to. An unreadable path is a setup error surfaced
// synchronously, per §7.
func Load(path string, wordLen int) (*solve.WordList[byte], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &solve.SetupError{Op: "wordlist.Load", Msg: err.Error()}
	}
	defer f.Close()

	var words [][]byte
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		if line == "" {
			continue
		}
		if len(line) != wordLen {
			continue
		}
		words = append(words, []byte(line))
	}
	if err := sc.Err(); err != nil {
		return nil, &solve.SetupError{Op: "wordlist.Load", Msg: err.Error()}
	}
	if len(words) == 0 {
		return nil, &solve.SetupError{Op: "wordlist.Load", Msg: fmt.Sprintf("no %d-letter words found in %s", wordLen, path)}
	}
	return &solve.WordList[byte]{Words: words}, nil
}

// LoadAllLengths reads path once and buckets words by length, for puzzle
// files that need several word constraints of different lengths out of
// the same dictionary (e.g. a word pyramid's rows and diagonals).
func LoadAllLengths(path string) (map[int]*solve.WordList[byte], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &solve.SetupError{Op: "wordlist.LoadAllLengths", Msg: err.Error()}
	}
	defer f.Close()

	buckets := make(map[int][][]byte)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		if line == "" {
			continue
		}
		buckets[len(line)] = append(buckets[len(line)], []byte(line))
	}
	if err := sc.Err(); err != nil {
		return nil, &solve.SetupError{Op: "wordlist.LoadAllLengths", Msg: err.Error()}
	}
	out := make(map[int]*solve.WordList[byte], len(buckets))
	for n, ws := range buckets {
		out[n] = &solve.WordList[byte]{Words: ws}
	}
	return out, nil
}

// LoadEncoded is Load generalized to any Engine value type: encode maps
// each dictionary byte to the Value a puzzle's variables actually use
// (e.g. 'a'..'z' to the integers 1..26 that pkg/puzzle assigns letter
// cells), so a Word constraint can bind to the same int- or rune-valued
// variables as every other rule in the same puzzle.
func LoadEncoded[Value cmp.Ordered](path string, wordLen int, encode func(byte) Value) (*solve.WordList[Value], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &solve.SetupError{Op: "wordlist.LoadEncoded", Msg: err.Error()}
	}
	defer f.Close()

	var words [][]Value
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		if line == "" || len(line) != wordLen {
			continue
		}
		w := make([]Value, wordLen)
		for i := 0; i < wordLen; i++ {
			w[i] = encode(line[i])
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, &solve.SetupError{Op: "wordlist.LoadEncoded", Msg: err.Error()}
	}
	if len(words) == 0 {
		return nil, &solve.SetupError{Op: "wordlist.LoadEncoded", Msg: fmt.Sprintf("no %d-letter words found in %s", wordLen, path)}
	}
	return &solve.WordList[Value]{Words: words}, nil
}
