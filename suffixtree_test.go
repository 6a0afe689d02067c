package suffixtree

import (
	"errors"
	"slices"
	"testing"
)

func mustTree(t *testing.T, text string) *Tree {
	t.Helper()
	tree, err := New(text)
	if err != nil {
		t.Fatalf("New(%q): %v", text, err)
	}
	return tree
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrInvalidInput},
		{"missing sentinel", "BANANA", ErrInvalidInput},
		{"interior sentinel", "BAN$ANA$", ErrInvalidInput},
		{"sentinel only duplicated", "$$", ErrInvalidInput},
		{"lowercase", "banana$", ErrUnsupportedSymbol},
		{"digit", "AB1$", ErrUnsupportedSymbol},
		{"space", "A B$", ErrUnsupportedSymbol},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.text); !errors.Is(err, tc.want) {
				t.Errorf("New(%q) error = %v, want %v", tc.text, err, tc.want)
			}
		})
	}

	if _, err := New("$"); err != nil {
		t.Errorf("New(\"$\") should accept the bare sentinel, got %v", err)
	}
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"banana", "BANANA", nil},
		{"BaNaNa", "BANANA", nil},
		{"  hello  ", "HELLO", nil},
		{"", "", ErrInvalidInput},
		{"   ", "", ErrInvalidInput},
		{"abc1", "", ErrUnsupportedSymbol},
		{"café", "", ErrUnsupportedSymbol},
		{"AB$", "", ErrUnsupportedSymbol},
		{"two words", "", ErrUnsupportedSymbol},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Prepare(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Prepare(%q) error = %v, want %v", tc.in, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Prepare(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Prepare(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	tree := mustTree(t, "BANANA$")
	if tree.Text() != "BANANA$" {
		t.Errorf("Text() = %q", tree.Text())
	}
}

func TestSuffixIndexPermutation(t *testing.T) {
	for _, text := range []string{"$", "A$", "BANANA$", "AAAA$", "ABCDE$", "MISSISSIPPI$"} {
		t.Run(text, func(t *testing.T) {
			tree := mustTree(t, text)
			sa, err := tree.SuffixArray()
			if err != nil {
				t.Fatal(err)
			}
			if len(sa) != len(text) {
				t.Fatalf("got %d leaves, want %d", len(sa), len(text))
			}
			sorted := slices.Clone(sa)
			slices.Sort(sorted)
			for i, v := range sorted {
				if v != i {
					t.Fatalf("suffix indices are not a permutation of [0, %d): %v", len(text), sa)
				}
			}
		})
	}
}

func TestIncompleteTree(t *testing.T) {
	check := func(name string, err error) {
		t.Helper()
		if !errors.Is(err, ErrIncompleteTree) {
			t.Errorf("%s on unbuilt tree: error = %v, want ErrIncompleteTree", name, err)
		}
	}

	var tree Tree
	_, err := tree.Search("A")
	check("Search", err)
	_, err = tree.FindAllMatches("A")
	check("FindAllMatches", err)
	_, err = tree.LongestRepeatedSubstring()
	check("LongestRepeatedSubstring", err)
	_, err = tree.ShortestUniqueSubstring()
	check("ShortestUniqueSubstring", err)
	_, err = tree.SuffixArray()
	check("SuffixArray", err)
	_, err = tree.LongestCommonExtension(0, 1)
	check("LongestCommonExtension", err)

	for range tree.Traverse() {
		t.Error("Traverse on unbuilt tree should yield nothing")
	}

	var nilTree *Tree
	_, err = nilTree.Search("A")
	check("Search on nil", err)
}
