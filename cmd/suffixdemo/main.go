// Command suffixdemo builds a suffix tree over a string and walks through
// every query the library offers: the printed tree, exact search, occurrence
// listing, the longest repeated substring and the shortest unique substring.
// Without -text it prompts on stdin, like a classroom demo.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/KarTaGo124/suffixtree"
)

func main() {
	text := flag.String("text", "", "text to index (skips the prompt; letters only, '$' is appended)")
	search := flag.String("search", "", "pattern for the membership query")
	find := flag.String("find", "", "pattern for the occurrence query")
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)

	raw := *text
	if raw == "" {
		raw = prompt(in, "Enter the string to index ('$' will be appended): ")
	}
	prepared, err := suffixtree.Prepare(raw)
	if err != nil {
		fatal(err)
	}

	tree, err := suffixtree.New(prepared + string(suffixtree.Sentinel))
	if err != nil {
		fatal(err)
	}

	fmt.Println("Suffix tree:")
	for depth, label := range tree.Traverse() {
		fmt.Printf("%s%s\n", strings.Repeat("    ", depth), label)
	}

	pattern := *search
	if pattern == "" && *text == "" {
		pattern = prompt(in, "Enter a pattern to search for: ")
	}
	if pattern != "" {
		runSearch(tree, pattern)
	}

	pattern = *find
	if pattern == "" && *text == "" {
		pattern = prompt(in, "Enter a pattern to locate: ")
	}
	if pattern != "" {
		runFind(tree, pattern)
	}

	lrs, err := tree.LongestRepeatedSubstring()
	if err != nil {
		fatal(err)
	}
	if lrs == "" {
		fmt.Println("No repeated substrings.")
	} else {
		fmt.Printf("Longest repeated substring: %s\n", lrs)
	}

	sus, err := tree.ShortestUniqueSubstring()
	if err != nil {
		fatal(err)
	}
	if sus == "" {
		fmt.Println("No unique substrings.")
	} else {
		fmt.Printf("Shortest unique substring: %s\n", sus)
	}
}

func runSearch(tree *suffixtree.Tree, raw string) {
	pattern, err := suffixtree.Prepare(raw)
	if err != nil {
		fatal(err)
	}
	found, err := tree.Search(pattern)
	if err != nil {
		fatal(err)
	}
	if found {
		fmt.Printf("%q occurs in the text.\n", pattern)
	} else {
		fmt.Printf("%q does not occur in the text.\n", pattern)
	}
}

func runFind(tree *suffixtree.Tree, raw string) {
	pattern, err := suffixtree.Prepare(raw)
	if err != nil {
		fatal(err)
	}
	matches, err := tree.FindAllMatches(pattern)
	if err != nil {
		fatal(err)
	}
	if len(matches) == 0 {
		fmt.Printf("%q was not found in the text.\n", pattern)
		return
	}
	fmt.Printf("%q occurs at positions:", pattern)
	for _, pos := range matches {
		fmt.Printf(" %d", pos)
	}
	fmt.Println()
}

func prompt(in *bufio.Scanner, msg string) string {
	fmt.Print(msg)
	if !in.Scan() {
		fatal(fmt.Errorf("no input"))
	}
	return in.Text()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "suffixdemo:", err)
	os.Exit(1)
}
