// Command commafree drives the commafree search from the command line.
// This layer is explicitly outside the core (spec.md §6): it is ordinary
// flag parsing and line-oriented I/O, in the unadorned style the teacher's
// own main.go and the pack's sentra-language-sentra/cmd/sentra/main.go
// both use — no command-shell framework, just the standard library.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wallberg/commafree/commafree"
	"github.com/wallberg/commafree/dashboard"
)

func main() {
	m := flag.Int("m", 2, "alphabet size, 2..7")
	g := flag.Int("g", 0, "goal code size; defaults to the maximum L for the given m")
	limit := flag.Int("limit", 0, "stop after this many codes (0 = unlimited)")
	trace := flag.Bool("trace", false, "log each backtracking transition to stderr")
	showDashboard := flag.Bool("dashboard", false, "open a Fyne window visualizing the search instead of streaming to stdout")
	flag.Parse()

	if *g == 0 {
		l := ((*m)*(*m)*(*m)*(*m) - (*m)*(*m)) / 4
		*g = l
	}

	if *showDashboard {
		if err := dashboard.Run(*m, *g); err != nil {
			log.Fatalf("commafree: %v", err)
		}
		return
	}

	s, err := commafree.NewSearch(*m, *g)
	if err != nil {
		log.Fatalf("commafree: %v", err)
	}

	if *trace {
		s.AttachTracer(commafree.NewStdTracer(log.New(os.Stderr, "commafree: ", log.Ltime)))
	}

	count := 0
	for {
		code, ok, err := s.Next()
		if err != nil {
			log.Fatalf("commafree: %v", err)
		}
		if !ok {
			break
		}

		fmt.Println(formatCode(code))

		count++
		if *limit > 0 && count >= *limit {
			break
		}
	}
}

func formatCode(code commafree.Code) string {
	words := make([]string, len(code))
	for i, w := range code {
		var b strings.Builder
		for _, d := range w {
			fmt.Fprintf(&b, "%d", d)
		}
		words[i] = b.String()
	}
	return strings.Join(words, ",")
}
