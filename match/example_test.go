package match_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphfind/graphbackend"
	"github.com/katalvlaran/graphfind/match"
	"github.com/katalvlaran/graphfind/pattern"
)

// ExampleEval finds every actor-movie pair in a small social graph: two
// nodes connected by an edge, where the source is an actor and the
// destination a movie.
func ExampleEval() {
	base := graphbackend.New[string, string](graphbackend.WithDirected(true))
	stefan := base.AddNode("stefan")
	yves := base.AddNode("yves")
	jurassicPark := base.AddNode("jurassic-park")
	holidaySpecial := base.AddNode("holiday-special")

	if _, err := base.AddEdge(stefan, jurassicPark, "plays-in"); err != nil {
		panic(err)
	}
	if _, err := base.AddEdge(yves, holidaySpecial, "plays-in"); err != nil {
		panic(err)
	}

	actors := map[string]bool{"stefan": true, "yves": true}
	movies := map[string]bool{"jurassic-park": true, "holiday-special": true}

	p := pattern.New[string, string]()
	actor := p.AddNode(func(w string) bool { return actors[w] })
	movie := p.AddNode(func(w string) bool { return movies[w] })
	p.AddEdge(actor, movie, func(string) bool { return true })

	results := match.Eval[string, string](p, base)

	pairs := make([]string, 0, len(results))
	for _, r := range results {
		pairs = append(pairs, fmt.Sprintf("%s -> %s", r.NodeWeight(actor), r.NodeWeight(movie)))
	}
	sort.Strings(pairs)
	for _, pair := range pairs {
		fmt.Println(pair)
	}
	// Output:
	// stefan -> jurassic-park
	// yves -> holiday-special
}
