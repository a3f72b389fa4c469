package rank_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlrank/edgelist"
	"github.com/katalvlaran/lvlrank/hits"
	"github.com/katalvlaran/lvlrank/rank"
)

// ExampleTop wires the full pipeline: parse an edge list, run HITS, and
// list the strongest authorities by their original labels.
func ExampleTop() {
	const links = `
# who links to whom
portal  news
portal  wiki
portal  blog
news    wiki
news    blog
wiki    news
`
	g, idx, err := edgelist.Read(strings.NewReader(links))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := hits.Solve(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, e := range rank.Top(res.Authority, 2, idx) {
		fmt.Println(e.Label)
	}
	// Output:
	// wiki
	// blog
}
