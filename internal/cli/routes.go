package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/mzeevi/digra/core"
)

// ErrNoRoutes indicates a route file that parsed but defined no routes.
var ErrNoRoutes = errors.New("cli: route file defines no routes")

// sampleRoutes is the built-in airport network used when no route file is
// supplied: a small mix of chains, a 2-cycle (CDG/SIN), and a 4-cycle
// (SFO/SAN/EYW/LHR).
var sampleRoutes = [][2]string{
	{"DSM", "ORD"}, {"ORD", "BGI"}, {"BGI", "LGA"},
	{"JFK", "LGA"}, {"ICN", "JFK"}, {"HND", "ICN"},
	{"HND", "JFK"}, {"EWR", "HND"}, {"SFO", "DSM"},
	{"SFO", "SAN"}, {"SAN", "EYW"}, {"EYW", "LHR"},
	{"LHR", "SFO"}, {"TLV", "DEL"}, {"DEL", "DOH"},
	{"DEL", "CDG"}, {"CDG", "BUD"}, {"CDG", "SIN"},
	{"SIN", "CDG"},
}

// route is one directed connection in a TOML route file.
type route struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int64  `toml:"weight"` // optional, defaults to core.DefaultWeight
}

// routeFile is the TOML document shape:
//
//	[[route]]
//	from = "TLV"
//	to   = "DEL"
//	weight = 3   # optional
type routeFile struct {
	Routes []route `toml:"route"`
}

// loadGraph builds the working graph: from the TOML file at path when
// non-empty, otherwise from the built-in sample.
func loadGraph(path string) (*core.Graph, error) {
	if path == "" {
		g := core.NewGraph()
		for _, arc := range sampleRoutes {
			g.AddEdge(arc[0], arc[1])
		}

		return g, nil
	}

	var file routeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("cli: decode routes %s: %w", path, err)
	}
	if len(file.Routes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRoutes, path)
	}

	g := core.NewGraph()
	for _, r := range file.Routes {
		if r.Weight != 0 {
			g.AddEdge(r.From, r.To, core.WithWeight(r.Weight))

			continue
		}
		g.AddEdge(r.From, r.To)
	}

	return g, nil
}
