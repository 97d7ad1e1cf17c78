package rank

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Group is one observer's ranking of their own subset of the trial items.
// Ranks are positions, 1 = best.
type Group struct {
	Observer string
	Ranks    map[string]float64
}

// Grouped is a collection of per-observer rankings over subsets of a shared
// item set.
type Grouped struct {
	items  []string
	groups []Group
}

// NewGrouped builds a grouped ranking collection. Every ranked item must
// belong to the declared item set.
func NewGrouped(items []string, groups []Group) (*Grouped, error) {
	if len(items) == 0 || len(groups) == 0 {
		return nil, fmt.Errorf("%w: empty grouped ranking", ErrInvalidInput)
	}

	col := make(map[string]bool, len(items))
	for _, item := range items {
		col[item] = true
	}
	for i, g := range groups {
		for item := range g.Ranks {
			if !col[item] {
				return nil, fmt.Errorf("%w: group %d (%s) ranks unknown item %q", ErrInvalidInput, i, g.Observer, item)
			}
		}
	}

	return &Grouped{
		items:  append([]string(nil), items...),
		groups: append([]Group(nil), groups...),
	}, nil
}

// Items returns the shared item set.
func (g *Grouped) Items() []string {
	return append([]string(nil), g.items...)
}

// Flatten materializes the grouped rankings as a plain rank matrix, one row
// per group, with missing cells for items a group did not rank.
func (g *Grouped) Flatten() (*Matrix, error) {
	rows := make([][]float64, len(g.groups))
	for i, grp := range g.groups {
		row := make([]float64, len(g.items))
		for j, item := range g.items {
			if r, ok := grp.Ranks[item]; ok {
				row[j] = r
			} else {
				row[j] = Missing()
			}
		}
		rows[i] = row
	}
	return NewMatrix(g.items, rows)
}

// RankRows flattens the grouping and returns the dense representation.
func (g *Grouped) RankRows() (*mat.Dense, error) {
	m, err := g.Flatten()
	if err != nil {
		return nil, err
	}
	return m.RankRows()
}

// Comparison is one pairwise contest between two items.
type Comparison struct {
	Observer string `json:"observer"`
	Winner   string `json:"winner"`
	Loser    string `json:"loser"`
}

// Paired is a pairwise-comparison encoding of rankings.
type Paired struct {
	items       []string
	comparisons []Comparison
}

// NewPaired builds a pairwise-comparison collection over the declared item
// set.
func NewPaired(items []string, comparisons []Comparison) (*Paired, error) {
	if len(items) == 0 || len(comparisons) == 0 {
		return nil, fmt.Errorf("%w: empty pairwise comparisons", ErrInvalidInput)
	}

	col := make(map[string]bool, len(items))
	for _, item := range items {
		col[item] = true
	}
	for i, c := range comparisons {
		if !col[c.Winner] || !col[c.Loser] {
			return nil, fmt.Errorf("%w: comparison %d references unknown item", ErrInvalidInput, i)
		}
		if c.Winner == c.Loser {
			return nil, fmt.Errorf("%w: comparison %d pits %q against itself", ErrInvalidInput, i, c.Winner)
		}
	}

	return &Paired{
		items:       append([]string(nil), items...),
		comparisons: append([]Comparison(nil), comparisons...),
	}, nil
}

// ToGrouped converts each pairwise contest into a two-item ranking, winner
// first. Both encodings represent the same comparisons.
func (p *Paired) ToGrouped() (*Grouped, error) {
	groups := make([]Group, len(p.comparisons))
	for i, c := range p.comparisons {
		groups[i] = Group{
			Observer: c.Observer,
			Ranks:    map[string]float64{c.Winner: 1, c.Loser: 2},
		}
	}
	return NewGrouped(p.items, groups)
}

// RankRows converts to grouped rankings, flattens, and returns the dense
// representation.
func (p *Paired) RankRows() (*mat.Dense, error) {
	g, err := p.ToGrouped()
	if err != nil {
		return nil, err
	}
	return g.RankRows()
}
