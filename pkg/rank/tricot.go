package rank

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// TricotObservation is one participant's triadic comparison result: three
// items from the trial set, with the best and worst of the three named.
type TricotObservation struct {
	Observer string    `json:"observer"`
	Items    [3]string `json:"items"`
	Best     string    `json:"best"`
	Worst    string    `json:"worst"`
}

// FromTricot builds a rank matrix from tricot observations over the declared
// item set. Each observation becomes one row: best item rank 1, worst rank 3,
// the remaining triad member rank 2, every other item missing.
func FromTricot(items []string, obs []TricotObservation) (*Matrix, error) {
	if len(items) == 0 || len(obs) == 0 {
		return nil, fmt.Errorf("%w: empty tricot input", ErrInvalidInput)
	}

	col := make(map[string]int, len(items))
	for i, item := range items {
		if _, dup := col[item]; dup {
			return nil, fmt.Errorf("%w: duplicate item %q", ErrInvalidInput, item)
		}
		col[item] = i
	}

	rows := make([][]float64, len(obs))
	for i, o := range obs {
		if err := o.validate(col); err != nil {
			return nil, fmt.Errorf("observation %d (%s): %w", i, o.Observer, err)
		}

		row := make([]float64, len(items))
		for j := range row {
			row[j] = Missing()
		}
		for _, item := range o.Items {
			switch item {
			case o.Best:
				row[col[item]] = 1
			case o.Worst:
				row[col[item]] = 3
			default:
				row[col[item]] = 2
			}
		}
		rows[i] = row
	}

	log.Debug().Msgf("Built tricot rank matrix: %d observations over %d items", len(obs), len(items))
	return NewMatrix(items, rows)
}

func (o TricotObservation) validate(col map[string]int) error {
	seen := make(map[string]bool, 3)
	for _, item := range o.Items {
		if _, ok := col[item]; !ok {
			return fmt.Errorf("%w: item %q not in trial item set", ErrInvalidObservation, item)
		}
		if seen[item] {
			return fmt.Errorf("%w: duplicate item %q in triad", ErrInvalidObservation, item)
		}
		seen[item] = true
	}
	if o.Best == o.Worst {
		return fmt.Errorf("%w: best and worst are both %q", ErrInvalidObservation, o.Best)
	}
	if !seen[o.Best] {
		return fmt.Errorf("%w: best item %q not in triad", ErrInvalidObservation, o.Best)
	}
	if !seen[o.Worst] {
		return fmt.Errorf("%w: worst item %q not in triad", ErrInvalidObservation, o.Worst)
	}
	return nil
}
