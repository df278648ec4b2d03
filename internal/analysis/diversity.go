package analysis

import (
	"context"
	"strings"

	"github.com/looplab/fsm"
)

// Diversified selection states. Each pass relaxes the uniqueness rule of
// the one before it.
const (
	// passUniqueMakeAndFuel accepts a vehicle whose make and fuel type are
	// both unseen.
	passUniqueMakeAndFuel = "unique_make_and_fuel"
	// passUniqueMake accepts a vehicle whose make is unseen.
	passUniqueMake = "unique_make"
	// passFill accepts anything not yet picked.
	passFill = "fill"
	passDone = "done"
)

// Selection events.
const (
	eventRelax    = "relax"
	eventComplete = "complete"
)

// newSelectionMachine returns the pass machine: relax steps to the next
// pass and complete ends selection from anywhere.
func newSelectionMachine() *fsm.FSM {
	return fsm.NewFSM(
		passUniqueMakeAndFuel,
		fsm.Events{
			{Name: eventRelax, Src: []string{passUniqueMakeAndFuel}, Dst: passUniqueMake},
			{Name: eventRelax, Src: []string{passUniqueMake}, Dst: passFill},
			{Name: eventRelax, Src: []string{passFill}, Dst: passDone},
			{Name: eventComplete, Src: []string{passUniqueMakeAndFuel, passUniqueMake, passFill}, Dst: passDone},
		},
		fsm.Callbacks{},
	)
}

// selector tracks what diversified selection has already picked.
type selector struct {
	makes  map[string]bool
	fuels  map[string]bool
	picked map[int]bool
}

func (s *selector) accepts(pass string, c scored) bool {
	makeSeen := s.makes[strings.ToLower(c.vehicle.Make)]
	switch pass {
	case passUniqueMakeAndFuel:
		return !makeSeen && !s.fuels[c.vehicle.FuelType.String()]
	case passUniqueMake:
		return !makeSeen
	case passFill:
		return true
	default:
		return false
	}
}

func (s *selector) pick(i int, c scored) {
	s.picked[i] = true
	s.makes[strings.ToLower(c.vehicle.Make)] = true
	s.fuels[c.vehicle.FuelType.String()] = true
}

// selectDiverse walks ranked (lowest total first) once per pass, picking at
// most limit vehicles. Order within the result follows the pick order.
func selectDiverse(ranked []scored, limit int) []scored {
	sel := selector{
		makes:  make(map[string]bool),
		fuels:  make(map[string]bool),
		picked: make(map[int]bool),
	}
	out := make([]scored, 0, limit)
	machine := newSelectionMachine()
	ctx := context.Background()

	for !machine.Is(passDone) {
		pass := machine.Current()
		for i, c := range ranked {
			if len(out) >= limit {
				break
			}
			if sel.picked[i] || !sel.accepts(pass, c) {
				continue
			}
			sel.pick(i, c)
			out = append(out, c)
		}

		event := eventRelax
		if len(out) >= limit {
			event = eventComplete
		}
		if err := machine.Event(ctx, event); err != nil {
			break
		}
	}
	return out
}
