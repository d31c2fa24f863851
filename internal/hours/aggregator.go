package hours

import (
	"context"
	"sort"
	"sync"

	"stagevault/internal/config"
	"stagevault/internal/model"
)

// Aggregator fans out to every configured person's source concurrently and
// reduces the results into a ranked team view. One slow or failed source never
// blocks or fails the others.
type Aggregator struct {
	source Source
	roster []config.Person

	mu     sync.Mutex
	gen    uint64
	latest *model.TeamAggregate
}

// NewAggregator creates an aggregator over the configured roster.
func NewAggregator(source Source, roster []config.Person) *Aggregator {
	return &Aggregator{source: source, roster: roster}
}

// AggregateTeam runs one aggregation pass. The result roster always equals
// the configured roster, regardless of per-source failure.
func (a *Aggregator) AggregateTeam(ctx context.Context, rng model.DateRange) *model.TeamAggregate {
	rows := make([]model.PersonAggregate, len(a.roster))

	var wg sync.WaitGroup
	for i, person := range a.roster {
		wg.Add(1)
		go func(i int, person config.Person) {
			defer wg.Done()
			rows[i] = a.aggregatePerson(ctx, person, rng)
		}(i, person)
	}
	wg.Wait()

	// Descending by total; ties keep roster order. Failed people carry zero
	// totals and fall to the bottom on their own.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalHours > rows[j].TotalHours
	})

	result := &model.TeamAggregate{Range: rng, Rows: rows}
	for _, row := range rows {
		if row.Error != "" {
			result.Failures = append(result.Failures, row.PersonID)
		}
	}
	return result
}

func (a *Aggregator) aggregatePerson(ctx context.Context, person config.Person, rng model.DateRange) model.PersonAggregate {
	agg := model.PersonAggregate{PersonID: person.ID, Label: person.Label}

	raw, err := a.source.Fetch(ctx, person.ID, rng)
	if err != nil {
		agg.Error = err.Error()
		return agg
	}

	for _, record := range NormalizeRows(raw) {
		agg.TotalHours += record.TotalHours
		// The two matches are independent; a status can satisfy both.
		off, worked := isOff(record.Status), isWorked(record.Status)
		if off {
			agg.DaysOff++
		}
		if worked {
			agg.DaysWorked++
		}
		if !off && !worked {
			agg.Unclassified++
		}
	}
	return agg
}

// Refresh runs an aggregation pass and commits it as the latest result unless
// a newer pass started while this one was in flight. A stale run's result is
// returned to its caller but never overwrites newer state.
func (a *Aggregator) Refresh(ctx context.Context, rng model.DateRange) *model.TeamAggregate {
	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	result := a.AggregateTeam(ctx, rng)

	a.mu.Lock()
	if gen == a.gen {
		a.latest = result
	}
	a.mu.Unlock()
	return result
}

// Latest returns the most recently committed team aggregate, or nil if no run
// has completed yet.
func (a *Aggregator) Latest() *model.TeamAggregate {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.latest
}

// Roster returns the configured roster.
func (a *Aggregator) Roster() []config.Person {
	return a.roster
}
