package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// EventKind tags the concrete type behind an Event.
type EventKind string

const (
	EventRatingCombined   EventKind = "rating_combined"
	EventOffsetApplied    EventKind = "offset_applied"
	EventAccountProjected EventKind = "account_projected"
	EventDrawdownDepleted EventKind = "drawdown_depleted"
	EventBudgetShortfall  EventKind = "budget_shortfall"
)

// Event is a notable step recorded while a scenario runs. Each kind has its
// own concrete payload type.
type Event interface {
	Kind() EventKind
}

// RatingCombinedEvent is recorded once the combined rating is known.
type RatingCombinedEvent struct {
	Ratings  []int `json:"ratings"`
	Combined int   `json:"combined"`
}

func (RatingCombinedEvent) Kind() EventKind { return EventRatingCombined }

// OffsetAppliedEvent is recorded when retired pay is waived for VA compensation.
type OffsetAppliedEvent struct {
	Program  OffsetProgram   `json:"program"`
	Waiver   decimal.Decimal `json:"waiver"`
	Restored decimal.Decimal `json:"restored"`
}

func (OffsetAppliedEvent) Kind() EventKind { return EventOffsetApplied }

// AccountProjectedEvent is recorded after the accumulation phase.
type AccountProjectedEvent struct {
	Years          int             `json:"years"`
	EffectiveRate  decimal.Decimal `json:"effective_rate"`
	NominalBalance decimal.Decimal `json:"nominal_balance"`
	RealBalance    decimal.Decimal `json:"real_balance"`
}

func (AccountProjectedEvent) Kind() EventKind { return EventAccountProjected }

// DrawdownDepletedEvent is recorded when withdrawals exhaust the account.
type DrawdownDepletedEvent struct {
	Strategy string `json:"strategy"`
	Year     int    `json:"year"`
}

func (DrawdownDepletedEvent) Kind() EventKind { return EventDrawdownDepleted }

// BudgetShortfallEvent is recorded when savings goals are not met.
type BudgetShortfallEvent struct {
	Shortfall decimal.Decimal `json:"shortfall"`
}

func (BudgetShortfallEvent) Kind() EventKind { return EventBudgetShortfall }

// Events is an ordered event log. It encodes each entry as {"kind", "data"}.
type Events []Event

type eventEnvelope struct {
	Kind EventKind       `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON implements json.Marshaler.
func (e Events) MarshalJSON() ([]byte, error) {
	out := make([]eventEnvelope, 0, len(e))
	for _, ev := range e {
		data, err := json.Marshal(ev)
		if err != nil {
			return nil, fmt.Errorf("encoding %s event: %w", ev.Kind(), err)
		}
		out = append(out, eventEnvelope{Kind: ev.Kind(), Data: data})
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Events) UnmarshalJSON(b []byte) error {
	var envelopes []eventEnvelope
	if err := json.Unmarshal(b, &envelopes); err != nil {
		return err
	}
	events := make(Events, 0, len(envelopes))
	for _, env := range envelopes {
		ev, err := decodeEvent(env)
		if err != nil {
			return err
		}
		events = append(events, ev)
	}
	*e = events
	return nil
}

func decodeEvent(env eventEnvelope) (Event, error) {
	switch env.Kind {
	case EventRatingCombined:
		var ev RatingCombinedEvent
		err := json.Unmarshal(env.Data, &ev)
		return ev, err
	case EventOffsetApplied:
		var ev OffsetAppliedEvent
		err := json.Unmarshal(env.Data, &ev)
		return ev, err
	case EventAccountProjected:
		var ev AccountProjectedEvent
		err := json.Unmarshal(env.Data, &ev)
		return ev, err
	case EventDrawdownDepleted:
		var ev DrawdownDepletedEvent
		err := json.Unmarshal(env.Data, &ev)
		return ev, err
	case EventBudgetShortfall:
		var ev BudgetShortfallEvent
		err := json.Unmarshal(env.Data, &ev)
		return ev, err
	default:
		return nil, fmt.Errorf("unknown event kind %q", env.Kind)
	}
}
