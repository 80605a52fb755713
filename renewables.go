package amber

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-openapi/strfmt"
)

// State is an Australian state for which renewables data is published.
type State string

const (
	StateNSW State = "nsw"
	StateVIC State = "vic"
	StateQLD State = "qld"
	StateSA  State = "sa"
)

// RenewableDescriptor gives an indication of how green the grid is, from
// best down to worst.
type RenewableDescriptor string

const (
	RenewableDescriptorBest     RenewableDescriptor = "best"
	RenewableDescriptorGreat    RenewableDescriptor = "great"
	RenewableDescriptorOk       RenewableDescriptor = "ok"
	RenewableDescriptorNotGreat RenewableDescriptor = "notGreat"
	RenewableDescriptorWorst    RenewableDescriptor = "worst"
)

// BaseRenewable holds the fields common to all renewable variants.
type BaseRenewable struct {
	// Duration of the interval in minutes.
	Duration int `json:"duration"`
	// Date the interval belongs to, in NEM time.
	Date strfmt.Date `json:"date"`
	// NemTime is the market settlement timestamp at the end of the
	// interval (UTC+10).
	NemTime strfmt.DateTime `json:"nemTime"`
	// StartTime of the interval in UTC.
	StartTime strfmt.DateTime `json:"startTime"`
	// EndTime of the interval in UTC. Always after StartTime.
	EndTime strfmt.DateTime `json:"endTime"`
	// Renewables is the percentage of renewables in the grid, 0-100.
	Renewables float64 `json:"renewables"`
	// Descriptor categorises how green the grid is.
	Descriptor RenewableDescriptor `json:"descriptor"`
}

// Renewable is a fixed-duration slot of grid renewables data. It is a
// closed set: the concrete type is *ActualRenewable, *ForecastRenewable or
// *CurrentRenewable, chosen by the payload's "type" discriminator.
type Renewable interface {
	// Base returns the fields shared by all renewable variants.
	Base() *BaseRenewable

	isRenewable()
}

// ActualRenewable is confirmed historical renewables data.
type ActualRenewable struct {
	BaseRenewable
}

// Base returns the fields shared by all renewable variants.
func (r *ActualRenewable) Base() *BaseRenewable { return &r.BaseRenewable }

func (*ActualRenewable) isRenewable() {}

// ForecastRenewable is predicted future renewables data.
type ForecastRenewable struct {
	BaseRenewable
}

// Base returns the fields shared by all renewable variants.
func (r *ForecastRenewable) Base() *BaseRenewable { return &r.BaseRenewable }

func (*ForecastRenewable) isRenewable() {}

// CurrentRenewable is real-time renewables data.
type CurrentRenewable struct {
	BaseRenewable
}

// Base returns the fields shared by all renewable variants.
func (r *CurrentRenewable) Base() *BaseRenewable { return &r.BaseRenewable }

func (*CurrentRenewable) isRenewable() {}

// Renewables decodes a JSON array of tagged renewable payloads,
// dispatching on each element's "type" field. Unknown discriminators are a
// hard decode error.
type Renewables []Renewable

// UnmarshalJSON implements json.Unmarshaler.
func (rs *Renewables) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Renewables, 0, len(raw))
	for _, msg := range raw {
		renewable, err := unmarshalRenewable(msg)
		if err != nil {
			return err
		}
		out = append(out, renewable)
	}
	*rs = out
	return nil
}

func unmarshalRenewable(data []byte) (Renewable, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case "ActualRenewable":
		var v ActualRenewable
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "ForecastRenewable":
		var v ForecastRenewable
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "CurrentRenewable":
		var v CurrentRenewable
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, fmt.Errorf("unknown renewable type %q", probe.Type)
	}
}

// CurrentRenewablesParams are the optional parameters for
// Client.CurrentRenewables. Zero values are omitted from the request.
type CurrentRenewablesParams struct {
	// Previous is the number of historical intervals to include.
	Previous int
	// Next is the number of forecast intervals to include.
	Next int
	// Resolution of the returned intervals. Defaults to 30 minutes.
	Resolution Resolution
}

func (p *CurrentRenewablesParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Previous > 0 {
		q.Set("previous", strconv.Itoa(p.Previous))
	}
	if p.Next > 0 {
		q.Set("next", strconv.Itoa(p.Next))
	}
	if p.Resolution != 0 {
		q.Set("resolution", strconv.Itoa(int(p.Resolution)))
	}
	return q
}

// CurrentRenewables returns the current percentage of renewables in the
// grid for a state, optionally with surrounding historical and forecast
// intervals. params may be nil.
//
// This endpoint is open: it works without an API key.
//
// Entries are returned in chronological order, actual then current then
// forecast, exactly as the API sends them.
func (c *Client) CurrentRenewables(ctx context.Context, state State, params *CurrentRenewablesParams) ([]Renewable, error) {
	path := fmt.Sprintf("state/%s/renewables/current", url.PathEscape(string(state)))
	var renewables Renewables
	if err := c.api.Get(ctx, path, params.query(), &renewables); err != nil {
		return nil, wrapError(err)
	}
	return renewables, nil
}
