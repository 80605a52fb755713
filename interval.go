package amber

import (
	"encoding/json"
	"fmt"

	"github.com/go-openapi/strfmt"
)

// Resolution is the length of a price or renewables interval in minutes.
type Resolution int

const (
	// ResolutionFiveMinute selects 5-minute intervals.
	ResolutionFiveMinute Resolution = 5
	// ResolutionThirtyMinute selects 30-minute intervals.
	ResolutionThirtyMinute Resolution = 30
)

// SpikeStatus indicates whether an interval will potentially spike, or is
// currently in a spike state.
type SpikeStatus string

const (
	SpikeStatusNone      SpikeStatus = "none"
	SpikeStatusPotential SpikeStatus = "potential"
	SpikeStatusSpike     SpikeStatus = "spike"
)

// PriceDescriptor gives an indication of how cheap an interval's price is
// in relation to the average VMO and DMO.
type PriceDescriptor string

const (
	// PriceDescriptorNegative is no longer sent by the API.
	//
	// Deprecated: replaced by PriceDescriptorExtremelyLow.
	PriceDescriptorNegative PriceDescriptor = "negative"

	PriceDescriptorExtremelyLow PriceDescriptor = "extremelyLow"
	PriceDescriptorVeryLow      PriceDescriptor = "veryLow"
	PriceDescriptorLow          PriceDescriptor = "low"
	PriceDescriptorNeutral      PriceDescriptor = "neutral"
	PriceDescriptorHigh         PriceDescriptor = "high"
	PriceDescriptorSpike        PriceDescriptor = "spike"
)

// Range is a band of possible NEM spot prices (c/kWh) returned when prices
// are particularly volatile.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AdvancedPrice is Amber's advanced forecast: a confidence band indicating
// where the price is expected to land for an interval. All values include
// network and market fees (c/kWh).
type AdvancedPrice struct {
	// Low is the lower bound of the prediction band.
	Low float64 `json:"low"`
	// Predicted is the single-number forecast price.
	Predicted float64 `json:"predicted"`
	// High is the upper bound of the prediction band.
	High float64 `json:"high"`
}

// BaseInterval holds the fields common to all interval variants.
type BaseInterval struct {
	// Duration of the interval in minutes.
	Duration int `json:"duration"`
	// SpotPerKwh is the NEM spot price (c/kWh) - what generators are
	// paid, and what drives the variable component of PerKwh.
	SpotPerKwh float64 `json:"spotPerKwh"`
	// PerKwh is the price you pay or are paid (c/kWh), including GST.
	PerKwh float64 `json:"perKwh"`
	// Date the interval belongs to, in NEM time. May differ from the
	// date component of NemTime: the last interval of the day ends at
	// 12:00 the following day.
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
	// ChannelType the interval applies to.
	ChannelType ChannelType `json:"channelType"`
	// TariffInformation, when the site's tariff affects this interval.
	TariffInformation *TariffInformation `json:"tariffInformation,omitempty"`
	// SpikeStatus of the interval.
	SpikeStatus SpikeStatus `json:"spikeStatus"`
	// Descriptor categorises the price level.
	Descriptor PriceDescriptor `json:"descriptor"`
}

// Interval is a fixed-duration slot of electricity pricing data. It is a
// closed set: the concrete type is *ActualInterval, *ForecastInterval or
// *CurrentInterval, chosen by the payload's "type" discriminator.
type Interval interface {
	// Base returns the fields shared by all interval variants.
	Base() *BaseInterval

	isInterval()
}

// ActualInterval is confirmed historical pricing data.
type ActualInterval struct {
	BaseInterval
}

// Base returns the fields shared by all interval variants.
func (i *ActualInterval) Base() *BaseInterval { return &i.BaseInterval }

func (*ActualInterval) isInterval() {}

// ForecastInterval is predicted future pricing data.
type ForecastInterval struct {
	BaseInterval
	// Range of possible prices, when volatile.
	Range *Range `json:"range,omitempty"`
	// AdvancedPrice prediction band, when available.
	AdvancedPrice *AdvancedPrice `json:"advancedPrice,omitempty"`
}

// Base returns the fields shared by all interval variants.
func (i *ForecastInterval) Base() *BaseInterval { return &i.BaseInterval }

func (*ForecastInterval) isInterval() {}

// CurrentInterval is real-time pricing data for the in-progress interval.
type CurrentInterval struct {
	BaseInterval
	// Range of possible prices, when volatile.
	Range *Range `json:"range,omitempty"`
	// Estimate is true while the price is an estimate, false once it has
	// been locked in.
	Estimate bool `json:"estimate"`
	// AdvancedPrice prediction band, when available.
	AdvancedPrice *AdvancedPrice `json:"advancedPrice,omitempty"`
}

// Base returns the fields shared by all interval variants.
func (i *CurrentInterval) Base() *BaseInterval { return &i.BaseInterval }

func (*CurrentInterval) isInterval() {}

// Intervals decodes a JSON array of tagged interval payloads, dispatching
// on each element's "type" field. Unknown discriminators are a hard decode
// error rather than a silently-ignored default.
type Intervals []Interval

// UnmarshalJSON implements json.Unmarshaler.
func (is *Intervals) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Intervals, 0, len(raw))
	for _, msg := range raw {
		interval, err := unmarshalInterval(msg)
		if err != nil {
			return err
		}
		out = append(out, interval)
	}
	*is = out
	return nil
}

func unmarshalInterval(data []byte) (Interval, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case "ActualInterval":
		var v ActualInterval
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "ForecastInterval":
		var v ForecastInterval
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "CurrentInterval":
		var v CurrentInterval
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, fmt.Errorf("unknown interval type %q", probe.Type)
	}
}
