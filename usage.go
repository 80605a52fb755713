package amber

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-openapi/strfmt"
)

// UsageQuality indicates how reliable a usage reading is.
type UsageQuality string

const (
	// UsageQualityEstimated readings were estimated by the metering
	// company and may be revised.
	UsageQualityEstimated UsageQuality = "estimated"
	// UsageQualityBillable readings are actual billable data.
	UsageQualityBillable UsageQuality = "billable"
)

// Usage is consumption or generation data for a single interval on a
// single channel.
type Usage struct {
	BaseInterval
	// ChannelIdentifier is the meter channel the reading belongs to.
	ChannelIdentifier string `json:"channelIdentifier"`
	// Kwh consumed or generated. Generation is negative.
	Kwh float64 `json:"kwh"`
	// Quality of the reading.
	Quality UsageQuality `json:"quality"`
	// Cost of the consumption or generation for this interval,
	// including GST.
	Cost float64 `json:"cost"`
}

// Usage returns all usage data for a site between the start and end dates,
// both required. The range cannot exceed 7 days and the API only holds 90
// days of history. Requires an API key.
//
// Records are returned grouped by channel in the order General, Controlled
// Load, Feed In, chronological within each group.
func (c *Client) Usage(ctx context.Context, siteID string, startDate, endDate strfmt.Date) ([]Usage, error) {
	path := fmt.Sprintf("sites/%s/usage", url.PathEscape(siteID))
	query := url.Values{
		"startDate": []string{startDate.String()},
		"endDate":   []string{endDate.String()},
	}

	var usage []Usage
	if err := c.api.Get(ctx, path, query, &usage); err != nil {
		return nil, wrapError(err)
	}
	return usage, nil
}
