package amber

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
)

// PricesParams are the optional parameters for Client.Prices. Zero values
// are omitted from the request.
type PricesParams struct {
	// StartDate of the price range. Defaults to today.
	StartDate strfmt.Date
	// EndDate of the price range. Defaults to today. The range cannot
	// exceed 7 days.
	EndDate strfmt.Date
	// Resolution of the returned intervals. Defaults to the site's
	// billing interval.
	Resolution Resolution
}

func (p *PricesParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if !time.Time(p.StartDate).IsZero() {
		q.Set("startDate", p.StartDate.String())
	}
	if !time.Time(p.EndDate).IsZero() {
		q.Set("endDate", p.EndDate.String())
	}
	if p.Resolution != 0 {
		q.Set("resolution", strconv.Itoa(int(p.Resolution)))
	}
	return q
}

// Prices returns all price intervals for a site between the start and end
// dates. params may be nil, in which case today's prices are returned at
// the site's billing resolution. Requires an API key.
//
// Intervals are returned grouped by channel in the order General,
// Controlled Load, Feed In, chronological within each group, exactly as
// the API sends them.
func (c *Client) Prices(ctx context.Context, siteID string, params *PricesParams) ([]Interval, error) {
	path := fmt.Sprintf("sites/%s/prices", url.PathEscape(siteID))
	var intervals Intervals
	if err := c.api.Get(ctx, path, params.query(), &intervals); err != nil {
		return nil, wrapError(err)
	}
	return intervals, nil
}

// CurrentPricesParams are the optional parameters for
// Client.CurrentPrices. Zero values are omitted from the request.
type CurrentPricesParams struct {
	// Previous is the number of historical intervals to include. The
	// total number of intervals cannot exceed 2048.
	Previous int
	// Next is the number of forecast intervals to include.
	Next int
	// Resolution of the returned intervals. Defaults to the site's
	// billing interval.
	Resolution Resolution
}

func (p *CurrentPricesParams) query() url.Values {
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

// CurrentPrices returns the current price interval for a site, optionally
// with surrounding historical and forecast intervals. params may be nil.
// Requires an API key.
//
// Intervals are returned grouped by channel in the order General,
// Controlled Load, Feed In; within each group, actual then current then
// forecast.
func (c *Client) CurrentPrices(ctx context.Context, siteID string, params *CurrentPricesParams) ([]Interval, error) {
	path := fmt.Sprintf("sites/%s/prices/current", url.PathEscape(siteID))
	var intervals Intervals
	if err := c.api.Get(ctx, path, params.query(), &intervals); err != nil {
		return nil, wrapError(err)
	}
	return intervals, nil
}
