package amber

import (
	"context"

	"github.com/go-openapi/strfmt"
)

// ChannelType identifies one of the three metering streams on a site.
type ChannelType string

const (
	// ChannelTypeGeneral provides continuous power - all of your
	// appliances and lights are attached to this channel.
	ChannelTypeGeneral ChannelType = "general"
	// ChannelTypeControlledLoad is only on for a limited time during the
	// day, usually when load on the network is low or generation is high.
	ChannelTypeControlledLoad ChannelType = "controlledLoad"
	// ChannelTypeFeedIn sends power back to the grid - present when the
	// site has solar or batteries.
	ChannelTypeFeedIn ChannelType = "feedIn"
)

// Channel describes a power meter channel.
type Channel struct {
	// Identifier of the channel.
	Identifier string `json:"identifier"`
	// Type of the channel.
	Type ChannelType `json:"type"`
	// Tariff is the tariff code of the channel.
	Tariff string `json:"tariff"`
}

// SiteStatus is the lifecycle state of a site.
type SiteStatus string

const (
	// SiteStatusPending sites are still in the process of being
	// transferred.
	SiteStatusPending SiteStatus = "pending"
	// SiteStatusActive sites are actively supplied with electricity.
	SiteStatusActive SiteStatus = "active"
	// SiteStatusClosed sites are old sites that are no longer supplied.
	SiteStatusClosed SiteStatus = "closed"
)

// Site is an electricity site linked to the account.
type Site struct {
	// ID is the unique site identifier.
	ID string `json:"id"`
	// NMI is the National Metering Identifier for the site.
	NMI string `json:"nmi"`
	// Channels readable from the site's meter.
	Channels []Channel `json:"channels"`
	// Network is the name of the site's distribution network.
	Network string `json:"network"`
	// Status of the site.
	Status SiteStatus `json:"status"`
	// ActiveFrom is the date the site became active. In the future for
	// pending sites; nil when unknown.
	ActiveFrom *strfmt.Date `json:"activeFrom,omitempty"`
	// ClosedOn is the date the site closed. Nil while the site is
	// pending or active.
	ClosedOn *strfmt.Date `json:"closedOn,omitempty"`
	// IntervalLength is the billing interval in minutes: 5 or 30.
	IntervalLength int `json:"intervalLength"`
}

// Sites returns all sites linked to the account. Requires an API key.
func (c *Client) Sites(ctx context.Context) ([]Site, error) {
	var sites []Site
	if err := c.api.Get(ctx, "sites", nil, &sites); err != nil {
		return nil, wrapError(err)
	}
	return sites, nil
}
