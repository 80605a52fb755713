// Package amber provides a Go client for the Amber Electric public API,
// covering sites, price intervals, usage and grid renewables data.
//
// Requests that hit the API rate limit (HTTP 429) are retried
// automatically, waiting the time reported in the RateLimit-Reset header
// (60 seconds when absent) up to a configurable budget.
//
// Basic usage:
//
//	client, err := amber.New(amber.WithAPIKey(os.Getenv("AMBER_API_KEY")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sites, err := client.Sites(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	prices, err := client.CurrentPrices(ctx, sites[0].ID, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, interval := range prices {
//	    fmt.Printf("%.2fc/kWh\n", interval.Base().PerKwh)
//	}
//
// The renewables endpoint is open and works without an API key:
//
//	client, _ := amber.New()
//	renewables, err := client.CurrentRenewables(ctx, amber.StateVIC, nil)
package amber
