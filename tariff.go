package amber

// TariffPeriod is the Time of Use period active during an interval.
type TariffPeriod string

const (
	TariffPeriodOffPeak     TariffPeriod = "offPeak"
	TariffPeriodShoulder    TariffPeriod = "shoulder"
	TariffPeriodSolarSponge TariffPeriod = "solarSponge"
	TariffPeriodPeak        TariffPeriod = "peak"
)

// TariffSeason is the Time of Use season active during an interval.
type TariffSeason string

const (
	TariffSeasonDefault        TariffSeason = "default"
	TariffSeasonSummer         TariffSeason = "summer"
	TariffSeasonAutumn         TariffSeason = "autumn"
	TariffSeasonWinter         TariffSeason = "winter"
	TariffSeasonSpring         TariffSeason = "spring"
	TariffSeasonNonSummer      TariffSeason = "nonSummer"
	TariffSeasonHoliday        TariffSeason = "holiday"
	TariffSeasonWeekend        TariffSeason = "weekend"
	TariffSeasonWeekendHoliday TariffSeason = "weekendHoliday"
	TariffSeasonWeekday        TariffSeason = "weekday"
)

// TariffInformation describes how the site's tariff affects an interval.
// Each field is only present when the site is on the corresponding kind of
// tariff.
type TariffInformation struct {
	// Period is the active Time of Use period (time of use tariffs).
	Period *TariffPeriod `json:"period,omitempty"`
	// Season is the active Time of Use season (time of use tariffs).
	Season *TariffSeason `json:"season,omitempty"`
	// Block that is currently active (block tariffs).
	Block *int `json:"block,omitempty"`
	// DemandWindow reports whether the interval falls in the demand
	// window (demand tariffs).
	DemandWindow *bool `json:"demandWindow,omitempty"`
}
