package amber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usageFixture = `[
	{
		"type": "Usage",
		"duration": 30,
		"spotPerKwh": 6.12,
		"perKwh": 24.33,
		"date": "2021-05-05",
		"nemTime": "2021-05-06T12:30:00+10:00",
		"startTime": "2021-05-05T02:00:01Z",
		"endTime": "2021-05-05T02:30:00Z",
		"renewables": 45,
		"channelType": "general",
		"tariffInformation": null,
		"spikeStatus": "none",
		"descriptor": "neutral",
		"channelIdentifier": "E1",
		"kwh": 0.52,
		"quality": "estimated",
		"cost": 12.65
	},
	{
		"type": "Usage",
		"duration": 30,
		"spotPerKwh": 6.12,
		"perKwh": -8.5,
		"date": "2021-05-05",
		"nemTime": "2021-05-06T13:00:00+10:00",
		"startTime": "2021-05-05T02:30:01Z",
		"endTime": "2021-05-05T03:00:00Z",
		"renewables": 45,
		"channelType": "feedIn",
		"tariffInformation": null,
		"spikeStatus": "none",
		"descriptor": "neutral",
		"channelIdentifier": "B1",
		"kwh": -1.2,
		"quality": "billable",
		"cost": -10.2
	}
]`

func TestUsage_Unmarshal(t *testing.T) {
	var usage []Usage
	require.NoError(t, json.Unmarshal([]byte(usageFixture), &usage))
	require.Len(t, usage, 2)

	consumed := usage[0]
	assert.Equal(t, "E1", consumed.ChannelIdentifier)
	assert.InDelta(t, 0.52, consumed.Kwh, 1e-9)
	assert.Equal(t, UsageQualityEstimated, consumed.Quality)
	assert.InDelta(t, 12.65, consumed.Cost, 1e-9)
	assert.Equal(t, ChannelTypeGeneral, consumed.ChannelType)

	exported := usage[1]
	assert.Equal(t, ChannelTypeFeedIn, exported.ChannelType)
	assert.Negative(t, exported.Kwh, "generation must decode as negative kWh")
	assert.Equal(t, UsageQualityBillable, exported.Quality)

	for _, record := range usage {
		assert.True(t, time.Time(record.StartTime).Before(time.Time(record.EndTime)))
	}
}

func TestClient_Usage(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	var gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(usageFixture))
	}))
	defer server.Close()

	client, err := New(WithBaseURL(server.URL), WithAPIKey("psk_test"))
	require.NoError(t, err)

	usage, err := client.Usage(context.Background(), "01SITE",
		civilDate(t, "2021-05-01"), civilDate(t, "2021-05-03"))
	require.NoError(t, err)

	assert.Equal(t, "/sites/01SITE/usage", gotPath)
	require.Len(t, gotQuery, 2)
	assert.Equal(t, []string{"2021-05-01"}, gotQuery["startDate"])
	assert.Equal(t, []string{"2021-05-03"}, gotQuery["endDate"])
	require.Len(t, usage, 2)
}
