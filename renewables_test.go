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

const renewableFixture = `[
	{
		"type": "ActualRenewable",
		"duration": 5,
		"date": "2021-05-05",
		"nemTime": "2021-05-06T12:30:00+10:00",
		"startTime": "2021-05-05T02:00:01Z",
		"endTime": "2021-05-05T02:30:00Z",
		"renewables": 45,
		"descriptor": "best"
	},
	{
		"type": "CurrentRenewable",
		"duration": 5,
		"date": "2021-05-05",
		"nemTime": "2021-05-06T12:30:00+10:00",
		"startTime": "2021-05-05T02:30:01Z",
		"endTime": "2021-05-05T03:00:00Z",
		"renewables": 51.5,
		"descriptor": "great"
	},
	{
		"type": "ForecastRenewable",
		"duration": 5,
		"date": "2021-05-05",
		"nemTime": "2021-05-06T13:00:00+10:00",
		"startTime": "2021-05-05T03:00:01Z",
		"endTime": "2021-05-05T03:30:00Z",
		"renewables": 32,
		"descriptor": "ok"
	}
]`

func TestRenewables_UnmarshalVariants(t *testing.T) {
	var renewables Renewables
	require.NoError(t, json.Unmarshal([]byte(renewableFixture), &renewables))
	require.Len(t, renewables, 3)

	actual, ok := renewables[0].(*ActualRenewable)
	require.True(t, ok, "expected *ActualRenewable at index 0")
	assert.Equal(t, 5, actual.Duration)
	assert.Equal(t, "2021-05-05", actual.Date.String())
	assert.InDelta(t, 45, actual.Renewables, 1e-9)
	assert.Equal(t, RenewableDescriptorBest, actual.Descriptor)

	current, ok := renewables[1].(*CurrentRenewable)
	require.True(t, ok, "expected *CurrentRenewable at index 1")
	assert.Equal(t, RenewableDescriptorGreat, current.Descriptor)

	forecast, ok := renewables[2].(*ForecastRenewable)
	require.True(t, ok, "expected *ForecastRenewable at index 2")
	assert.Equal(t, RenewableDescriptorOk, forecast.Descriptor)

	for _, renewable := range renewables {
		base := renewable.Base()
		assert.True(t, time.Time(base.StartTime).Before(time.Time(base.EndTime)))
		assert.GreaterOrEqual(t, base.Renewables, 0.0)
		assert.LessOrEqual(t, base.Renewables, 100.0)
	}
}

func TestRenewables_UnknownTypeFails(t *testing.T) {
	payload := `[{"type": "ImaginaryRenewable", "duration": 5}]`

	var renewables Renewables
	err := json.Unmarshal([]byte(payload), &renewables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ImaginaryRenewable")
}

func TestCurrentRenewablesParams_Query(t *testing.T) {
	tests := []struct {
		name   string
		params *CurrentRenewablesParams
		want   map[string]string
	}{
		{
			name:   "nil params",
			params: nil,
			want:   map[string]string{},
		},
		{
			name:   "all absent",
			params: &CurrentRenewablesParams{},
			want:   map[string]string{},
		},
		{
			name:   "previous and next only",
			params: &CurrentRenewablesParams{Previous: 6, Next: 3},
			want:   map[string]string{"previous": "6", "next": "3"},
		},
		{
			name:   "with resolution",
			params: &CurrentRenewablesParams{Next: 8, Resolution: ResolutionFiveMinute},
			want:   map[string]string{"next": "8", "resolution": "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.params.query()
			assert.Len(t, q, len(tt.want))
			for key, value := range tt.want {
				assert.Equal(t, value, q.Get(key))
			}
		})
	}
}

func TestClient_CurrentRenewables(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	var gotPath, gotQuery string
	var gotAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, gotAuth = r.Header["Authorization"]
		w.Write([]byte(renewableFixture))
	}))
	defer server.Close()

	// No API key: the renewables endpoint is anonymous-accessible.
	client, err := New(WithBaseURL(server.URL))
	require.NoError(t, err)

	renewables, err := client.CurrentRenewables(context.Background(), StateVIC, &CurrentRenewablesParams{
		Previous:   6,
		Next:       3,
		Resolution: ResolutionFiveMinute,
	})
	require.NoError(t, err)

	assert.Equal(t, "/state/vic/renewables/current", gotPath)
	assert.Equal(t, "next=3&previous=6&resolution=5", gotQuery)
	assert.False(t, gotAuth, "anonymous call must not send Authorization")
	require.Len(t, renewables, 3)
	assert.IsType(t, &ActualRenewable{}, renewables[0])
}
