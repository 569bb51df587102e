package feeds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult_SplitsAndSortsStable(t *testing.T) {
	res := NewResult([]Arrival{
		{Route: "A", Direction: Northbound, Minutes: 7},
		{Route: "C", Direction: Northbound, Minutes: 3},
		{Route: "B", Direction: Northbound, Minutes: 7},
		{Route: "A", Direction: Southbound, Minutes: 2},
		{Route: "C", Direction: Northbound, Minutes: 3},
		{Route: "B", Direction: Southbound, Minutes: 2},
	})

	require.Len(t, res.Northbound, 4)
	assert.Equal(t, []string{"C", "C", "A", "B"}, routes(res.Northbound))
	assert.Equal(t, []string{"A", "B"}, routes(res.Southbound))
}

func TestResult_For(t *testing.T) {
	res := NewResult([]Arrival{{Route: "A", Direction: Northbound, Minutes: 1}})

	north, ok := res.For(Northbound)
	assert.True(t, ok)
	assert.Len(t, north, 1)

	south, ok := res.For(Southbound)
	assert.True(t, ok)
	assert.Empty(t, south)

	_, ok = res.For(Direction("eastbound"))
	assert.False(t, ok)
}

func TestResult_JSON(t *testing.T) {
	res := NewResult([]Arrival{
		{Route: "A", Direction: Northbound, Minutes: 4, Time: "6:04 PM"},
		{Route: "C", Direction: Southbound, Minutes: 0, Time: "6:00 PM"},
	})

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"northbound": [{"route": "A", "minutes": 4, "time": "6:04 PM"}],
		"southbound": [{"route": "C", "minutes": 0, "time": "6:00 PM"}]
	}`, string(data))
}

func TestResult_JSONEmpty(t *testing.T) {
	data, err := json.Marshal(Result{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"northbound": [], "southbound": []}`, string(data))
}

func routes(list []Arrival) []string {
	var out []string
	for _, a := range list {
		out = append(out, a.Route)
	}
	return out
}
