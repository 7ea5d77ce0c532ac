package scenarios

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/phonequery/internal/domain/data"
	"github.com/leengari/phonequery/internal/planner/predicate"
	"github.com/leengari/phonequery/internal/query/operations"
	"github.com/leengari/phonequery/internal/query/operations/testutil"
)

func matches(t *testing.T, sc Scenario, row data.Row) bool {
	t.Helper()
	pred, err := predicate.Bind(sc.Expr, sc.Params)
	assert.NilError(t, err)
	return pred(row)
}

func TestLongCalls(t *testing.T) {
	sc := LongCalls()
	assert.Assert(t, matches(t, sc, data.Row{"item": "call", "duration": 1500.0}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "call", "duration": 900.0}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "sms", "duration": 1500.0}))
}

func TestVodafoneSMS(t *testing.T) {
	sc := VodafoneSMS()
	assert.Assert(t, matches(t, sc, data.Row{"item": "sms", "network": "Vodafone"}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "sms", "network": "Tesco"}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "sms", "network": "vodafone"}))
}

func TestDataJanuary2015(t *testing.T) {
	sc := DataJanuary2015()
	assert.Assert(t, matches(t, sc, data.Row{"item": "data", "month": "2015-01"}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "data", "month": "2015-02"}))
}

func TestShortCalls(t *testing.T) {
	sc := ShortCalls("landline", 60)
	assert.Assert(t, matches(t, sc, data.Row{"item": "call", "network_type": "mobile", "duration": 30.0}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "call", "network_type": "landline", "duration": 30.0}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "call", "network_type": "mobile", "duration": 60.0}))
	assert.Equal(t, sc.Label, "Short calls (<60s) not to network type 'landline':")
}

func TestNetworkContains(t *testing.T) {
	sc := NetworkContains("da")
	assert.Assert(t, matches(t, sc, data.Row{"network": "Vodafone"}))
	assert.Assert(t, !matches(t, sc, data.Row{"network": "O2"}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "sms"}))
}

func TestItemPrefix(t *testing.T) {
	sc := ItemPrefix("ca")
	assert.Assert(t, matches(t, sc, data.Row{"item": "call"}))
	assert.Assert(t, !matches(t, sc, data.Row{"item": "sms"}))
	assert.Assert(t, !matches(t, sc, data.Row{"network": "Vodafone"}))
}

func TestCatalog_AgainstFixture(t *testing.T) {
	table := testutil.CreatePhoneTable()
	want := map[string][]int64{
		"long_calls":       {2, 9, 13},
		"vodafone_sms":     {3},
		"data_2015_01":     {5},
		"short_calls":      {1, 12},
		"network_contains": {0, 1, 3, 5, 6, 13},
		"item_prefix":      {1, 2, 7, 8, 9, 12, 13},
	}

	catalog := Catalog()
	assert.Equal(t, len(catalog), 6)

	for _, sc := range catalog {
		t.Run(sc.Name, func(t *testing.T) {
			pred, err := predicate.Bind(sc.Expr, sc.Params)
			assert.NilError(t, err)

			result := operations.SelectWhere(table, pred)

			assert.DeepEqual(t, testutil.Keys(t, result), want[sc.Name])
			testutil.AssertSubsequence(t, result, table, sc.Name)
		})
	}
}
