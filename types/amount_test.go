package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountAddPropagation(t *testing.T) {
	assert.Equal(t, Bounded(30), Bounded(10).Add(Bounded(20)))
	assert.True(t, UnboundedLoss().Add(Bounded(1e12)).IsUnboundedLoss())
	assert.True(t, Bounded(5).Add(UnboundedLoss()).IsUnboundedLoss())
	assert.True(t, UnboundedProfit().Add(Bounded(-1)).IsUnbounded())

	// A strategy mixing unlimited profit and unlimited loss is
	// unlimited-loss as a whole.
	assert.True(t, UnboundedProfit().Add(UnboundedLoss()).IsUnboundedLoss())
}

func TestAmountJSONRoundTrip(t *testing.T) {
	for _, a := range []Amount{Bounded(-1020.5), Bounded(0), UnboundedLoss(), UnboundedProfit()} {
		data, err := json.Marshal(a)
		assert.NoError(t, err)

		var back Amount
		assert.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, a, back)
	}

	data, _ := json.Marshal(UnboundedLoss())
	assert.Equal(t, `"-Infinity"`, string(data))
}

func TestAmountUnmarshalRejectsGarbage(t *testing.T) {
	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`"minus infinity"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &a))
}
