package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpeningHours_UnmarshalMixedTypes(t *testing.T) {
	raw := `[{"day":0,"opens":8,"closes":"22:30"},{"day":1,"opens":null,"closes":true}]`

	var hours []OpeningHours
	require.NoError(t, json.Unmarshal([]byte(raw), &hours))

	assert.Equal(t, OpeningHours{Day: 0, Opens: "08:00", Closes: "22:30"}, hours[0])
	assert.Equal(t, OpeningHours{Day: 1}, hours[1])
}
