package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Alor Setar", "  alor SETAR "))
	assert.True(t, EqualFold("STRASSE", "straße"))
	assert.False(t, EqualFold("Langkawi", "Langkawi Island"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Nasi Kandar Royal", "kandar"))
	assert.True(t, ContainsFold("anything", "   "))
	assert.False(t, ContainsFold("Laksa Teluk Kechai", "curry"))
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, HasPrefixFold("Langkawi", "lang"))
	assert.False(t, HasPrefixFold("Pulau Langkawi", "lang"))
}
