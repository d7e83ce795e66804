package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism-server/models"
)

var home = []models.Place{"Alor Setar", "Langkawi", "Sungai Petani"}

func TestClassifier_Table(t *testing.T) {
	c := NewClassifier(home)

	tests := []struct {
		name     string
		from, to models.Place
		want     models.RouteCategory
	}{
		{"both home", "Alor Setar", "Langkawi", models.RouteIntraHome},
		{"into home", "Kuala Lumpur", "Langkawi", models.RouteComingToHome},
		{"out of home", "Sungai Petani", "Penang", models.RouteLeavingHome},
		{"neither", "Penang", "Ipoh", models.RouteUnknown},
		{"empty strings", "", "", models.RouteUnknown},
		{"empty from", "", "Langkawi", models.RouteComingToHome},
		{"case and spaces ignored", "  alor setar", "LANGKAWI ", models.RouteIntraHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.from, tt.to))
		})
	}
}

func TestClassifier_AllHomePairsAreIntraHome(t *testing.T) {
	c := NewClassifier(home)
	for _, a := range home {
		for _, b := range home {
			assert.Equal(t, models.RouteIntraHome, c.Classify(a, b), "%s -> %s", a, b)
		}
	}
}

func TestClassifier_IgnoresBlankHomeEntries(t *testing.T) {
	c := NewClassifier([]models.Place{"", "   ", "Yan"})

	assert.False(t, c.InHome(""))
	assert.True(t, c.InHome("yan"))
}
