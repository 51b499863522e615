package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
)

type fakeSender struct {
	sent    []string // recipient per delivered alert
	failFor map[uint]bool
}

func (f *fakeSender) SendMatchAlert(to string, p model.Property, r model.Requirement) error {
	if f.failFor[r.ID] {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestPropertyCreated_NoMatchesSendsNothing(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "admin@example.com")

	p := model.Property{Type: model.ListingRent, Price: "0.50", Area: "1200"}
	reqs := []model.Requirement{
		{ID: 1, Type: model.ListingSale},
		{ID: 2, Type: model.ListingRent, MinPrice: "0.80"},
	}

	sent := n.PropertyCreated(p, reqs)
	assert.Equal(t, 0, sent)
	assert.Empty(t, sender.sent)
}

func TestPropertyCreated_OneAlertPerMatch(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "admin@example.com")

	p := model.Property{Type: model.ListingRent, Price: "0.50", Area: "1200", Location: "Whitefield", BHK: "2BHK"}
	reqs := []model.Requirement{
		{ID: 1, Type: model.ListingRent, MaxPrice: "0.60"},
		{ID: 2, Type: model.ListingSale},
		{ID: 3, Type: model.ListingAny, Location: "White"},
	}

	sent := n.PropertyCreated(p, reqs)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"admin@example.com", "admin@example.com"}, sender.sent)
}

func TestPropertyCreated_SendFailureDoesNotStopRemaining(t *testing.T) {
	sender := &fakeSender{failFor: map[uint]bool{1: true}}
	n := NewNotifier(sender, "admin@example.com")

	p := model.Property{Type: model.ListingRent, Price: "0.50"}
	reqs := []model.Requirement{
		{ID: 1, Type: model.ListingRent},
		{ID: 2, Type: model.ListingRent},
		{ID: 3, Type: model.ListingRent},
	}

	sent := n.PropertyCreated(p, reqs)
	assert.Equal(t, 2, sent)
	assert.Len(t, sender.sent, 2)
}

func TestRequirementCreated_ScansAllProperties(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "admin@example.com")

	r := model.Requirement{ID: 7, Type: model.ListingSale, MinArea: "2000"}
	props := []model.Property{
		{ID: 1, Type: model.ListingSale, Area: "2554"},
		{ID: 2, Type: model.ListingRent, Area: "2554"},
		{ID: 3, Type: model.ListingSale, Area: "1735"},
		{ID: 4, Type: model.ListingSale, Area: "3500"},
	}

	sent := n.RequirementCreated(r, props)
	assert.Equal(t, 2, sent)
}
