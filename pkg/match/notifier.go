package match

import (
	"github.com/rs/zerolog/log"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
)

// AlertSender delivers one rendered match alert. Implemented by pkg/email.
type AlertSender interface {
	SendMatchAlert(to string, property model.Property, req model.Requirement) error
}

// Notifier runs the predicate over the opposite collection whenever a
// property or requirement is created and sends one alert per positive match.
// Sends happen inline in the triggering request; a failed send is logged and
// never rolls back the create or stops the remaining candidates.
type Notifier struct {
	sender     AlertSender
	adminEmail string
}

func NewNotifier(sender AlertSender, adminEmail string) *Notifier {
	return &Notifier{sender: sender, adminEmail: adminEmail}
}

// PropertyCreated checks the new property against every stored requirement.
// Returns the number of alerts actually delivered.
func (n *Notifier) PropertyCreated(p model.Property, reqs []model.Requirement) int {
	sent := 0
	for _, r := range reqs {
		if !Matches(p, r) {
			continue
		}
		if err := n.sender.SendMatchAlert(n.adminEmail, p, r); err != nil {
			log.Error().Err(err).
				Uint("property_id", p.ID).
				Uint("requirement_id", r.ID).
				Msg("match alert send failed")
			continue
		}
		sent++
	}
	return sent
}

// RequirementCreated checks the new requirement against every stored property.
func (n *Notifier) RequirementCreated(r model.Requirement, props []model.Property) int {
	sent := 0
	for _, p := range props {
		if !Matches(p, r) {
			continue
		}
		if err := n.sender.SendMatchAlert(n.adminEmail, p, r); err != nil {
			log.Error().Err(err).
				Uint("property_id", p.ID).
				Uint("requirement_id", r.ID).
				Msg("match alert send failed")
			continue
		}
		sent++
	}
	return sent
}
