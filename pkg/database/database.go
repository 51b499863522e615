package database

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
)

var (
	Properties   *Store[model.Property]
	Requirements *Store[model.Requirement]
	Users        *Store[model.User]
	Media        *Store[model.Media]
	OTPs         *Store[model.OTPRecord]
)

// InitStores wires the package-level collection stores against dataDir,
// creating the directory when needed.
func InitStores(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	Properties = NewStore[model.Property](dataDir, "properties")
	Requirements = NewStore[model.Requirement](dataDir, "requirements")
	Users = NewStore[model.User](dataDir, "users")
	Media = NewStore[model.Media](dataDir, "media")
	OTPs = NewStore[model.OTPRecord](dataDir, "otps")

	log.Info().Str("dir", dataDir).Msg("collection stores ready")
	return nil
}
