package pkgmanager

import (
	"context"
	"strings"

	"github.com/haluker/create-app/internal/logging"
	"github.com/haluker/create-app/internal/models"
	"github.com/rs/zerolog"
)

// Detector picks the package manager used to install the new project.
type Detector struct {
	runner    CommandRunner
	userAgent string
	log       zerolog.Logger
}

// NewDetector creates a Detector. userAgent is the value of npm_config_user_agent.
func NewDetector(runner CommandRunner, userAgent string) *Detector {
	return &Detector{
		runner:    runner,
		userAgent: userAgent,
		log:       logging.GetLogger("detector"),
	}
}

// Detect returns the first package manager signalled by, in order: the user
// agent prefix, a working `yarn --version`, a working `pnpm --version`.
// It falls back to npm.
func (d *Detector) Detect(ctx context.Context) models.PackageManager {
	if pm, ok := fromUserAgent(d.userAgent); ok {
		d.log.Debug().Str("userAgent", d.userAgent).Str("packageManager", pm.String()).Msg("Package manager from user agent")
		return pm
	}

	for _, pm := range []models.PackageManager{models.PackageManagerYarn, models.PackageManagerPNPM} {
		if err := d.runner.Probe(ctx, pm.String(), "--version"); err != nil {
			d.log.Debug().Err(err).Str("packageManager", pm.String()).Msg("Probe failed")
			continue
		}
		d.log.Debug().Str("packageManager", pm.String()).Msg("Probe succeeded")
		return pm
	}

	return models.PackageManagerNPM
}

func fromUserAgent(userAgent string) (models.PackageManager, bool) {
	switch {
	case strings.HasPrefix(userAgent, "yarn"):
		return models.PackageManagerYarn, true
	case strings.HasPrefix(userAgent, "pnpm"):
		return models.PackageManagerPNPM, true
	default:
		return "", false
	}
}
