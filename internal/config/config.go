// Package config resolves command settings from flags and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/haluker/create-app/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables mirroring the command flags,
// e.g. CREATE_HALUKA_APP_USE_YARN=true.
const EnvPrefix = "CREATE_HALUKA_APP"

// UserAgentEnv is set by npm, yarn and pnpm when they run a package binary.
const UserAgentEnv = "npm_config_user_agent"

const (
	keyUseNPM      = "use-npm"
	keyUseYarn     = "use-yarn"
	keyUsePNPM     = "use-pnpm"
	keyOffline     = "offline"
	keyCheckOnline = "check-online"
	keyVerbose     = "verbose"
	keyUserAgent   = "user-agent"
)

// Settings holds the resolved configuration of one invocation.
type Settings struct {
	// PackageManager is empty unless forced by a flag or env var.
	PackageManager models.PackageManager
	Offline        bool
	CheckOnline    bool
	Verbosity      int
	UserAgent      string
}

// BindFlags registers the configuration flags on cmd.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Bool(keyUseNPM, false, "Bootstrap the application using npm")
	flags.Bool(keyUseYarn, false, "Bootstrap the application using yarn")
	flags.Bool(keyUsePNPM, false, "Bootstrap the application using pnpm")
	flags.Bool(keyOffline, false, "Install with offline flags (yarn only)")
	flags.Bool(keyCheckOnline, false, "Let yarn install online when its registry resolves")
	flags.CountP(keyVerbose, "v", "Increase log verbosity (repeatable)")
}

// Load resolves Settings for cmd. Flags win over environment variables.
func Load(cmd *cobra.Command) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := v.BindEnv(keyUserAgent, UserAgentEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", UserAgentEnv, err)
	}

	pm, err := forcedPackageManager(v)
	if err != nil {
		return nil, err
	}

	return &Settings{
		PackageManager: pm,
		Offline:        v.GetBool(keyOffline),
		CheckOnline:    v.GetBool(keyCheckOnline),
		Verbosity:      v.GetInt(keyVerbose),
		UserAgent:      v.GetString(keyUserAgent),
	}, nil
}

func forcedPackageManager(v *viper.Viper) (models.PackageManager, error) {
	var selected []models.PackageManager
	for key, pm := range map[string]models.PackageManager{
		keyUseNPM:  models.PackageManagerNPM,
		keyUseYarn: models.PackageManagerYarn,
		keyUsePNPM: models.PackageManagerPNPM,
	} {
		if v.GetBool(key) {
			selected = append(selected, pm)
		}
	}

	switch len(selected) {
	case 0:
		return "", nil
	case 1:
		return selected[0], nil
	default:
		return "", fmt.Errorf("only one of --%s, --%s or --%s may be set", keyUseNPM, keyUseYarn, keyUsePNPM)
	}
}
