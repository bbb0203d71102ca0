package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pojntfx/termini/assets/resources"
	"github.com/pojntfx/termini/internal/components"
	"github.com/pojntfx/termini/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	errNonZeroExit = errors.New("application exited with non-zero status")
)

const (
	verboseKey         = "verbose"
	configKey          = "config"
	dataDirKey         = "data-dir"
	localeDirKey       = "locale-dir"
	settingsBackendKey = "settings-backend"
	settingsFileKey    = "settings-file"
)

func main() {
	cmd := &cobra.Command{
		Use:   "termini",
		Short: "Minimal GNOME application shell",
		Long: `Minimal GNOME application shell with a single main window that remembers its size.

For more information, please visit https://github.com/aunetx/termini.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &slog.HandlerOptions{}
			if viper.GetBool(verboseKey) {
				opts.Level = slog.LevelDebug
			}
			log := slog.New(slog.NewJSONHandler(os.Stderr, opts))

			if viper.IsSet(configKey) {
				viper.SetConfigFile(viper.GetString(configKey))
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			} else {
				viper.SetConfigName(cmd.Use)
				viper.AddConfigPath(xdg.ConfigHome)
				if err := viper.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
					return err
				}
			}

			log.Info("Termini", "appID", resources.AppID, "version", resources.Version, "profile", resources.Profile, "dataDir", viper.GetString(dataDirKey))

			backend, err := settings.ParseBackend(viper.GetString(settingsBackendKey))
			if err != nil {
				return err
			}

			cleanupI18n, err := components.SetupI18n(slog.New(log.Handler().WithGroup("i18n")), viper.GetString(localeDirKey))
			if err != nil {
				return err
			}
			defer func() {
				if err := cleanupI18n(); err != nil {
					log.Warn("Could not remove extracted locales", "err", err)
				}
			}()

			if err := components.InitToolkit(); err != nil {
				return err
			}

			if err := components.RegisterResources(viper.GetString(dataDirKey)); err != nil {
				return err
			}

			store, err := components.OpenStore(
				slog.New(log.Handler().WithGroup("settings")),
				backend,
				viper.GetString(settingsFileKey),
			)
			if err != nil {
				return err
			}

			app := components.NewApplication(log, store)

			code, err := app.Run(append([]string{os.Args[0]}, args...))
			if err != nil {
				return err
			}

			if code != 0 {
				return fmt.Errorf("%w: %v", errNonZeroExit, code)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolP(verboseKey, "v", false, "Whether to enable verbose logging")
	cmd.PersistentFlags().StringP(configKey, "c", "", "Config file to use (by default "+cmd.Use+".yaml in the XDG config directory is read if it exists)")
	cmd.PersistentFlags().StringP(dataDirKey, "d", filepath.Join("/usr", "share", cmd.Use), "Directory to load "+resources.ResourcesFileName+" from")
	cmd.PersistentFlags().String(localeDirKey, "", "Directory with compiled translations (by default the embedded translations are used)")
	cmd.PersistentFlags().String(settingsBackendKey, string(settings.BackendAuto), "Settings backend to use (auto, gsettings or file)")
	cmd.PersistentFlags().String(settingsFileKey, filepath.Join(xdg.ConfigHome, cmd.Use, "settings.yaml"), "Settings file to use with the file settings backend")

	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix(cmd.Use)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
