package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"polishlang/internal/config"
	"polishlang/internal/models"
	"polishlang/internal/services"
	"polishlang/internal/utils"
)

type cliState struct {
	cfg *config.Config
	svc *services.Services
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:           "polishctl",
		Short:         "Inspect and maintain Polish Language settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, err := services.NewServices(cfg, cfg.NewLogger())
			if err != nil {
				return err
			}
			state.cfg, state.svc = cfg, svc
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if state.svc == nil {
				return nil
			}
			return state.svc.Close()
		},
	}

	root.AddCommand(
		newShowCmd(state),
		newMigrateCmd(state),
		newSetKeyCmd(state),
		newClearKeyCmd(state),
		newProvidersCmd(state),
	)
	return root
}

func (s *cliState) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if s.cfg != nil && s.cfg.StoreTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.StoreTimeout)
	}
	return context.WithCancel(ctx)
}

func newShowCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings with credentials masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := state.context(cmd)
			defer cancel()

			loader := services.NewSettingsLoader(state.svc.SettingsRepo, state.svc.Catalog, state.cfg.NewLogger())
			settings, _, err := loader.Initialize(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if state.cfg.SettingsBackend == config.SettingsBackendJSON && !utils.FileExists(state.cfg.SettingsPath()) {
				fmt.Fprintln(out, "no saved settings, showing defaults")
			}
			fmt.Fprintf(out, "backend:            %s (%s)\n", state.cfg.SettingsBackend, settingsLocation(state.cfg))
			fmt.Fprintf(out, "shortcut:           %s\n", settings.Shortcut)
			fmt.Fprintf(out, "translate shortcut: %s\n", settings.TranslateShortcut)
			fmt.Fprintf(out, "provider:           %s\n", settings.Provider)
			fmt.Fprintf(out, "model:              %s\n", settings.Model)
			fmt.Fprintf(out, "base url:           %s\n", settings.BaseURL)
			fmt.Fprintf(out, "sound:              %t\n", settings.SoundEnabled)
			fmt.Fprintf(out, "notifications:      %t\n", settings.NotificationsEnabled)
			fmt.Fprintf(out, "current key:        %s\n", orNone(utils.MaskSecret(settings.CurrentAPIKey())))
			writeKeys(out, settings.APIKeys)
			return nil
		},
	}
}

func newMigrateCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite stored settings in the current multi-provider shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := state.context(cmd)
			defer cancel()

			log := state.cfg.NewLogger()
			loader := services.NewSettingsLoader(state.svc.SettingsRepo, state.svc.Catalog, log)
			settings, cache, err := loader.Initialize(ctx)
			if err != nil {
				return fmt.Errorf("%w; stored settings left untouched", err)
			}

			saver := services.NewSettingsSaver(state.svc.SettingsRepo, state.svc.Keys, state.svc.Catalog, log)
			if err := saver.Save(ctx, models.NewFormState(settings), cache); err != nil {
				return err
			}
			for _, notice := range settings.Notices {
				fmt.Fprintln(cmd.OutOrStdout(), "note:", notice)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "settings rewritten at %s\n", settingsLocation(state.cfg))
			return nil
		},
	}
}

func newSetKeyCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "set-key <provider> <key>",
		Short: "Store the API key for a provider",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, key := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			if _, ok := state.svc.Catalog.GetProvider(provider); !ok {
				return fmt.Errorf("%w: %q", services.ErrUnknownProvider, provider)
			}
			if key == "" {
				return fmt.Errorf("key must not be empty, use clear-key to remove it")
			}

			ctx, cancel := state.context(cmd)
			defer cancel()
			if err := state.svc.Keys.SetProviderKey(ctx, provider, key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %s key %s\n", provider, utils.MaskSecret(key))
			return nil
		},
	}
}

func newClearKeyCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-key <provider>",
		Short: "Remove the API key stored for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := state.context(cmd)
			defer cancel()

			svc := state.svc.Settings
			svc.Startup(ctx)
			if err := svc.ClearProviderKey(strings.TrimSpace(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s key\n", args[0])
			return nil
		},
	}
}

func newProvidersCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported providers and their models",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, p := range state.svc.Catalog.ListProviders() {
				marker := ""
				if i == 0 {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%s%s  %s  %s\n", p.ID, marker, p.DisplayName, p.DefaultBaseURL)
				for _, m := range p.Models {
					fmt.Fprintf(out, "    %-20s %s\n", m.ID, m.Label)
				}
			}
			return nil
		},
	}
}

func settingsLocation(cfg *config.Config) string {
	if cfg.SettingsBackend == config.SettingsBackendSQLite {
		return cfg.DBPath()
	}
	return cfg.SettingsPath()
}

func writeKeys(out io.Writer, keys map[string]string) {
	providers := make([]string, 0, len(keys))
	for p := range keys {
		providers = append(providers, p)
	}
	sort.Strings(providers)
	for _, p := range providers {
		fmt.Fprintf(out, "key[%s]: %s\n", p, utils.MaskSecret(keys[p]))
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

