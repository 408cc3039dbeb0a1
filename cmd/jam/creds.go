package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/adityasai1234/jam-nodes/internal/adapters/credstore"
)

func newCredsCmd(cfgPath *string, debug *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creds",
		Short: "Manage stored service credentials",
	}

	cmd.AddCommand(
		newCredsSetCmd(cfgPath, debug),
		newCredsListCmd(cfgPath, debug),
		newCredsRmCmd(cfgPath, debug),
	)

	return cmd
}

func newCredsSetCmd(cfgPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "set <service> [field=value ...]",
		Short: "Store credentials for a service",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, *debug)
			if err != nil {
				return err
			}

			service := args[0]

			fields := map[string]string{}
			for _, pair := range args[1:] {
				key, value, found := strings.Cut(pair, "=")
				if !found || key == "" {
					return fmt.Errorf("expected field=value, got %q", pair)
				}
				fields[key] = value
			}

			// No pairs on the command line: prompt for an API key, the
			// common case for every service except dataforseo.
			if len(fields) == 0 {
				var apiKey string
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title(fmt.Sprintf("API key for %s", service)).
						EchoMode(huh.EchoModePassword).
						Value(&apiKey),
				)).WithTheme(huh.ThemeCharm())
				if err := form.Run(); err != nil {
					return err
				}
				if apiKey == "" {
					return fmt.Errorf("no credentials provided")
				}
				fields["api_key"] = apiKey
			}

			store, err := credstore.Open(a.cfg.DataDir, a.logger)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Set(service, fields); err != nil {
				return err
			}

			fmt.Println(successStyle.Render("✓ stored credentials for " + service))
			return nil
		},
	}
}

func newCredsListCmd(cfgPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List services with stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, *debug)
			if err != nil {
				return err
			}

			store, err := credstore.Open(a.cfg.DataDir, a.logger)
			if err != nil {
				return err
			}
			defer store.Close()

			creds, err := store.All()
			if err != nil {
				return err
			}

			services := make([]string, 0, len(creds))
			for name := range creds {
				services = append(services, name)
			}
			sort.Strings(services)

			for _, name := range services {
				fieldNames := make([]string, 0, len(creds[name]))
				for field := range creds[name] {
					fieldNames = append(fieldNames, field)
				}
				sort.Strings(fieldNames)
				fmt.Printf("  %s %s\n",
					typeStyle.Render(fmt.Sprintf("%-16s", name)),
					categoryStyle.Render(strings.Join(fieldNames, ", ")))
			}

			return nil
		},
	}
}

func newCredsRmCmd(cfgPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <service>",
		Short: "Remove stored credentials for a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, *debug)
			if err != nil {
				return err
			}

			store, err := credstore.Open(a.cfg.DataDir, a.logger)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(args[0]); err != nil {
				return err
			}

			fmt.Println(successStyle.Render("✓ removed credentials for " + args[0]))
			return nil
		},
	}
}
