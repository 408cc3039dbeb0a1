package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	jamnodes "github.com/adityasai1234/jam-nodes"
	"github.com/adityasai1234/jam-nodes/internal/adapters/credstore"
	"github.com/adityasai1234/jam-nodes/internal/adapters/introspect"
	"github.com/adityasai1234/jam-nodes/internal/xjson"
)

func newRunCmd(cfgPath *string, debug *bool) *cobra.Command {
	var inputJSON string
	var userID string

	cmd := &cobra.Command{
		Use:   "run <type>",
		Short: "Execute a node, prompting for its input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, *debug)
			if err != nil {
				return err
			}

			nodeType := args[0]
			if !a.registry.Has(nodeType) {
				return fmt.Errorf("unknown node type %q", nodeType)
			}

			var input map[string]interface{}
			if inputJSON != "" {
				if err := xjson.Unmarshal([]byte(inputJSON), &input); err != nil {
					return fmt.Errorf("invalid --input JSON: %w", err)
				}
			} else {
				fields, err := a.runner.Fields(nodeType)
				if err != nil {
					return err
				}
				input, err = promptForInput(nodeType, fields)
				if err != nil {
					return err
				}
			}

			store, err := credstore.Open(a.cfg.DataDir, a.logger)
			if err != nil {
				return fmt.Errorf("open credential store: %w", err)
			}
			defer store.Close()

			creds, err := store.All()
			if err != nil {
				return err
			}

			result := a.runner.Execute(cmd.Context(), nodeType, input, jamnodes.ExecuteOptions{
				UserID:      userID,
				Credentials: creds,
			})

			return renderResult(result)
		},
	}

	cmd.Flags().StringVar(&inputJSON, "input", "", "node input as a JSON object (skips prompting)")
	cmd.Flags().StringVar(&userID, "user", "cli", "user id recorded on the execution")

	return cmd
}

// promptForInput builds a huh form from the node's derived fields and
// converts the answers back to the value shapes the schema expects.
func promptForInput(nodeType string, fields []introspect.FieldDescriptor) (map[string]interface{}, error) {
	if len(fields) == 0 {
		return map[string]interface{}{}, nil
	}

	answers := make([]string, len(fields))
	checks := make([]bool, len(fields))

	var items []huh.Field
	for i, field := range fields {
		title := field.Label
		if !field.Required {
			title += " (optional)"
		}

		switch field.Type {
		case introspect.FieldCheckbox:
			items = append(items, huh.NewConfirm().
				Title(title).
				Description(field.Description).
				Value(&checks[i]))

		case introspect.FieldSelect:
			options := make([]huh.Option[string], 0, len(field.Options))
			for _, opt := range field.Options {
				options = append(options, huh.NewOption(opt, opt))
			}
			if field.Default != nil {
				answers[i] = fmt.Sprintf("%v", field.Default)
			}
			items = append(items, huh.NewSelect[string]().
				Title(title).
				Description(field.Description).
				Options(options...).
				Value(&answers[i]))

		default:
			placeholder := ""
			if field.Default != nil {
				placeholder = fmt.Sprintf("%v", field.Default)
			}
			items = append(items, huh.NewInput().
				Title(title).
				Description(field.Description).
				Placeholder(placeholder).
				Value(&answers[i]))
		}
	}

	form := huh.NewForm(huh.NewGroup(items...)).WithTheme(huh.ThemeCharm())
	if err := form.Run(); err != nil {
		return nil, err
	}

	input := make(map[string]interface{}, len(fields))
	for i, field := range fields {
		switch field.Type {
		case introspect.FieldCheckbox:
			input[field.Name] = checks[i]

		case introspect.FieldNumber:
			if answers[i] == "" {
				continue
			}
			n, err := strconv.ParseFloat(answers[i], 64)
			if err != nil {
				return nil, fmt.Errorf("field %q expects a number: %w", field.Name, err)
			}
			input[field.Name] = n

		case introspect.FieldArray, introspect.FieldObject:
			if answers[i] == "" {
				continue
			}
			var v interface{}
			if err := xjson.Unmarshal([]byte(answers[i]), &v); err != nil {
				return nil, fmt.Errorf("field %q expects JSON: %w", field.Name, err)
			}
			input[field.Name] = v

		default:
			if answers[i] == "" && !field.Required {
				continue
			}
			input[field.Name] = answers[i]
		}
	}

	return input, nil
}

func renderResult(result jamnodes.Result) error {
	if result.Success {
		fmt.Println(successStyle.Render("✓ success"))
		data, err := xjson.MarshalIndent(result.Output, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(errorStyle.Render("✗ " + result.Error))
	return nil
}
