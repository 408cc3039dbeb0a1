package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adityasai1234/jam-nodes/internal/xjson"
)

func newDescribeCmd(cfgPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <type>",
		Short: "Show a node's input fields and example input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, *debug)
			if err != nil {
				return err
			}

			nodeType := args[0]

			def, err := a.registry.Get(nodeType)
			if err != nil {
				return fmt.Errorf("unknown node type %q", nodeType)
			}

			fmt.Println(headerStyle.Render(def.Name) + categoryStyle.Render("  ("+string(def.Category)+")"))
			fmt.Println(def.Description)
			fmt.Println()

			fields, err := a.runner.Fields(nodeType)
			if err != nil {
				return err
			}

			fmt.Println(headerStyle.Render("Fields"))
			for _, field := range fields {
				required := "optional"
				if field.Required {
					required = "required"
				}
				line := fmt.Sprintf("  %s %s, %s",
					typeStyle.Render(fmt.Sprintf("%-16s", field.Name)),
					field.Type, required)
				if field.Default != nil {
					line += fmt.Sprintf(", default %v", field.Default)
				}
				if len(field.Options) > 0 {
					line += fmt.Sprintf(", one of %v", field.Options)
				}
				fmt.Println(line)
				if field.Description != "" {
					fmt.Println(categoryStyle.Render("                   " + field.Description))
				}
			}

			example, err := a.runner.ExampleInput(nodeType)
			if err != nil {
				return err
			}

			data, err := xjson.MarshalIndent(example, "", "  ")
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Println(headerStyle.Render("Example input"))
			fmt.Println(string(data))

			mock, err := a.runner.MockOutput(nodeType)
			if err != nil {
				return err
			}

			data, err = xjson.MarshalIndent(mock, "", "  ")
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Println(headerStyle.Render("Mock output"))
			fmt.Println(string(data))

			return nil
		},
	}
}
