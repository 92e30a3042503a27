package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flapboard/flapboard/render"
)

const renderExample = `# Render a template to text rows
flapboard render -t lobby.yaml -c data.yaml

# Emit the integer tile codes the display consumes
flapboard render -t lobby.yaml -c data.yaml --grid`

var renderCmd = &cobra.Command{
	Use:          "render -t [template] [-c context] [--grid]",
	Short:        "Render a template into a 6x22 frame",
	Long:         `This command resolves, wraps and aligns a template into the full display frame, as text rows or as a JSON grid of tile codes.`,
	Example:      renderExample,
	RunE:         runRender,
	SilenceUsage: true,
}

func runRender(cmd *cobra.Command, args []string) error {
	templatePath, _ := cmd.Flags().GetString("template")
	contextPath, _ := cmd.Flags().GetString("context")
	asGrid, _ := cmd.Flags().GetBool("grid")

	template, err := loadTemplate(templatePath)
	if err != nil {
		return err
	}
	ctx, err := loadContext(contextPath)
	if err != nil {
		return err
	}

	if asGrid {
		grid, err := render.RenderGrid(template, ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(grid)
	}
	fmt.Println(render.Join(render.Render(template, ctx)))
	return nil
}

func init() {
	renderCmd.Flags().StringP("template", "t", "", "Template YAML file")
	renderCmd.Flags().StringP("context", "c", "", "Context YAML file (source identifier -> fields)")
	renderCmd.Flags().Bool("grid", false, "Output the 6x22 integer tile codes as JSON")

	if err := renderCmd.MarkFlagRequired("template"); err != nil {
		return
	}
}
