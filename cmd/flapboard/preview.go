package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flapboard/flapboard/marker"
	"github.com/flapboard/flapboard/render"
	"github.com/flapboard/flapboard/tiles"
)

const previewExample = `# Show an ANSI approximation of the finished board
flapboard preview -t lobby.yaml -c data.yaml`

var previewCmd = &cobra.Command{
	Use:          "preview -t [template] [-c context]",
	Short:        "Show the rendered board in the terminal",
	Long:         `This command renders a template and draws the frame with a border, showing color tiles as colored blocks.`,
	Example:      previewExample,
	RunE:         runPreview,
	SilenceUsage: true,
}

// tileColors maps color tile codes to terminal colors.
var tileColors = map[int]color.Attribute{
	tiles.Red:    color.FgRed,
	tiles.Orange: color.FgHiRed,
	tiles.Yellow: color.FgYellow,
	tiles.Green:  color.FgGreen,
	tiles.Blue:   color.FgBlue,
	tiles.Violet: color.FgMagenta,
	tiles.White:  color.FgHiWhite,
	tiles.Black:  color.FgHiBlack,
	tiles.Filled: color.FgWhite,
}

func runPreview(cmd *cobra.Command, args []string) error {
	templatePath, _ := cmd.Flags().GetString("template")
	contextPath, _ := cmd.Flags().GetString("context")

	template, err := loadTemplate(templatePath)
	if err != nil {
		return err
	}
	ctx, err := loadContext(contextPath)
	if err != nil {
		return err
	}

	rows := render.Render(template, ctx)
	border := "+" + strings.Repeat("-", tiles.Columns) + "+"
	fmt.Println(border)
	for _, row := range rows {
		fmt.Printf("|%s|\n", previewRow(row))
	}
	fmt.Println(border)
	return nil
}

// previewRow draws one canonical row, turning color markers into colored
// block characters and leaving text tiles as they are.
func previewRow(row string) string {
	var b strings.Builder
	for _, tok := range marker.Tokens(row) {
		switch tok.Kind {
		case marker.KindColor:
			b.WriteString(color.New(tileColors[tok.Code]).Sprint("█"))
		case marker.KindLiteral:
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}

func init() {
	previewCmd.Flags().StringP("template", "t", "", "Template YAML file")
	previewCmd.Flags().StringP("context", "c", "", "Context YAML file (source identifier -> fields)")

	if err := previewCmd.MarkFlagRequired("template"); err != nil {
		return
	}
}
