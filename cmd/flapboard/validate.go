package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flapboard/flapboard/render"
	"github.com/flapboard/flapboard/resolve"
)

const validateExample = `# Check a template on its own
flapboard validate -t lobby.yaml

# Also check data references against a context file
flapboard validate -t lobby.yaml -c data.yaml`

var validateCmd = &cobra.Command{
	Use:          "validate -t [template] [-c context]",
	Short:        "Check a template for authoring mistakes",
	Long:         `This command reports malformed expressions, unknown data sources and lines unlikely to fit the display. Errors exit non-zero; warnings do not.`,
	Example:      validateExample,
	RunE:         runValidate,
	SilenceUsage: true,
}

func runValidate(cmd *cobra.Command, args []string) error {
	templatePath, _ := cmd.Flags().GetString("template")
	contextPath, _ := cmd.Flags().GetString("context")

	template, err := loadTemplate(templatePath)
	if err != nil {
		return err
	}
	var ctx resolve.Context
	if contextPath != "" {
		if ctx, err = loadContext(contextPath); err != nil {
			return err
		}
	}

	issues := render.Validate(template, contextSources(ctx))
	if len(issues) == 0 {
		fmt.Println(color.GreenString("OK: %d lines", len(template)))
		return nil
	}

	errs := 0
	for _, issue := range issues {
		tag := color.YellowString("warning")
		if issue.Severity == render.SeverityError {
			tag = color.RedString("error")
			errs++
		}
		fmt.Printf("line %d: %s: %s\n", issue.Line, tag, issue.Message)
	}
	if errs > 0 {
		return fmt.Errorf("%d error(s) in %s", errs, templatePath)
	}
	return nil
}

func init() {
	validateCmd.Flags().StringP("template", "t", "", "Template YAML file")
	validateCmd.Flags().StringP("context", "c", "", "Context YAML file; enables the unknown-source check")

	if err := validateCmd.MarkFlagRequired("template"); err != nil {
		return
	}
}
