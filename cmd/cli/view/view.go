package view

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/linecard/fnaudit/internal/util"
	"github.com/linecard/fnaudit/pkg/convention/account"
	"github.com/linecard/fnaudit/pkg/convention/inventory"
	"github.com/linecard/fnaudit/pkg/convention/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang-module/carbon/v2"
)

// Lambda renders LastModified like 2024-05-01T12:00:00.000+0000
const lastModifiedLayout = "2006-01-02T15:04:05.000-0700"

var (
	rule    = strings.Repeat("-", 37)
	title   = lipgloss.NewStyle().Bold(true)
	key     = lipgloss.NewStyle().Faint(true)
	missing = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func Json(v any) (string, error) {
	j, err := json.MarshalIndent(v, "", "  ")
	return string(j), err
}

func Caller(c account.Caller) string {
	return fmt.Sprintf("%s %s (%s)\n", key.Render("Account:"), c.Account, c.Arn)
}

func Functions(functions []inventory.Function) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", title.Render(fmt.Sprintf("Deployed functions: %d", len(functions))))
	for _, f := range functions {
		b.WriteString(rule + "\n")
		writeFunction(&b, f)
	}

	if len(functions) > 0 {
		b.WriteString(rule + "\n")
	}

	return b.String()
}

func Versions(versions map[string]any) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", title.Render(fmt.Sprintf("Package versions: %d", len(versions))))
	for _, repo := range util.SortedKeys(versions) {
		fmt.Fprintf(&b, "  %s %s\n", key.Render(repo+":"), Version(versions[repo]))
	}

	return b.String()
}

func Report(matches []report.Match) string {
	var b strings.Builder

	for _, m := range matches {
		if !m.Found() {
			fmt.Fprintln(&b, missing.Render(fmt.Sprintf("Function with name %s not found", m.Repository)))
			continue
		}

		b.WriteString(rule + "\n")
		writeFunction(&b, *m.Function)
		fmt.Fprintf(&b, "%s %s\n", key.Render("Package.json version:"), Version(m.Version))
		b.WriteString(rule + "\n")
	}

	return b.String()
}

// Version prints strings bare and any other JSON value in its encoded form.
func Version(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	j, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(j)
}

// Since renders a Lambda timestamp relative to now, or returns it unchanged when it does not parse.
func Since(lastModified string) string {
	if lastModified == "" {
		return ""
	}

	c := carbon.ParseByLayout(lastModified, lastModifiedLayout)
	if c.Error != nil {
		return lastModified
	}

	return c.DiffForHumans()
}

func writeFunction(b *strings.Builder, f inventory.Function) {
	fmt.Fprintf(b, "%s %s\n", key.Render("Function:"), title.Render(f.Name))
	fmt.Fprintf(b, "%s %s\n", key.Render("ARN:"), f.Arn)

	if f.Runtime != "" {
		fmt.Fprintf(b, "%s %s\n", key.Render("Runtime:"), f.Runtime)
	}

	if since := Since(f.LastModified); since != "" {
		fmt.Fprintf(b, "%s %s\n", key.Render("Updated:"), since)
	}

	fmt.Fprintf(b, "%s\n", key.Render("Environment variables:"))
	for _, k := range util.SortedKeys(f.Environment) {
		fmt.Fprintf(b, "  %s=%s\n", k, f.Environment[k])
	}
}
