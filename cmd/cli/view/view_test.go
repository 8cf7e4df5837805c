package view

import (
	"strings"
	"testing"

	"github.com/linecard/fnaudit/pkg/convention/account"
	"github.com/linecard/fnaudit/pkg/convention/inventory"
	"github.com/linecard/fnaudit/pkg/convention/report"

	"github.com/stretchr/testify/assert"
)

var scraper = inventory.Function{
	Name:         "prod-scraper-handler",
	Arn:          "arn:aws:lambda:us-west-2:123456789012:function:prod-scraper-handler",
	Environment:  map[string]string{"STAGE": "prod", "API_URL": "https://example.com"},
	Runtime:      "nodejs20.x",
	LastModified: "2024-05-01T12:00:00.000+0000",
}

func TestReport(t *testing.T) {
	matches := report.Join([]inventory.Function{scraper}, map[string]any{
		"scraper":          "1.2.0",
		"nonexistent-repo": "0.0.1",
	})

	got := Report(matches)

	assert.Contains(t, got, "Function with name nonexistent-repo not found")
	assert.Contains(t, got, "prod-scraper-handler")
	assert.Contains(t, got, scraper.Arn)
	assert.Contains(t, got, "1.2.0")
	assert.NotContains(t, got, "0.0.1")

	// sorted environment keys
	assert.Less(t, strings.Index(got, "API_URL=https://example.com"), strings.Index(got, "STAGE=prod"))
}

func TestFunctions(t *testing.T) {
	got := Functions([]inventory.Function{scraper})

	assert.Contains(t, got, "Deployed functions: 1")
	assert.Contains(t, got, "nodejs20.x")
	assert.Contains(t, got, "STAGE=prod")

	empty := Functions(nil)
	assert.Contains(t, empty, "Deployed functions: 0")
	assert.NotContains(t, empty, rule)
}

func TestVersions(t *testing.T) {
	got := Versions(map[string]any{"scraper": "1.2.0", "movies-front": float64(3)})

	assert.Contains(t, got, "Package versions: 2")
	assert.Contains(t, got, "1.2.0")
	assert.Less(t, strings.Index(got, "movies-front"), strings.Index(got, "scraper"))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.2.0", Version("1.2.0"))
	assert.Equal(t, "3", Version(float64(3)))
	assert.Equal(t, `{"major":1}`, Version(map[string]any{"major": 1}))
	assert.Equal(t, "null", Version(nil))
}

func TestSince(t *testing.T) {
	assert.Equal(t, "", Since(""))
	assert.Equal(t, "yesterday-ish", Since("yesterday-ish"))
	assert.NotEqual(t, scraper.LastModified, Since(scraper.LastModified))
}

func TestCallerAndJson(t *testing.T) {
	caller := account.Caller{Account: "123456789012", Arn: "arn:aws:sts::123456789012:assumed-role/auditor/session"}
	assert.Contains(t, Caller(caller), "123456789012")

	j, err := Json(report.Join([]inventory.Function{scraper}, map[string]any{"scraper": "1.2.0"}))
	assert.NoError(t, err)
	assert.Contains(t, j, `"repository": "scraper"`)
	assert.Contains(t, j, `"version": "1.2.0"`)
	assert.Contains(t, j, `"name": "prod-scraper-handler"`)
}
