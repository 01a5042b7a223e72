package docs

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeAnnotation struct {
	path, method, summary, description string
}

// readRouteAnnotations collects the swag comments of every handler in file.
func readRouteAnnotations(t *testing.T, file string) []routeAnnotation {
	t.Helper()
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	var (
		routes  []routeAnnotation
		current routeAnnotation
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "// @Summary "):
			current.summary = strings.TrimPrefix(line, "// @Summary ")
		case strings.HasPrefix(line, "// @Description "):
			current.description = strings.TrimPrefix(line, "// @Description ")
		case strings.HasPrefix(line, "// @Router "):
			fields := strings.Fields(strings.TrimPrefix(line, "// @Router "))
			require.Len(t, fields, 2, line)
			current.path = fields[0]
			current.method = strings.Trim(fields[1], "[]")
			routes = append(routes, current)
			current = routeAnnotation{}
		}
	}
	require.NoError(t, scanner.Err())
	return routes
}

func TestSwaggerDocMatchesHandlerAnnotations(t *testing.T) {
	var doc struct {
		BasePath string `json:"basePath"`
		Paths    map[string]map[string]struct {
			Summary     string `json:"summary"`
			Description string `json:"description"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	routes := readRouteAnnotations(t, "../../../internal/handler/quiz.go")
	require.NotEmpty(t, routes)
	assert.Len(t, doc.Paths, len(routes))

	for _, r := range routes {
		op, ok := doc.Paths[r.path][r.method]
		require.True(t, ok, "%s %s missing from docs", r.method, r.path)
		assert.Equal(t, r.summary, op.Summary, r.path)
		assert.Equal(t, r.description, op.Description, r.path)
	}
}
