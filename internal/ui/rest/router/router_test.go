package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/greeter/internal/configuration"
	"github.com/khedhrije/greeter/internal/ui/rest/handlers"
	"github.com/khedhrije/greeter/internal/ui/rest/middleware"
	"github.com/khedhrije/greeter/pkg/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *configuration.AppConfig {
	return &configuration.AppConfig{
		AppName:        "greeter",
		AppVersion:     "1.2.3",
		AppRevision:    "abc123",
		AppBuiltAt:     "2026-01-01T00:00:00Z",
		RestConfig:     &configuration.RestConfig{},
		DatabaseConfig: &configuration.DatabaseConfig{},
	}
}

func setupRouter(t *testing.T) (*gin.Engine, *middleware.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	metrics := middleware.NewMetrics()
	r, err := CreateRouter(Deps{
		Logger:    logger,
		Checks:    monitoring.New(testConfig()),
		Greetings: handlers.NewGreeting(logger, metrics),
		Metrics:   metrics,
	})
	require.NoError(t, err)
	return r, metrics
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFunctionalRoutes(t *testing.T) {
	r, _ := setupRouter(t)

	cases := map[string]string{
		"/":                           `{"message":"Hello World"}`,
		"/hello/":                     `{"message":"Hello, you are welcome."}`,
		"/say_hello_to_name/Ada":      `{"message":"Hello, Ada"}`,
		"/say_hello_to_gender/male":   `{"message":"Hello, you are a man."}`,
		"/say_hello_to_gender/female": `{"message":"Hello, you are a woman."}`,
	}
	for target, want := range cases {
		w := get(r, target)
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.JSONEq(t, want, w.Body.String(), target)
	}

	w := get(r, "/say_hello_to_gender/Male")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTechnicalRoutes(t *testing.T) {
	r, _ := setupRouter(t)

	assert.Equal(t, http.StatusOK, get(r, "/api/livez").Code)

	w := get(r, "/api/version")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"1.2.3","revision":"abc123","builtAt":"2026-01-01T00:00:00Z"}`, w.Body.String())

	w = get(r, "/api/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = get(r, "/api/readyz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"routes":"ok","database":"skipped"}}`, w.Body.String())

	w = get(r, "/api/server")
	assert.Equal(t, http.StatusOK, w.Code)
	var server map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &server))
	assert.Equal(t, "server-info", server["name"])

	w = get(r, "/api/check/metrics")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/api/check/database")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"skipped"`)
}

func TestPrometheusExposition(t *testing.T) {
	r, _ := setupRouter(t)

	get(r, "/")
	get(r, "/say_hello_to_name/x")
	get(r, "/say_hello_to_gender/nope")
	get(r, "/does-not-exist")

	w := get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `greeter_greetings_total{kind="root"} 1`)
	assert.Contains(t, body, `greeter_greetings_total{kind="named"} 1`)
	assert.Contains(t, body, `greeter_validation_errors_total{param="gender"} 1`)
	assert.Contains(t, body, `greeter_http_requests_total{method="GET",route="/say_hello_to_gender/:gender",status="422"} 1`)
	assert.Contains(t, body, `greeter_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}

func TestCreateRouter_TwiceIsSafe(t *testing.T) {
	setupRouter(t)
	setupRouter(t)
}

func do(r http.Handler, method, target string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutingErrors_UseDetailBody(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())

	w = get(r, "/say_hello_to_gender/")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())

	for _, method := range []string{http.MethodPost, http.MethodHead, http.MethodDelete} {
		w = do(r, method, "/")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
	}
	w = do(r, http.MethodPost, "/say_hello_to_name/bob")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, w.Body.String())
}

func TestOpenAPIDocument(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/openapi.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]struct {
			Parameters []struct {
				Name string   `json:"name"`
				In   string   `json:"in"`
				Enum []string `json:"enum"`
			} `json:"parameters"`
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	for _, p := range []string{"/", "/hello/", "/say_hello_to_name/{name}", "/say_hello_to_gender/{gender}"} {
		assert.Contains(t, doc.Paths, p)
		assert.Contains(t, doc.Paths[p], "get", p)
	}

	genderOp := doc.Paths["/say_hello_to_gender/{gender}"]["get"]
	require.Len(t, genderOp.Parameters, 1)
	assert.Equal(t, "gender", genderOp.Parameters[0].Name)
	assert.Equal(t, "path", genderOp.Parameters[0].In)
	assert.Equal(t, []string{"male", "female"}, genderOp.Parameters[0].Enum)
	assert.Contains(t, genderOp.Responses, "422")
	assert.Contains(t, doc.Definitions, "handlers.ValidationError")
}

func TestSwaggerUI(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/docs")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))

	w = get(r, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/say_hello_to_gender/{gender}")
}

func TestPanicsAreCounted(t *testing.T) {
	r, _ := setupRouter(t)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := get(r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := get(r, "/metrics").Body.String()
	assert.Contains(t, body, `greeter_http_requests_total{method="GET",route="/boom",status="500"} 1`)
}
