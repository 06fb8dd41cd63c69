package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/starmap-dev/starmap/db"
	"github.com/starmap-dev/starmap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithOrigins(t, types.AllowedOrigins("", ""))
}

func newTestRouterWithOrigins(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, db.ConnectDatabase(":memory:"))
	require.NoError(t, db.MigrateDatabase())

	t.Cleanup(func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return NewRouter(origins)
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

const validationBody = `{"errors":["validation errors"]}`

func TestScientistLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/scientists", `{"name":"Grace","field_of_study":"Astrophysics"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created types.ScientistDetail
	decode(t, w, &created)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Grace", created.Name)
	assert.Empty(t, created.Missions)

	w = do(t, r, http.MethodGet, "/scientists", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Grace","field_of_study":"Astrophysics"}]`, w.Body.String())

	w = do(t, r, http.MethodPatch, "/scientists/1", `{"field_of_study":"Cosmology"}`)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/scientists/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Grace","field_of_study":"Cosmology","missions":[],"planets":[]}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/scientists/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/scientists/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Scientist not found"}`, w.Body.String())
}

func TestCreateScientistValidation(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{
		`{"name":"","field_of_study":"Astrophysics"}`,
		`{"name":"Grace"}`,
		`{"name":null,"field_of_study":"Astrophysics"}`,
		`{"name":7,"field_of_study":"Astrophysics"}`,
		`not json`,
	} {
		w := do(t, r, http.MethodPost, "/scientists", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, validationBody, w.Body.String(), body)
	}
}

func TestPatchScientistErrors(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPatch, "/scientists/1", `{"name":"Vera"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/scientists", `{"name":"Grace","field_of_study":"Astrophysics"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	for _, body := range []string{`{"name":""}`, `{"id":9}`, `{"name":["Vera"]}`, `[]`} {
		w = do(t, r, http.MethodPatch, "/scientists/1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, validationBody, w.Body.String(), body)
	}

	w = do(t, r, http.MethodGet, "/scientists/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stored types.ScientistDetail
	decode(t, w, &stored)
	assert.Equal(t, "Grace", stored.Name)
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	r := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		w := do(t, r, method, "/scientists/abc", "")
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}
}

func TestMissionCascadeExample(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/scientists", `{"name":"Grace","field_of_study":"Astrophysics"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/planets", `{"name":"Mars","distance_from_earth":225,"nearest_star":"Sun"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/missions", `{"name":"M1","scientist_id":1,"planet_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{
		"id":1,"name":"M1","scientist_id":1,"planet_id":1,
		"scientist":{"id":1,"name":"Grace","field_of_study":"Astrophysics"},
		"planet":{"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun"}
	}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/scientists/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id":1,"name":"Grace","field_of_study":"Astrophysics",
		"missions":[{"id":1,"name":"M1","scientist_id":1,"planet_id":1,
			"planet":{"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun"}}],
		"planets":[{"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun"}]
	}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/planets/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun",
		"missions":[{"id":1,"name":"M1","scientist_id":1,"planet_id":1,
			"scientist":{"id":1,"name":"Grace","field_of_study":"Astrophysics"}}],
		"scientists":[{"id":1,"name":"Grace","field_of_study":"Astrophysics"}]
	}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/scientists/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/missions/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Mission not found"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/planets", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun"}]`, w.Body.String())
}

func TestCreateMissionValidation(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/scientists", `{"name":"Grace","field_of_study":"Astrophysics"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/planets", `{"name":"Mars"}`).Code)

	for _, body := range []string{
		`{"name":"M1","scientist_id":2,"planet_id":1}`,
		`{"name":"M1","scientist_id":1,"planet_id":2}`,
		`{"name":"M1","planet_id":1}`,
		`{"name":"M1","scientist_id":1,"planet_id":null}`,
		`{"name":"","scientist_id":1,"planet_id":1}`,
		`{"name":"M1","scientist_id":"one","planet_id":1}`,
	} {
		w := do(t, r, http.MethodPost, "/missions", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, validationBody, w.Body.String(), body)
	}
}

func TestListPlanetsHasNoNesting(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/scientists", `{"name":"Grace","field_of_study":"Astrophysics"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/planets", `{"name":"Mars"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/missions", `{"name":"M1","scientist_id":1,"planet_id":1}`).Code)

	w := do(t, r, http.MethodGet, "/planets", "")
	require.Equal(t, http.StatusOK, w.Code)

	var planets []map[string]any
	decode(t, w, &planets)
	require.Len(t, planets, 1)
	assert.ElementsMatch(t, []string{"id", "name", "distance_from_earth", "nearest_star"}, keys(planets[0]))
}

func TestDeletePlanetAndMission(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/scientists", `{"name":"Grace","field_of_study":"Astrophysics"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/planets", `{"name":"Mars"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/missions", `{"name":"M1","scientist_id":1,"planet_id":1}`).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/missions", `{"name":"M2","scientist_id":1,"planet_id":1}`).Code)

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/missions/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/missions/1", "").Code)

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/planets/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/missions/2", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/planets/1", "").Code)

	w := do(t, r, http.MethodGet, "/scientists/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Grace","field_of_study":"Astrophysics","missions":[],"planets":[]}`, w.Body.String())
}

func TestHomeHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]string
	decode(t, w, &health)
	assert.Equal(t, "ok", health["status"])

	do(t, r, http.MethodGet, "/planets", "")

	w = do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte(`starmap_http_requests_total{method="GET",route="/planets",status="200"}`)))
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newTestRouterWithOrigins(t, types.AllowedOrigins("https://starmap.example", ""))

	req := httptest.NewRequest(http.MethodGet, "/planets", nil)
	req.Header.Set("Origin", "https://starmap.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://starmap.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
