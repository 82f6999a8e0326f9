package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gallery-service/internal/core/domain"
	"gallery-service/internal/core/services"
	"gallery-service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const testPrefix = "/jupyterlab-gallery"

var handlerSources = []domain.ExhibitSource{
	{
		Git:         "https://github.com/numba/nvidia-cuda-tutorial.git",
		Homepage:    "https://github.com/numba/nvidia-cuda-tutorial",
		Title:       "Numba for CUDA",
		Description: "Nvidia contributed CUDA tutorial for Numba",
	},
	{
		Git:   "https://github.com/nebari-dev/nebari.git",
		Title: "Empty icon",
		Icon:  new(string),
	},
}

type testMocks struct {
	catalog   *testutil.MockExhibitCatalog
	inspector *testutil.MockRepositoryInspector
	syncer    *testutil.MockRepositorySyncer
}

// setupGalleryRouter creates a full handler with mock ports.
func setupGalleryRouter() (*testMocks, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	m := &testMocks{
		catalog:   new(testutil.MockExhibitCatalog),
		inspector: new(testutil.MockRepositoryInspector),
		syncer:    new(testutil.MockRepositorySyncer),
	}

	svc := services.NewGalleryService(m.catalog, m.inspector, m.syncer, services.GallerySettings{
		Title:       "Gallery",
		Destination: "/srv/gallery",
	})

	h := New(svc)
	r := gin.New()
	h.RegisterRoutes(r.Group(testPrefix))

	return m, r
}

func doRequest(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assertFieldType(t *testing.T, body []byte, key string, typ gjson.Type) {
	t.Helper()
	val := gjson.GetBytes(body, key)
	if assert.True(t, val.Exists(), "response missing field %q", key) {
		assert.Equal(t, typ, val.Type, "field %q has wrong type", key)
	}
}

func assertFieldBool(t *testing.T, body []byte, key string) {
	t.Helper()
	val := gjson.GetBytes(body, key)
	if assert.True(t, val.Exists(), "response missing field %q", key) {
		assert.True(t, val.IsBool(), "field %q should be bool", key)
	}
}

func TestGetGallery(t *testing.T) {
	m, r := setupGalleryRouter()
	m.catalog.On("List", mock.Anything).Return(handlerSources, nil)

	w := doRequest(r, http.MethodGet, testPrefix+"/gallery", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.Bytes()
	assertFieldType(t, body, "title", gjson.String)
	assertFieldType(t, body, "apiVersion", gjson.String)
	assertFieldBool(t, body, "exhibitsConfigured")
	assertFieldBool(t, body, "hideGalleryWithoutExhibits")
	assert.Equal(t, "Gallery", gjson.GetBytes(body, "title").String())
	assert.Equal(t, "1.0", gjson.GetBytes(body, "apiVersion").String())
	assert.True(t, gjson.GetBytes(body, "exhibitsConfigured").Bool())
}

func TestGetGallery_CatalogUnavailable(t *testing.T) {
	m, r := setupGalleryRouter()
	m.catalog.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	w := doRequest(r, http.MethodGet, testPrefix+"/gallery", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, gjson.Get(w.Body.String(), "error").String(), "catalog")
}

func TestListExhibits_Contract(t *testing.T) {
	m, r := setupGalleryRouter()
	updated := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	m.catalog.On("List", mock.Anything).Return(handlerSources, nil)
	m.inspector.On("Inspect", mock.Anything, filepath.Join("/srv/gallery", "nvidia-cuda-tutorial"), "").
		Return(domain.RepoState{Cloned: true, Revision: "abc", LastUpdated: updated, UpdatesAvailable: true}, nil)
	m.inspector.On("Inspect", mock.Anything, filepath.Join("/srv/gallery", "nebari"), "").
		Return(domain.RepoState{}, nil)

	w := doRequest(r, http.MethodGet, testPrefix+"/exhibits", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.Bytes()
	assert.Equal(t, int64(2), gjson.GetBytes(body, "exhibits.#").Int())

	first := []byte(gjson.GetBytes(body, "exhibits.0").Raw)
	assertFieldType(t, first, "id", gjson.Number)
	assertFieldType(t, first, "title", gjson.String)
	assertFieldType(t, first, "localPath", gjson.String)
	assertFieldType(t, first, "icon", gjson.String)
	assertFieldBool(t, first, "isCloned")
	assertFieldBool(t, first, "updatesAvailable")
	assert.Equal(t, "abc", gjson.GetBytes(first, "revision").String())
	assert.Equal(t, "2024-01-02T03:04:05Z", gjson.GetBytes(first, "lastUpdated").String())
	assert.Equal(t, "https://opengraph.githubassets.com/1/numba/nvidia-cuda-tutorial", gjson.GetBytes(first, "icon").String())

	second := []byte(gjson.GetBytes(body, "exhibits.1").Raw)
	assert.Equal(t, int64(1), gjson.GetBytes(second, "id").Int())
	assert.True(t, gjson.GetBytes(second, "icon").Exists())
	assert.Equal(t, "", gjson.GetBytes(second, "icon").String())
	assert.False(t, gjson.GetBytes(second, "description").Exists())
	assert.False(t, gjson.GetBytes(second, "updatesAvailable").Exists())
	assert.False(t, gjson.GetBytes(second, "lastUpdated").Exists())
}

func TestPullExhibit(t *testing.T) {
	m, r := setupGalleryRouter()
	localPath := filepath.Join("/srv/gallery", "nvidia-cuda-tutorial")

	m.catalog.On("List", mock.Anything).Return(handlerSources, nil)
	m.syncer.On("Sync", mock.Anything, handlerSources[0], localPath).Return(domain.SyncCloned, nil)
	m.inspector.On("Inspect", mock.Anything, localPath, "").
		Return(domain.RepoState{Cloned: true, Revision: "abc"}, nil)

	body, _ := json.Marshal(map[string]interface{}{"exhibit_id": 0})
	w := doRequest(r, http.MethodPost, testPrefix+"/pull", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "exhibit.isCloned").Bool())
	assert.Equal(t, `exhibit "Numba for CUDA" cloned`, gjson.Get(w.Body.String(), "message").String())
}

func TestPullExhibit_MessageFollowsSyncAction(t *testing.T) {
	tests := []struct {
		action domain.SyncAction
		want   string
	}{
		{domain.SyncCloned, `exhibit "Numba for CUDA" cloned`},
		{domain.SyncUpdated, `exhibit "Numba for CUDA" updated`},
		{domain.SyncUpToDate, `exhibit "Numba for CUDA" is up to date`},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			m, r := setupGalleryRouter()
			m.catalog.On("List", mock.Anything).Return(handlerSources, nil)
			m.syncer.On("Sync", mock.Anything, mock.Anything, mock.Anything).Return(tt.action, nil)
			m.inspector.On("Inspect", mock.Anything, mock.Anything, "").
				Return(domain.RepoState{Cloned: true, Revision: "abc"}, nil)

			w := doRequest(r, http.MethodPost, testPrefix+"/pull", []byte(`{"exhibit_id": 0}`))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, gjson.Get(w.Body.String(), "message").String())
		})
	}
}

func TestPullExhibit_CheckoutConflict(t *testing.T) {
	m, r := setupGalleryRouter()
	m.catalog.On("List", mock.Anything).Return(handlerSources, nil)
	m.syncer.On("Sync", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.SyncAction(""), fmt.Errorf("%w: /srv/gallery/nebari is not empty", domain.ErrCheckoutConflict))

	w := doRequest(r, http.MethodPost, testPrefix+"/pull", []byte(`{"exhibit_id": 1}`))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPullExhibit_NotFound(t *testing.T) {
	m, r := setupGalleryRouter()
	m.catalog.On("List", mock.Anything).Return(handlerSources, nil)

	body, _ := json.Marshal(map[string]interface{}{"exhibit_id": 7})
	w := doRequest(r, http.MethodPost, testPrefix+"/pull", body)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPullExhibit_MissingID(t *testing.T) {
	_, r := setupGalleryRouter()

	w := doRequest(r, http.MethodPost, testPrefix+"/pull", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPullExhibit_NegativeID(t *testing.T) {
	_, r := setupGalleryRouter()

	w := doRequest(r, http.MethodPost, testPrefix+"/pull", []byte(`{"exhibit_id": -3}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPullExhibit_GitUnavailable(t *testing.T) {
	m, r := setupGalleryRouter()
	m.catalog.On("List", mock.Anything).Return(handlerSources, nil)
	m.syncer.On("Sync", mock.Anything, mock.Anything, mock.Anything).Return(domain.SyncAction(""), domain.ErrGitUnavailable)

	w := doRequest(r, http.MethodPost, testPrefix+"/pull", []byte(`{"exhibit_id": 1}`))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPullExhibit_SyncFailed(t *testing.T) {
	m, r := setupGalleryRouter()
	m.catalog.On("List", mock.Anything).Return(handlerSources, nil)
	m.syncer.On("Sync", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.SyncAction(""), errors.Join(domain.ErrSyncFailed, errors.New("git clone: exit status 128")))

	w := doRequest(r, http.MethodPost, testPrefix+"/pull", []byte(`{"exhibit_id": 1}`))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
