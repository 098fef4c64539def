package aromatone_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mughesh03/aromatone"
	"github.com/mughesh03/aromatone/internal/adapters/file"
	"github.com/mughesh03/aromatone/internal/config"
	"github.com/mughesh03/aromatone/pkg/adapters/memory"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/persistence/middleware"
	"github.com/mughesh03/aromatone/pkg/recipe"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse()
	require.NoError(t, err)
	return cfg
}

func getJSON(t *testing.T, h http.Handler, path string) map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestNew_Defaults(t *testing.T) {
	app, err := aromatone.New(testConfig(t))
	require.NoError(t, err)
	defer app.Close()

	assert.IsType(t, recipe.MockGenerator{}, app.Generator)
	assert.IsType(t, &memory.Store{}, app.Sessions.Store())

	info := getJSON(t, app.Handler(), "/info")
	assert.Equal(t, "aromatone", info["app"])
	assert.NotEmpty(t, info["version"])
	assert.Equal(t, true, info["proxy"])
	assert.ElementsMatch(t, []any{"recipe-flow", "recipe-setup", "signup"}, info["wizards"])

	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNew_ProxyWithoutKey(t *testing.T) {
	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer upstream.Close()

	cfg := testConfig(t)
	cfg.NovitaAPIKey = ""
	cfg.NovitaBaseURL = upstream.URL
	app, err := aromatone.New(cfg)
	require.NoError(t, err)
	defer app.Close()

	for _, path := range []string{"/api/chat/completions", "/api/txt2speech"} {
		w := httptest.NewRecorder()
		app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"model":"x"}`)))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"message":"invalid api key"}`, w.Body.String(), path)
	}
	assert.Equal(t, "Bearer ", gotAuth)
}

func TestNew_WizardDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.WizardDir = filepath.Join("pkg", "wizard", "testdata")

	app, err := aromatone.New(cfg)
	require.NoError(t, err)
	defer app.Close()

	_, err = app.Registry.Get("pantry")
	assert.NoError(t, err)
}

func TestNew_LLMRequiresKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.RecipeGenerator = config.GeneratorLLM

	_, err := aromatone.New(cfg)
	assert.ErrorContains(t, err, "requires VITE_NOVITA_API_KEY")

	cfg.NovitaAPIKey = "key"
	app, err := aromatone.New(cfg)
	require.NoError(t, err)
	defer app.Close()
	assert.IsType(t, &recipe.LLMGenerator{}, app.Generator)
	assert.Equal(t, true, getJSON(t, app.Handler(), "/info")["proxy"])
}

func TestNew_EncryptedFileStore(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.SessionBackend = config.BackendFile
	cfg.SessionDir = t.TempDir()
	cfg.SessionKey = base64.StdEncoding.EncodeToString(make([]byte, 32))

	app, err := aromatone.New(cfg)
	require.NoError(t, err)
	defer app.Close()

	sess, err := app.Engine.Start(ctx, "signup", "enc-1")
	require.NoError(t, err)
	sess.Form["password"] = "hunter22"
	require.NoError(t, app.Sessions.Create(ctx, sess))

	raw, err := file.New(cfg.SessionDir).Load(ctx, "enc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{middleware.EnvelopeField}, raw.Form.Keys())

	loaded, err := app.Sessions.Load(ctx, "enc-1")
	require.NoError(t, err)
	assert.Equal(t, "hunter22", loaded.Form.String("password"))
}

func TestNew_RedisBackend(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.SessionBackend = config.BackendRedis
	cfg.RedisAddr = mr.Addr()
	cfg.SessionTTL = time.Minute

	app, err := aromatone.New(cfg)
	require.NoError(t, err)

	sess, err := app.Engine.Start(ctx, "recipe-flow", "r-1")
	require.NoError(t, err)
	require.NoError(t, app.Sessions.Create(ctx, sess))

	updated, err := app.Sessions.Update(ctx, "r-1", func(s *domain.Session) (*domain.Session, error) {
		s.Form["desiredDish"] = "risotto"
		return s, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "risotto", updated.Form.String("desiredDish"))

	keys := mr.Keys()
	assert.NotEmpty(t, keys)
	for _, k := range keys {
		assert.Contains(t, k, "aromatone:")
	}
	assert.NoError(t, app.Close())
}

func TestWithStore(t *testing.T) {
	store := memory.NewStore()
	app, err := aromatone.New(testConfig(t), aromatone.WithStore(store))
	require.NoError(t, err)
	assert.Same(t, store, app.Sessions.Store())
}
