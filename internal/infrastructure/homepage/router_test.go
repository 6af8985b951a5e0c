package homepage_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/domain/service"
	"github.com/bnema/mytab/internal/infrastructure/favicon"
	"github.com/bnema/mytab/internal/infrastructure/homepage"
	"github.com/bnema/mytab/internal/infrastructure/persistence/memory"
	"github.com/bnema/mytab/internal/infrastructure/storage"
	"github.com/bnema/mytab/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type okPreloader struct{ fail bool }

func (p okPreloader) Preload(_ context.Context, url string) (string, error) {
	if p.fail {
		return "", errors.New("decode failed")
	}
	return url, nil
}

type emptyBing struct{}

func (emptyBing) FetchImages(context.Context) ([]entity.BingImage, error) {
	return nil, errors.New("offline")
}

type staticTree struct{}

func (staticTree) Name() string { return "static" }

func (staticTree) GetTree(context.Context) ([]entity.BookmarkNode, error) {
	return []entity.BookmarkNode{
		&entity.BookmarkFolder{ID: "1", Title: "Bar", Children: []entity.BookmarkNode{
			&entity.BookmarkLink{ID: "2", Title: "Go", URL: "https://go.dev"},
			&entity.BookmarkLink{ID: "3", Title: "GitHub", URL: "https://github.com"},
		}},
	}, nil
}

type stubFavicons struct{}

func (stubFavicons) Icon(_ context.Context, pageURL string) ([]byte, string, error) {
	if strings.Contains(pageURL, "192.168.") {
		return nil, "", service.ErrNoFavicon
	}
	return []byte("\x89PNG"), "image/png", nil
}

func (stubFavicons) Clear() error { return nil }

type fixture struct {
	handler http.Handler
	store   *settings.Store
}

func newFixture(t *testing.T, preloader okPreloader) *fixture {
	t.Helper()
	ctx := testContext()
	store := settings.NewStore(ctx, storage.NewAdapter(memory.NewKeyValueRepository(), ""))

	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}

	handler := homepage.NewHandler(ctx, homepage.Config{
		Store:       store,
		BookmarksUC: usecase.NewManageBookmarksUseCase(store).WithIDGenerator(ids),
		PrefsUC:     usecase.NewUpdatePreferencesUseCase(store),
		SearchUC:    usecase.NewSearchUseCase(store),
		WallpaperUC: usecase.NewResolveWallpaperUseCase(store, preloader, emptyBing{}, usecase.DefaultWallpaperOptions()).
			WithRandom(func(int) int { return 0 }),
		TransferUC: usecase.NewTransferConfigUseCase(store),
		ImportUC:   usecase.NewImportBookmarksUseCase(store, staticTree{}, favicon.NewResolver("")).WithIDGenerator(ids),
		Favicons:   stubFavicons{},
	})
	return &fixture{handler: handler, store: store}
}

func (f *fixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, homepage.Response) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	var resp homepage.Response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	}
	return rec, resp
}

func decodeData[T any](t *testing.T, resp homepage.Response) T {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestState_ReturnsDefaults(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, resp := f.do(t, http.MethodGet, "/api/state", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.RequestID)

	state := decodeData[entity.Settings](t, resp)
	assert.Equal(t, entity.DefaultGroupID, state.ActiveGroupID)
	assert.Len(t, state.Groups, 4)
	assert.True(t, state.ShowClock)
}

func TestBookmarks_CreateUpdateMoveDelete(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, resp := f.do(t, http.MethodPost, "/api/bookmarks", `{"title":"Go","url":"https://go.dev","groupId":"dev"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[entity.Bookmark](t, resp)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "dev", created.GroupID)

	rec, resp = f.do(t, http.MethodPatch, "/api/bookmarks/id-1", `{"title":"Golang"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Golang", decodeData[entity.Bookmark](t, resp).Title)

	rec, resp = f.do(t, http.MethodPost, "/api/bookmarks/id-1/move", `{"groupId":"media"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "media", decodeData[entity.Bookmark](t, resp).GroupID)

	_, resp = f.do(t, http.MethodGet, "/api/bookmarks?group=media", "")
	assert.Len(t, decodeData[[]entity.Bookmark](t, resp), 1)

	rec, _ = f.do(t, http.MethodDelete, "/api/bookmarks/id-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, entity.FindBookmark(f.store.Bookmarks.Get(), "id-1"))
}

func TestBookmarks_Errors(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, resp := f.do(t, http.MethodPost, "/api/bookmarks", `{"title":"no url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "url is required")

	rec, _ = f.do(t, http.MethodPost, "/api/bookmarks", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodPatch, "/api/bookmarks/missing", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGroups_DeleteReassignsToDefault(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, resp := f.do(t, http.MethodPost, "/api/groups", `{"name":"Work","icon":"Briefcase"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	group := decodeData[entity.Group](t, resp)
	assert.Equal(t, "Work", group.Name)

	f.do(t, http.MethodPost, "/api/bookmarks", fmt.Sprintf(`{"url":"https://example.com","groupId":%q}`, group.ID))
	rec, _ = f.do(t, http.MethodPut, "/api/groups/active", fmt.Sprintf(`{"id":%q}`, group.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodDelete, "/api/groups/"+group.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, entity.DefaultGroupID, f.store.ActiveGroupID.Get())
	for _, b := range f.store.Bookmarks.Get() {
		assert.GreaterOrEqual(t, entity.FindGroup(f.store.Groups.Get(), b.GroupID), 0, "orphaned bookmark %s", b.ID)
	}
}

func TestGroups_DefaultIsProtected(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, resp := f.do(t, http.MethodDelete, "/api/groups/default", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Len(t, f.store.Groups.Get(), 4)

	rec, _ = f.do(t, http.MethodDelete, "/api/groups/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = f.do(t, http.MethodPut, "/api/groups/active", `{"id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreferences_ValidationIsAtomic(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, _ := f.do(t, http.MethodPatch, "/api/preferences", `{"showClock":false,"searchEngine":"altavista"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, f.store.ShowClock.Get())

	rec, resp := f.do(t, http.MethodPatch, "/api/preferences", `{"showClock":false,"backgroundBrightness":140}`)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeData[entity.Settings](t, resp)
	assert.False(t, state.ShowClock)
	assert.Equal(t, 100, state.BackgroundBrightness)
}

func TestWallpaper_LocalCategory(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, resp := f.do(t, http.MethodPost, "/api/wallpaper", `{"source":"local","category":"mountain"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[map[string]string](t, resp)["backgroundUrl"]
	assert.Equal(t, entity.WallpapersByCategory("mountain")[0].URL, got)
	assert.Equal(t, got, f.store.BackgroundURL.Get())
}

func TestWallpaper_PreloadFailureKeepsBackground(t *testing.T) {
	f := newFixture(t, okPreloader{fail: true})
	before := f.store.BackgroundURL.Get()

	rec, resp := f.do(t, http.MethodPost, "/api/wallpaper", `{"url":"https://example.com/broken.jpg"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, before, f.store.BackgroundURL.Get())

	rec, _ = f.do(t, http.MethodPost, "/api/wallpaper", `{"source":"flickr"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalog(t *testing.T) {
	f := newFixture(t, okPreloader{})

	_, resp := f.do(t, http.MethodGet, "/api/catalog", "")
	catalog := decodeData[homepage.Catalog](t, resp)
	assert.Len(t, catalog.SearchEngines, len(entity.SearchEngines()))
	assert.NotEmpty(t, catalog.WallpaperCategories)
	assert.NotEmpty(t, catalog.Icons)
}

func TestConfig_ExportImportRoundTrip(t *testing.T) {
	f := newFixture(t, okPreloader{})
	f.do(t, http.MethodPost, "/api/groups", `{"name":"Work"}`)
	f.do(t, http.MethodPost, "/api/bookmarks", `{"url":"https://go.dev","groupId":"id-1"}`)

	rec, _ := f.do(t, http.MethodGet, "/api/config/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "mytab-config-")
	exported := rec.Body.String()

	other := newFixture(t, okPreloader{})
	rec, resp := other.do(t, http.MethodPost, "/api/config/import", exported)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, resp.Success)

	assert.Equal(t, f.store.Groups.Get(), other.store.Groups.Get())
	assert.Equal(t, f.store.Bookmarks.Get(), other.store.Bookmarks.Get())
}

func TestConfig_ImportRejectsInvalidDocuments(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, resp := f.do(t, http.MethodPost, "/api/config/import", `{"version":0,"data":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "unsupported")

	rec, _ = f.do(t, http.MethodPost, "/api/config/import", `{"version":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodPost, "/api/config/import", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfig_Schema(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, _ := f.do(t, http.MethodGet, "/api/config/schema", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "exportTime")
}

func TestBrowserBookmarks_ListAndImport(t *testing.T) {
	f := newFixture(t, okPreloader{})

	_, resp := f.do(t, http.MethodGet, "/api/browser-bookmarks", "")
	listed := decodeData[[]entity.BrowserBookmark](t, resp)
	require.Len(t, listed, 2)

	payload, err := json.Marshal(map[string]any{"bookmarks": listed, "groupId": "dev"})
	require.NoError(t, err)

	_, resp = f.do(t, http.MethodPost, "/api/browser-bookmarks/import", string(payload))
	assert.Len(t, decodeData[[]entity.Bookmark](t, resp), 2)

	_, resp = f.do(t, http.MethodPost, "/api/browser-bookmarks/import", string(payload))
	assert.Empty(t, decodeData[[]entity.Bookmark](t, resp), "URLs already present are skipped")
}

func TestSearch_Redirects(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, _ := f.do(t, http.MethodGet, "/search?q=golang+generics", "")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://www.google.com/search?q=golang%20generics", rec.Header().Get("Location"))

	rec, _ = f.do(t, http.MethodGet, "/search?q=%21ddg+zerolog", "")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://duckduckgo.com/?q=zerolog", rec.Header().Get("Location"))

	rec, _ = f.do(t, http.MethodGet, "/search?q=+", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvents_StreamsFieldChanges(t *testing.T) {
	f := newFixture(t, okPreloader{})
	srv := httptest.NewServer(f.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() (string, string) {
		var name, data string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event: "):
				name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "" && name != "":
				return name, data
			}
		}
	}

	name, _ := readEvent()
	require.Equal(t, "state", name)

	f.store.ShowClock.Set(false)

	name, data := readEvent()
	assert.Equal(t, entity.KeyShowClock, name)
	assert.Equal(t, "false", data)
}

func TestFavicon(t *testing.T) {
	f := newFixture(t, okPreloader{})

	rec, _ := f.do(t, http.MethodGet, "/api/favicon?url=https%3A%2F%2Fgo.dev", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=")
	assert.Equal(t, "\x89PNG", rec.Body.String())

	rec, resp := f.do(t, http.MethodGet, "/api/favicon?url=http%3A%2F%2F192.168.0.1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)

	rec, _ = f.do(t, http.MethodGet, "/api/favicon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
