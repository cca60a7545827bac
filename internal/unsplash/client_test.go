package unsplash

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splash-go/internal/model"
	"splash-go/internal/resource"
)

type staticSession string

func (s staticSession) AccessToken(context.Context) (string, error) { return string(s), nil }

func newTestClient(t *testing.T, h http.HandlerFunc, session SessionReader) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{
		BaseURL:   srv.URL,
		AccessKey: "key-123",
		Timeout:   5 * time.Second,
		Session:   session,
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresAccessKey(t *testing.T) {
	_, err := NewClient(Options{})
	require.Error(t, err)
}

func TestClient_AuthorizationHeader(t *testing.T) {
	var got atomic.Value
	h := func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get("Authorization"))
		assert.Equal(t, "v1", r.Header.Get("Accept-Version"))
		_, _ = w.Write([]byte(`{"id":"p1"}`))
	}

	anon := NewPhotoService(newTestClient(t, h, nil))
	_, err := anon.GetPhoto(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Client-ID key-123", got.Load())

	empty := NewPhotoService(newTestClient(t, h, staticSession("")))
	_, err = empty.GetPhoto(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Client-ID key-123", got.Load())

	authed := NewPhotoService(newTestClient(t, h, staticSession("tok")))
	_, err = authed.GetPhoto(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", got.Load())
}

func TestClient_StatusBuckets(t *testing.T) {
	for code, reason := range map[int]string{
		http.StatusUnauthorized:       "Unauthorized",
		http.StatusServiceUnavailable: "Internal server error",
		http.StatusNotFound:           "Not found",
		http.StatusForbidden:          "Unknown error",
	} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = w.Write([]byte(`{"errors":["nope"]}`))
		}, nil)

		res, err := NewPhotoService(c).ListPhotos(context.Background(), 1, 10, "latest")
		require.NoError(t, err)
		require.True(t, res.IsError())

		gotCode, ok := res.Code()
		require.True(t, ok)
		assert.Equal(t, code, gotCode)
		gotReason, _ := res.Reason()
		assert.Equal(t, reason, gotReason)
	}
}

func TestClient_TolerantDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"p1","width":"wide","likes":3,"user":{"username":"jane"}}`))
	}, nil)

	res, err := NewPhotoService(c).GetPhoto(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	d, _ := res.Value()
	p := d.ToDomain()
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 0, p.Width)
	assert.Equal(t, 3, p.Likes)
	require.NotNil(t, p.User)
	assert.Equal(t, "jane", p.User.Username)
}

func TestClient_SyntaxErrorIsTransportFault(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}, nil)

	res, err := NewPhotoService(c).GetPhoto(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, res.IsError())
	_, hasCode := res.Code()
	assert.False(t, hasCode)
}

func TestClient_ConnectionRefusedHasNoCode(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewClient(Options{BaseURL: base, AccessKey: "k", Timeout: time.Second})
	require.NoError(t, err)

	res, err := NewTopicService(c).GetTopic(context.Background(), "nature")
	require.NoError(t, err)
	require.True(t, res.IsError())
	_, hasCode := res.Code()
	assert.False(t, hasCode)
	reason, ok := res.Reason()
	assert.True(t, ok)
	assert.NotEmpty(t, reason)
}

func TestClient_CancellationPropagates(t *testing.T) {
	started := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	res, err := NewPhotoService(c).ListPhotos(ctx, 1, 10, "")
	require.ErrorIs(t, err, context.Canceled)
	assert.NotEqual(t, resource.KindError, res.Kind())
}

func TestPhotoService_ListQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "30", r.URL.Query().Get("per_page"))
		assert.Equal(t, "latest", r.URL.Query().Get("order_by"))
		_, _ = w.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
	}, nil)

	res, err := NewPhotoService(c).ListPhotos(context.Background(), 2, 30, string(model.OrderLatest))
	require.NoError(t, err)
	items, ok := res.Value()
	require.True(t, ok)
	require.Len(t, items, 2)
}

func TestSearchService_Filters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "forest", q.Get("query"))
		assert.Equal(t, "green", q.Get("color"))
		assert.Equal(t, "portrait", q.Get("orientation"))
		assert.False(t, q.Has("content_filter"))
		_, _ = w.Write([]byte(`{"total":1,"total_pages":1,"results":[{"id":"x"}]}`))
	}, nil)

	res, err := NewSearchService(c).SearchPhotos(context.Background(),
		PhotoSearch{Query: "forest", Color: "green", Orientation: "portrait"}, 1, 10)
	require.NoError(t, err)
	r, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, 1, r.TotalCount())
}

func TestCollectionService_AddAndRemovePhoto(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/collections/c1/add":
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "p1", body["photo_id"])
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"photo":{"id":"p1"},"collection":{"id":"c1"}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/collections/c1/remove":
			assert.Equal(t, "p1", r.URL.Query().Get("photo_id"))
			_, _ = w.Write([]byte(`{"photo":{"id":"p1"},"collection":{"id":"c1"}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/collections/c1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, nil)
	svc := NewCollectionService(c)

	added, err := svc.AddPhoto(context.Background(), "c1", "p1")
	require.NoError(t, err)
	v, ok := added.Value()
	require.True(t, ok)
	assert.Equal(t, "p1", v.ToDomain().Photo.ID)

	removed, err := svc.RemovePhoto(context.Background(), "c1", "p1")
	require.NoError(t, err)
	assert.True(t, removed.IsSuccess())

	deleted, err := svc.DeleteCollection(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, deleted.IsSuccess())
}

func TestUserService_UpdateMeSendsOnlySetFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/me", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"bio": "new bio"}, body)
		_, _ = w.Write([]byte(`{"username":"jane","bio":"new bio"}`))
	}, staticSession("tok"))

	bio := "new bio"
	res, err := NewUserService(c).UpdateMe(context.Background(), model.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	u, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, "jane", u.ToDomain().Username)
}

func TestLoginService_ExchangeCode(t *testing.T) {
	var lastCode string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/token", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		lastCode = r.PostForm.Get("code")
		assert.Equal(t, "key-123", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		if lastCode == "taken" {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"conflict","error_description":"already used"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","scope":"public read_user","created_at":1700000000}`))
	}, nil)

	svc := NewLoginService(c, OAuthOptions{
		OAuthURL:    c.baseURL + "/oauth",
		SecretKey:   "secret",
		RedirectURI: "urn:ietf:wg:oauth:2.0:oob",
	})

	ok, err := svc.ExchangeCode(context.Background(), "abc")
	require.NoError(t, err)
	tok, success := ok.Value()
	require.True(t, success)
	d := tok.ToDomain()
	assert.Equal(t, "abc", lastCode)
	assert.Equal(t, "tok-1", d.AccessToken)
	assert.Equal(t, "public read_user", d.Scope)
	assert.Equal(t, int64(1700000000), d.CreatedAt)

	conflict, err := svc.ExchangeCode(context.Background(), "taken")
	require.NoError(t, err)
	require.True(t, conflict.IsError())
	code, _ := conflict.Code()
	assert.Equal(t, http.StatusConflict, code)
	reason, _ := conflict.Reason()
	assert.Equal(t, "Conflict", reason)
}

func TestLoginService_AuthorizeURL(t *testing.T) {
	c, err := NewClient(Options{AccessKey: "key-123"})
	require.NoError(t, err)

	raw := NewLoginService(c, OAuthOptions{RedirectURI: "http://localhost/cb"}).AuthorizeURL("s1")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "unsplash.com", u.Host)
	assert.Equal(t, "/oauth/authorize", u.Path)
	q := u.Query()
	assert.Equal(t, "key-123", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "s1", q.Get("state"))
	assert.Equal(t, strings.Join(DefaultScopes, " "), q.Get("scope"))
}

func TestClient_ContextTokenOverridesSession(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"username":"jane"}`))
	}, staticSession("stored"))

	_, err := NewUserService(c).Me(WithAccessToken(context.Background(), "fresh"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh", got)
}
