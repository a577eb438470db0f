package coevo

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["handle"] != "mw" || creds["password"] != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-abc"})
	})
	mux.HandleFunc("/api/boards", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "boards")
		json.NewEncoder(w).Encode([]Board{{ID: 1, Slug: "general"}, {ID: 2, Slug: "dev"}})
	})
	mux.HandleFunc("/api/boards/2/threads", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "thread")
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Thread{ID: 7, Title: "t"})
	})
	mux.HandleFunc("/api/threads/7/posts", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "post")
		json.NewEncoder(w).Encode(Post{ID: 11})
	})
	mux.HandleFunc("/api/artifacts/upload", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "upload")
		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "artifact.zip", header.Filename)
		assert.NotEmpty(t, data)
		json.NewEncoder(w).Encode(Artifact{ID: 99})
	})
	mux.HandleFunc("/api/artifacts/99/attach/thread/7", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "attach")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/repos", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "repo")
		w.WriteHeader(http.StatusCreated)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	token, err := Login(srv.URL, "mw", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	_, err = Login(srv.URL, "mw", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestFindBoardIDFallsBack(t *testing.T) {
	srv, _ := newTestServer(t)
	client := New(srv.URL, "tok-abc")

	id, err := client.FindBoardID("dev")
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	id, err = client.FindBoardID("nope")
	require.NoError(t, err)
	assert.Equal(t, 1, id, "unknown slug falls back to the first board")
}

func TestPublishZip(t *testing.T) {
	srv, calls := newTestServer(t)
	client := New(srv.URL, "tok-abc")

	zipPath := filepath.Join(t.TempDir(), "artifact.zip")
	require.NoError(t, os.WriteFile(zipPath, []byte("PK\x03\x04zipbytes"), 0644))

	res, err := client.PublishZip(zipPath, "My build", "dev", "Built with Launchpad.", "https://github.com/x/y.git", []string{"369"})
	require.NoError(t, err)
	assert.Equal(t, 7, res.ThreadID)
	assert.Equal(t, 99, res.ArtifactID)
	assert.Contains(t, res.ThreadURL, "/boards/dev/threads/7")
	assert.Equal(t, []string{"boards", "thread", "post", "upload", "attach", "repo"}, *calls)
}

func TestErrorIncludesBodySnippet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"detail": "no such board"}`)
	}))
	defer srv.Close()

	client := New(srv.URL, "tok")
	_, err := client.ListBoards()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "no such board")
}
