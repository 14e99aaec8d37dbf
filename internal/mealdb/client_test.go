package mealdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arrabiataJSON = `{"meals":[{
	"idMeal":"52771",
	"strMeal":"Spicy Arrabiata Penne",
	"strCategory":"Vegetarian",
	"strArea":"Italian",
	"strMealThumb":"https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
	"strYoutube":"https://www.youtube.com/watch?v=1IszT_guI08",
	"strIngredient1":"penne rigate","strMeasure1":"1 pound",
	"strIngredient2":"olive oil","strMeasure2":"1/4 cup",
	"strIngredient3":"","strMeasure3":" ",
	"strIngredient4":null,"strMeasure4":null,
	"strIngredient5":"basil","strMeasure5":"6 leaves"
},{"idMeal":"2","strMeal":"Second"}]}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "1", 2*time.Second), &hits
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "", 0)

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultAPIKey, c.apiKey)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestClient_URLs(t *testing.T) {
	c := NewClient("https://example.com/api/json/v1/", "1", time.Second)

	assert.Equal(t, "https://example.com/api/json/v1/1/random.php", c.RandomURL())
	assert.Equal(t, "https://example.com/api/json/v1/1/search.php?s=Arrabiata", c.SearchURL("Arrabiata"))
	assert.Equal(t, "https://example.com/api/json/v1/1/search.php?s=mac+%26+cheese", c.SearchURL("mac & cheese"))
}

func TestSearchByName_EmptyTermSkipsNetwork(t *testing.T) {
	c, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(arrabiataJSON))
	})

	for _, term := range []string{"", "   "} {
		recipe, err := c.SearchByName(context.Background(), term)
		assert.Nil(t, recipe)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestSearchByName_ReturnsFirstMeal(t *testing.T) {
	var gotPath, gotQuery string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get(SearchParam)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(arrabiataJSON))
	})

	recipe, err := c.SearchByName(context.Background(), " Arrabiata ")
	require.NoError(t, err)
	require.NotNil(t, recipe)

	assert.Equal(t, "/1/search.php", gotPath)
	assert.Equal(t, "Arrabiata", gotQuery)
	assert.Equal(t, "52771", recipe.ID)
	assert.Equal(t, "Spicy Arrabiata Penne", recipe.Name)
	assert.Equal(t, "Italian", recipe.Area)
	assert.Equal(t, "Vegetarian", recipe.Category)
	assert.Equal(t, "https://www.youtube.com/watch?v=1IszT_guI08", recipe.VideoURL)
	assert.Equal(t, "penne rigate, olive oil, basil", recipe.JoinedIngredients())
	assert.Equal(t, "1 pound, 1/4 cup, 6 leaves", recipe.JoinedMeasurements())
}

func TestSearchByName_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null list", `{"meals":null}`},
		{"empty list", `{"meals":[]}`},
		{"missing field", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			recipe, err := c.SearchByName(context.Background(), "zzz")
			assert.Nil(t, recipe)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestRandom(t *testing.T) {
	var gotPath string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(arrabiataJSON))
	})

	recipe, err := c.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/1/random.php", gotPath)
	assert.Equal(t, "Spicy Arrabiata Penne", recipe.Name)
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
	}{
		{
			name: "non-json body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>oops</html>"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, tt.handler)

			_, err := c.Random(context.Background())
			require.Error(t, err)

			var fetchErr *FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, OpRandom, fetchErr.Op)
			assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewClient(srv.URL, "1", time.Second)
	srv.Close()

	_, err := c.SearchByName(context.Background(), "Arrabiata")

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, OpSearch, fetchErr.Op)
	assert.Equal(t, 0, fetchErr.StatusCode)
}

func TestFetch_ContextCanceled(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(arrabiataJSON))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Random(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
