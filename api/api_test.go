package api_test

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stockd/inventory-service/api"
	"github.com/stockd/inventory-service/config"
	"github.com/stockd/inventory-service/core/inventory"
	"github.com/stockd/inventory-service/core/user"
	"github.com/stockd/inventory-service/testutil"
)

func TestMain(m *testing.M) {
	testutil.ConfigLogging()
	api.ConfigureMetrics()
	os.Exit(m.Run())
}

func TestCorsConfig(t *testing.T) {
	tests := []struct {
		origin string
		want   string
	}{
		{origin: "https://evilorigin.com", want: ""},
		{origin: "http://evilorigin.com", want: ""},
		{origin: "http://localhost:8080", want: "http://localhost:8080"},
		{origin: "http://localhost:3000", want: "http://localhost:3000"},
		{origin: "https://localhost:8080", want: "https://localhost:8080"},
		{origin: "https://localhostevil:3000", want: ""},
	}

	r := getRouter()
	ts := httptest.NewServer(r)
	defer ts.Close()

	client := http.DefaultClient
	url := ts.URL + "/health"

	for _, test := range tests {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Add("Origin", test.origin)

		res, err := client.Do(req)
		if err != nil {
			t.Fatal(err)
		}

		got := res.Header.Get("Access-Control-Allow-Origin")
		if got != test.want {
			t.Errorf("failed cors test got=[%v] want=[%v]", got, test.want)
		}
	}
}

func TestHealth(t *testing.T) {
	r := getRouter()
	ts := httptest.NewServer(r)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}

	if res.StatusCode != http.StatusOK {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "UP" {
		t.Errorf("body got=[%s] want=[UP]", body)
	}
}

func TestUserRoutesRequireAuth(t *testing.T) {
	r := getRouter()
	ts := httptest.NewServer(r)
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/v1/user", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}

	if res.StatusCode != http.StatusUnauthorized {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusUnauthorized)
	}
}

func getRouter() chi.Router {
	cfg := config.LoadDefaults()
	invSvc := inventory.NewMockInventoryService()
	usrSvc := user.NewMockUserService()
	return api.ConfigureRouter(cfg, &invSvc, &usrSvc)
}

func unmarshal(res *http.Response, v interface{}, t *testing.T) {
	t.Helper()
	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	err = json.Unmarshal(body, v)
	if err != nil {
		t.Fatal(err)
	}
}
