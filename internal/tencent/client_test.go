package tencent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/models"
)

func TestSymbolFor(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"600519", "s_sh600519", true},
		{"603259", "s_sh603259", true},
		{"000858", "s_sz000858", true},
		{"300750", "s_sz300750", true},
		{"688012", "s_sh688012", true},
		{"430047", "", false},
		{"830799", "", false},
		{"101000", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := SymbolFor(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("SymbolFor(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("SymbolFor(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestFetchChangePercent(t *testing.T) {
	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`v_s_sh603259="1~药明康德~603259~93.20~-2.00~-2.10~48291~45123~~2761.45~GP-A";`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL + "/"))
	change := client.FetchChangePercent(context.Background(), "603259")

	assert.Equal(t, "-2.10%", change)
	assert.Equal(t, "/q=s_sh603259", gotPath)
	assert.Equal(t, common.DefaultUserAgent, gotUA)
}

func TestFetchChangePercent_PositiveGetsExplicitSign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`v_s_sh600519="1~贵州茅台~600519~1700.00~39.30~2.37~54321~92300~~21350.12~GP-A";`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL + "/"))
	assert.Equal(t, "+2.37%", client.FetchChangePercent(context.Background(), "600519"))
}

func TestFetchChangePercent_UnroutableCodeSkipsNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL + "/"))
	for _, code := range []string{"430047", "830799", "900901", ""} {
		assert.Equal(t, models.ChangeUnavailable, client.FetchChangePercent(context.Background(), code))
	}
	assert.Equal(t, 0, calls)
}

func TestFetchChangePercent_FailureModes(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {}},
		{"no quoted record", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`v_pv_none=1;`))
		}},
		{"too few fields", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`v_s_sh600519="1~贵州茅台~600519~1700.00~39.30";`))
		}},
		{"unparseable change", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`v_s_sh600519="1~贵州茅台~600519~1700.00~39.30~n/a~1";`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(WithBaseURL(server.URL + "/"))
			assert.Equal(t, models.ChangeUnavailable, client.FetchChangePercent(context.Background(), "600519"))
		})
	}
}

func TestFetchChangePercent_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(WithBaseURL(server.URL + "/"))
	assert.Equal(t, models.ChangeUnavailable, client.FetchChangePercent(context.Background(), "600519"))
}
