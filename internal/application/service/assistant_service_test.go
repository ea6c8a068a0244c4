package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truythudien/truythu-api/internal/config"
)

func assistantCfg(endpoint, apiKey string) config.AssistantConfig {
	return config.AssistantConfig{
		APIKey:   apiKey,
		Endpoint: endpoint,
		Model:    "kimi-k2.5-free",
		Timeout:  5 * time.Second,
	}
}

func TestSearchWithoutAPIKeyFallsBack(t *testing.T) {
	svc := NewAssistantService(assistantCfg("http://unused.invalid", ""))

	ans := svc.Search(context.Background(), "Giá điện bậc 3 hiện nay?", "")

	assert.True(t, ans.Fallback)
	assert.Equal(t, "missing_ai_key", ans.Reason)
	assert.NotEmpty(t, ans.Content)
}

func TestSearchProxiesToUpstream(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Theo Quyết định 1279/QĐ-BCT..."}},
			},
		})
	}))
	defer server.Close()

	svc := NewAssistantService(assistantCfg(server.URL, "sk-test"))
	ans := svc.Search(context.Background(), "Giá điện bậc 3?", "")

	assert.False(t, ans.Fallback)
	assert.Empty(t, ans.Reason)
	assert.Equal(t, "Theo Quyết định 1279/QĐ-BCT...", ans.Content)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "kimi-k2.5-free", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "Giá điện bậc 3?", gotReq.Messages[1].Content)
}

func TestSearchHonorsModelOverride(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	svc := NewAssistantService(assistantCfg(server.URL, "sk-test"))
	svc.Search(context.Background(), "câu hỏi", "gpt-4o-mini")

	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
}

func TestSearchUpstreamFailureFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200 status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
		}},
		{"empty choices", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := NewAssistantService(assistantCfg(server.URL, "sk-test"))
			ans := svc.Search(context.Background(), "xử phạt trộm điện", "")

			assert.True(t, ans.Fallback)
			assert.Equal(t, "upstream_error", ans.Reason)
			assert.NotEmpty(t, ans.Content)
		})
	}
}

func TestSearchNetworkFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewAssistantService(assistantCfg(server.URL, "sk-test"))
	ans := svc.Search(context.Background(), "kiểm tra điện lực", "")

	assert.True(t, ans.Fallback)
	assert.Equal(t, "network_error", ans.Reason)
	assert.NotEmpty(t, ans.Content)
}

func TestFallbackLegalResponseCategories(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"tariff accented", "Giá điện bậc 4 là bao nhiêu?", "QĐ 1279"},
		{"tariff unaccented", "gia dien sinh hoat", "QĐ 1279"},
		{"sanctions", "mức xử phạt hành vi trộm cắp điện", "17/2022"},
		{"sanctions unaccented", "vi pham hop dong dien", "17/2022"},
		{"inspection", "thủ tục kiểm tra điện lực", "42/2022"},
		{"dispute", "giải quyết tranh chấp hợp đồng mua bán điện", "42/2022"},
		{"unknown topic", "thời tiết hôm nay", "chế độ dự phòng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackLegalResponse(tt.query)
			assert.Contains(t, got, tt.want)
		})
	}
}
