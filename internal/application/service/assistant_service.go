package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/truythudien/truythu-api/internal/config"
)

const assistantSystemPrompt = `Bạn là trợ lý pháp lý chuyên nghiệp về lĩnh vực Điện lực tại Việt Nam.
Bạn có kiến thức về các văn bản sau:
1. Luật Điện lực 2024 (61/2024/QH15) - Hiệu lực từ 01/02/2025.
2. Thông tư 60/2025/TT-BCT - Quy định về giá bán điện 2025.
3. Quyết định 1279/QĐ-BCT - Biểu giá bán lẻ điện 2025.
4. Thông tư 42/2022/TT-BCT - Kiểm tra hoạt động điện lực.
5. Nghị định 17/2022/NĐ-CP - Xử phạt vi phạm hành chính điện lực.

Hãy trả lời ngắn gọn, chính xác và trích dẫn văn bản phù hợp.
Nếu không biết chắc chắn, hãy yêu cầu người dùng kiểm tra lại văn bản gốc.`

// AssistantAnswer is the reply returned for a legal-assistant query.
// Fallback is set when the canned responder answered instead of the
// upstream model.
type AssistantAnswer struct {
	Content  string `json:"content"`
	Fallback bool   `json:"fallback,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// AssistantService proxies legal queries to the configured AI endpoint and
// degrades to keyword-matched canned answers when the upstream is not
// usable.
type AssistantService struct {
	cfg    config.AssistantConfig
	client *http.Client
}

// NewAssistantService creates a new assistant service
func NewAssistantService(cfg config.AssistantConfig) *AssistantService {
	return &AssistantService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Search answers a legal query. It never fails: any upstream problem is
// reported inside the answer via the fallback flag and reason.
func (s *AssistantService) Search(ctx context.Context, query, model string) *AssistantAnswer {
	if s.cfg.APIKey == "" {
		return &AssistantAnswer{
			Content:  fallbackLegalResponse(query),
			Fallback: true,
			Reason:   "missing_ai_key",
		}
	}

	if model == "" {
		model = s.cfg.Model
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: assistantSystemPrompt},
			{Role: "user", Content: query},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return &AssistantAnswer{Content: fallbackLegalResponse(query), Fallback: true, Reason: "upstream_error"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &AssistantAnswer{Content: fallbackLegalResponse(query), Fallback: true, Reason: "upstream_error"}
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("assistant proxy error: %v", err)
		return &AssistantAnswer{Content: fallbackLegalResponse(query), Fallback: true, Reason: "network_error"}
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || resp.StatusCode != http.StatusOK || len(parsed.Choices) == 0 {
		return &AssistantAnswer{Content: fallbackLegalResponse(query), Fallback: true, Reason: "upstream_error"}
	}

	return &AssistantAnswer{Content: parsed.Choices[0].Message.Content}
}

// fallbackLegalResponse answers the common query categories offline. The
// keyword lists cover both accented and unaccented Vietnamese input.
func fallbackLegalResponse(query string) string {
	q := strings.ToLower(query)

	if containsAny(q, "giá điện", "gia dien", "bậc", "bac") {
		return "Theo biểu giá hiện hành đang cấu hình trong hệ thống: SH bậc 1-6 lần lượt 1,984 / 2,050 / 2,380 / 2,998 / 3,350 / 3,460 đ/kWh; SXBT 1,987 đ/kWh; KDDV 3,152 đ/kWh; HCSN(BV) 2,072 đ/kWh; HCSN(CS) 2,226 đ/kWh; VAT 8%. Bạn nên đối chiếu văn bản gốc: QĐ 1279/QĐ-BCT và TT 60/2025/TT-BCT."
	}

	if containsAny(q, "xử phạt", "xu phat", "vi phạm", "vi pham") {
		return "Nội dung liên quan xử phạt vi phạm hành chính trong điện lực thuộc Nghị định 17/2022/NĐ-CP (sửa đổi, bổ sung). Bạn nên nêu rõ hành vi cụ thể để tra cứu đúng điều, khoản và mức phạt."
	}

	if containsAny(q, "kiểm tra", "kiem tra", "tranh chấp", "tranh chap") {
		return "Nội dung kiểm tra hoạt động điện lực và giải quyết tranh chấp hợp đồng mua bán điện thuộc Thông tư 42/2022/TT-BCT. Bạn có thể cung cấp tình huống cụ thể để mình trích dẫn theo điều khoản phù hợp."
	}

	return "Hiện hệ thống AI chưa sẵn sàng nên đang trả lời ở chế độ dự phòng. Các văn bản chính đang hỗ trợ: Luật Điện lực 2024, TT 60/2025/TT-BCT, QĐ 1279/QĐ-BCT, TT 42/2022/TT-BCT, NĐ 17/2022/NĐ-CP."
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
