package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zctpy/paiban/pkg/log"
)

var (
	ErrMissingAPIKey    = errors.New("未检测到 API Key，请检查配置。")
	ErrProcessingFailed = errors.New("AI 处理失败，请稍后重试。")
)

// EmptyReply stands in for a response without text
const EmptyReply = "未生成任何回复。"

// Transformer rewrites a document with an action
type Transformer interface {
	Transform(ctx context.Context, text string, a Action) (string, error)
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Gemini talks to the generateContent endpoint of the Generative Language API
type Gemini struct {
	cfg    GeminiConfig
	client *http.Client
	log    log.Logger
}

func NewGemini(cfg GeminiConfig, logger log.Logger) *Gemini {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = log.NewEmptyLog()
	}
	return &Gemini{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}, log: logger}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text joins the parts of the first candidate
func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func (g *Gemini) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(g.cfg.BaseURL, "/"), url.PathEscape(g.cfg.Model), url.QueryEscape(g.cfg.APIKey))
}

func (g *Gemini) Transform(ctx context.Context, text string, a Action) (string, error) {
	if g.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	if _, err := ParseAction(string(a)); err != nil {
		return "", err
	}

	reply, err := g.generate(ctx, a.Prompt(text))
	if err != nil {
		g.log.Error("gemini %s: %v", a, err)
		return "", ErrProcessingFailed
	}
	if reply == "" {
		return EmptyReply, nil
	}
	return reply, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.text(), nil
}
