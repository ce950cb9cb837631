package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zctpy/paiban/pkg/ai"
	"github.com/zctpy/paiban/pkg/parser"
	"github.com/zctpy/paiban/pkg/render"
)

var ErrAIDisabled = errors.New("AI is not configured")

func (service *Service) listThemes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, service.themes.Themes())
}

type renderRequest struct {
	Markdown string `json:"markdown"`
	Theme    string `json:"theme"`
}

type renderResponse struct {
	HTML  string       `json:"html"`
	Text  string       `json:"text"`
	Stats render.Stats `json:"stats"`
}

func (service *Service) render(ctx *gin.Context) {
	var req renderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	t := service.themes.Default()
	if req.Theme != "" {
		var err error
		t, err = service.themes.Get(req.Theme)
		if err != nil {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}
	}

	blocks := parser.Parse(req.Markdown)
	var buf bytes.Buffer
	if err := render.New(t).Render(&buf, blocks); err != nil {
		service.log.Error("render: %v", err)
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}
	html := buf.String()
	text, err := render.PlainText(html)
	if err != nil {
		service.log.Error("plain text: %v", err)
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, renderResponse{HTML: html, Text: text, Stats: render.Analyze(blocks)})
}

type aiRequest struct {
	Markdown string `json:"markdown" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type aiResponse struct {
	Result   string `json:"result"`
	Document string `json:"document"`
}

func (service *Service) transform(ctx *gin.Context) {
	var req aiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	action, err := ai.ParseAction(req.Action)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	if service.transformer == nil {
		ctx.JSON(http.StatusServiceUnavailable, NewErrorResponse(ErrAIDisabled))
		return
	}

	result, err := service.transformer.Transform(ctx, req.Markdown, action)
	if err != nil {
		if errors.Is(err, ai.ErrMissingAPIKey) {
			ctx.JSON(http.StatusServiceUnavailable, NewErrorResponse(err))
			return
		}
		ctx.JSON(http.StatusBadGateway, NewErrorResponse(ai.ErrProcessingFailed))
		return
	}

	ctx.JSON(http.StatusOK, aiResponse{Result: result, Document: ai.Apply(req.Markdown, result, action)})
}
