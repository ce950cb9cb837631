package server

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()
	router.Use(gin.Recovery(), service.requestLogger())

	router.Use(service.corsMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.GET(ThemesURL, service.listThemes)
	router.POST(RenderURL, service.render)
	router.POST(AIURL, service.transform)

	server.Handler = router
	service.router = router
}

// handling CORS
func (service *Service) corsMiddleware() gin.HandlerFunc {
	origins := service.config.Origins()
	return func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		if slices.Contains(origins, "*") {
			ctx.Header("Access-Control-Allow-Origin", "*")
		} else if origin != "" && slices.Contains(origins, origin) {
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
		}

		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", strings.Join([]string{"Content-Type"}, ","))

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}

func (service *Service) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		service.log.Info("%s %s %d", ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status())
	}
}
