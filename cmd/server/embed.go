//go:build embed
// +build embed

package main

import (
	"embed"
	"io/fs"
	"net/http"

	"medtour/internal/utils"

	"github.com/gin-gonic/gin"
)

//go:embed web/static
var webStatic embed.FS

// setupStaticFiles serves /static from the assets compiled into the binary
func setupStaticFiles(router *gin.Engine, _ string, pageNotFound gin.HandlerFunc) {
	utils.Log.Info("📦 Using embedded static assets")

	staticFS, err := fs.Sub(webStatic, "web/static")
	if err != nil {
		utils.Log.Fatalf("Failed to get static subdirectory: %v", err)
	}
	router.StaticFS("/static", http.FS(staticFS))

	router.NoRoute(notFound(pageNotFound))
}
