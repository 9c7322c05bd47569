//go:build !embed
// +build !embed

package main

import (
	"medtour/internal/utils"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles serves /static from dir on the local filesystem
func setupStaticFiles(router *gin.Engine, dir string, pageNotFound gin.HandlerFunc) {
	utils.Log.Infof("🔧 Using local static assets from %s (development mode)", dir)

	router.Static("/static", dir)

	router.NoRoute(notFound(pageNotFound))
}
