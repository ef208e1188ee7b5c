package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrsketch/internal/handlers"
	"github.com/cristianadrielbraun/qrsketch/internal/studio"
)

// maxUploadBytes caps the in-memory part of a multipart upload.
const maxUploadBytes = 32 << 20

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = maxUploadBytes

	logger := log.New(os.Stderr, "", log.LstdFlags)
	handlers.New(studio.New(logger)).Register(r)

	addr := getAddr()
	log.Printf("qrsketch listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func getAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
