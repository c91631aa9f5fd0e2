package v1

import (
	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenerationService keys.KeyGenerationService,
	keyMetadataService keys.KeyMetadataService,
	keyApplyService keys.KeyApplyService,
	rsaProcessor cryptoalg.RSAKeyProcessor,
	defaultKeySize int) {

	v1 := r.Group(BasePath)

	keyHandler := NewKeyHandler(keyGenerationService, keyMetadataService, keyApplyService, rsaProcessor, defaultKeySize)
	v1.POST("/keys", keyHandler.Generate)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)
	v1.POST("/keys/:id/apply", keyHandler.ApplyByID)
	v1.POST("/apply", keyHandler.Apply)
}
