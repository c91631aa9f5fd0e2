package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key ring operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ApplyByID(ctx *gin.Context)
	Apply(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyGenerationService keys.KeyGenerationService
	keyMetadataService   keys.KeyMetadataService
	keyApplyService      keys.KeyApplyService
	rsaProcessor         cryptoalg.RSAKeyProcessor
	defaultKeySize       int
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(
	keyGenerationService keys.KeyGenerationService,
	keyMetadataService keys.KeyMetadataService,
	keyApplyService keys.KeyApplyService,
	rsaProcessor cryptoalg.RSAKeyProcessor,
	defaultKeySize int,
) KeyHandler {
	return &keyHandler{
		keyGenerationService: keyGenerationService,
		keyMetadataService:   keyMetadataService,
		keyApplyService:      keyApplyService,
		rsaProcessor:         rsaProcessor,
		defaultKeySize:       defaultKeySize,
	}
}

// Generate handles the POST request to generate and store an RSA key pair
// @Summary Generate an RSA key pair
// @Description Generate a key pair with a modulus of exactly key_size bits and store both halves.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key size"
// @Success 201 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyRequest

	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err)})
			return
		}
	}

	if err := request.Validate(); err != nil {
		abortWithError(ctx, err)
		return
	}

	keySize := request.KeySize
	if keySize == 0 {
		keySize = handler.defaultKeySize
	}

	keyMetas, err := handler.keyGenerationService.Generate(ctx, keySize)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	listResponse := make([]KeyMetaResponse, 0, len(keyMetas))
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, NewKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list stored keys with optional query parameters
// @Summary List stored keys
// @Description Fetch stored keys filtered by type, key pair, key size and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param type query string false "Key Type (public/private)"
// @Param keyPairId query string false "Key Pair ID"
// @Param keySize query int false "Key Size"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyQuery()
	query.Type = ctx.Query("type")
	query.KeyPairID = ctx.Query("keyPairId")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"keySize": &query.KeySize, "limit": &query.Limit, "offset": &query.Offset} {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, raw)})
			return
		}
		*target = n
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	keyMetas, err := handler.keyMetadataService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	listResponse := make([]KeyMetaResponse, 0, len(keyMetas))
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, NewKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve a stored key by ID
// @Summary Retrieve a stored key by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.keyMetadataService.GetByID(ctx, keyID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewKeyMetaResponse(keyMeta))
}

// DeleteByID handles the DELETE request to delete a stored key by ID
// @Summary Delete a stored key by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyMetadataService.DeleteByID(ctx, keyID); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key with id %s", keyID)})
}

// ApplyByID handles the POST request to apply a stored key to a value
// @Summary Apply a stored key
// @Description Compute value^e mod n with the stored key. Hex string values answer with a hex string, integers with an integer.
// @Tags Apply
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body ApplyByIDRequest true "Value"
// @Success 200 {object} ApplyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/apply [post]
func (handler *keyHandler) ApplyByID(ctx *gin.Context) {
	var request ApplyByIDRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid apply request: %v", err)})
		return
	}

	value, err := DecodeValue(request.Value)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	result, err := handler.keyApplyService.Apply(ctx, ctx.Param("id"), value)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	handler.respondValue(ctx, result)
}

// Apply handles the stateless POST request applying a key given as text
// @Summary Apply a key given as "hexmodulus,hexexponent"
// @Tags Apply
// @Accept json
// @Produce json
// @Param requestBody body ApplyRequest true "Key and value"
// @Success 200 {object} ApplyResponse
// @Failure 400 {object} ErrorResponse
// @Router /apply [post]
func (handler *keyHandler) Apply(ctx *gin.Context) {
	var request ApplyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid apply request: %v", err)})
		return
	}

	key, err := handler.rsaProcessor.ParseKey(request.Key)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	value, err := DecodeValue(request.Value)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	result, err := handler.rsaProcessor.Apply(key, value)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	handler.respondValue(ctx, result)
}

func (handler *keyHandler) respondValue(ctx *gin.Context, result rsakey.Value) {
	encoded, err := EncodeValue(result)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ApplyResponse{Value: encoded})
}
