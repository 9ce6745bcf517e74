package cloth

import (
	"net/http"

	"StyleSense/pkg/response"
)

var (
	ErrItemNotFound       = response.NewError(http.StatusNotFound, "wardrobe item not found")
	ErrItemNotOwned       = response.NewError(http.StatusForbidden, "wardrobe item does not belong to user")
	ErrInvalidFileType    = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge       = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUploadFile = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrUnparsableAnalysis = response.NewError(http.StatusBadGateway, "garment analysis could not be parsed")
)
