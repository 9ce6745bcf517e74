package outfit

import (
	"net/http"

	"StyleSense/pkg/response"
)

var (
	ErrEmptyWardrobe        = response.NewError(http.StatusNotFound, "no wardrobe items available for matching")
	ErrNoReferencesFound    = response.NewError(http.StatusNotFound, "no relevant fashion advice found for this occasion")
	ErrUnparsableSuggestion = response.NewError(http.StatusBadGateway, "outfit suggestion could not be parsed")
)
