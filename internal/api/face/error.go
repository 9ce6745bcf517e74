package face

import (
	"net/http"

	"StyleSense/pkg/response"
)

var (
	ErrMissingImage = response.NewError(http.StatusBadRequest, "no image provided")
	ErrInvalidImage = response.NewError(http.StatusBadRequest, "image could not be decoded")
)
