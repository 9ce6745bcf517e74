package handlerUtil

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"StyleSense/internal/api/body"
	"StyleSense/internal/api/cloth"
	"StyleSense/internal/api/outfit"
	"StyleSense/pkg/colorsample"
	"StyleSense/pkg/landmark"
	"StyleSense/pkg/log"
	"StyleSense/pkg/response"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	// Landmark detection errors
	if errors.Is(err, landmark.ErrNoPoseDetected) {
		h.logger.WithFields(fields).Warn("No pose detected in image")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "No pose detected in the image",
			"code":  "NO_POSE_DETECTED",
		})
	}

	if errors.Is(err, landmark.ErrNoFaceDetected) {
		h.logger.WithFields(fields).Warn("No face detected in image")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "No face detected in the image",
			"code":  "NO_FACE_DETECTED",
		})
	}

	var insufficientErr *landmark.InsufficientLandmarksError
	if errors.As(err, &insufficientErr) {
		h.logger.WithFields(fields).Warn("Insufficient landmarks for analysis")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "Required landmarks were not detected",
			Code:    "INSUFFICIENT_LANDMARKS",
			Details: strings.Join(insufficientErr.Missing, ", "),
		})
	}

	var ambiguousErr *colorsample.AmbiguousSampleError
	if errors.As(err, &ambiguousErr) {
		h.logger.WithFields(fields).Warn("Ambiguous color sample")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "Color sample was too ambiguous to classify",
			Code:    "AMBIGUOUS_SAMPLE",
			Details: ambiguousErr.Region + ": " + ambiguousErr.Reason,
		})
	}

	// Body domain errors
	if errors.Is(err, body.ErrMissingImage) {
		h.logger.WithFields(fields).Warn("No image provided")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image provided",
			"code":  "MISSING_IMAGE",
		})
	}

	if errors.Is(err, body.ErrInvalidImage) {
		h.logger.WithFields(fields).Warn("Invalid image data")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image could not be decoded",
			"code":  "INVALID_IMAGE",
		})
	}

	// Cloth domain errors
	if errors.Is(err, cloth.ErrItemNotFound) {
		h.logger.WithFields(fields).Warn("Wardrobe item not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Wardrobe item not found",
			"code":  "ITEM_NOT_FOUND",
		})
	}

	if errors.Is(err, cloth.ErrItemNotOwned) {
		h.logger.WithFields(fields).Warn("Wardrobe item does not belong to user")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Wardrobe item does not belong to user",
			"code":  "ITEM_NOT_OWNED",
		})
	}

	if errors.Is(err, cloth.ErrInvalidFileType) {
		h.logger.WithFields(fields).Warn("Invalid file type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Only images are allowed.",
		})
	}

	if errors.Is(err, cloth.ErrFileTooLarge) {
		h.logger.WithFields(fields).Warn("File too large")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File too large. Maximum size is 5MB.",
		})
	}

	if errors.Is(err, cloth.ErrFailedToUploadFile) {
		h.logger.WithFields(fields).Warn("Failed to upload file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload file",
		})
	}

	if errors.Is(err, cloth.ErrUnparsableAnalysis) {
		h.logger.WithFields(fields).Error("Vision model returned unparsable analysis")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Garment analysis could not be parsed",
			"code":  "UNPARSABLE_ANALYSIS",
		})
	}

	// Outfit domain errors
	if errors.Is(err, outfit.ErrEmptyWardrobe) {
		h.logger.WithFields(fields).Warn("Wardrobe is empty")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No wardrobe items available for matching",
			"code":  "EMPTY_WARDROBE",
		})
	}

	if errors.Is(err, outfit.ErrUnparsableSuggestion) {
		h.logger.WithFields(fields).Error("Model returned unparsable outfit suggestion")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Outfit suggestion could not be parsed",
			"code":  "UNPARSABLE_SUGGESTION",
		})
	}

	// Domain sentinels carry their own status code. This check runs after
	// the curated branches above so their response codes win.
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
