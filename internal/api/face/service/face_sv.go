package faceService

import (
	"image"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"StyleSense/internal/api/face"
	"StyleSense/pkg/classify"
	"StyleSense/pkg/colorsample"
	contextPkg "StyleSense/pkg/context"
	"StyleSense/pkg/geometry"
	"StyleSense/pkg/landmark"
)

func (s *faceService) AnalyzeFromURL(ctx context.Context, imageURL string) (*face.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	imageData, err := s.utils.FetchImage(ctx, imageURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"image_url":  imageURL,
		}).Error("Failed to fetch image for face analysis")
		return nil, err
	}

	return s.AnalyzeImage(ctx, imageData)
}

func (s *faceService) AnalyzeImage(ctx context.Context, imageData []byte) (*face.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	set, err := s.landmarkProvider.DetectFace(ctx, imageData)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Face detection failed")
		return nil, err
	}

	img, err := s.utils.DecodeImage(imageData)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to decode image for face analysis")
		return nil, face.ErrInvalidImage
	}

	resp := s.classifyFeatures(set, img)

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"failed_count":   len(resp.Errors),
		"has_face_shape": resp.FaceShape != nil,
	}).Info("Face analysis complete")

	return resp, nil
}

// AnalyzeFrame classifies a single video frame. Color features need the
// decoded pixels, so the frame is decoded locally as well.
func (s *faceService) AnalyzeFrame(frame []byte) (*face.AnalyzeResponse, error) {
	set, err := s.websocketPkg.ProcessFaceFrame(frame)
	if err != nil {
		return nil, err
	}

	img, err := s.utils.DecodeImage(frame)
	if err != nil {
		return nil, face.ErrInvalidImage
	}

	return s.classifyFeatures(set, img), nil
}

// classifyFeatures runs each feature independently. One feature failing does
// not void the rest of the analysis.
func (s *faceService) classifyFeatures(set *landmark.Set, img image.Image) *face.AnalyzeResponse {
	resp := &face.AnalyzeResponse{
		Errors: make(map[string]string),
	}

	bundle := geometry.Compute(set, geometry.FaceRatioDefs)

	if result, err := classify.FaceShape(bundle); err != nil {
		resp.Errors["face_shape"] = err.Error()
	} else {
		resp.FaceShape = &face.ShapeResult{Label: string(result.Label), Ratios: result.Ratios}
	}

	if result, err := classify.EyeShape(set, bundle); err != nil {
		resp.Errors["eye_shape"] = err.Error()
	} else {
		resp.EyeShape = &face.ShapeResult{Label: string(result.Label), Ratios: result.Ratios}
	}

	if tone, err := colorsample.SampleSkin(img, set); err != nil {
		resp.Errors["skin_tone"] = err.Error()
	} else {
		resp.SkinTone = tone
	}

	if hair, err := colorsample.SampleHair(img, set); err != nil {
		resp.Errors["hair_color"] = err.Error()
	} else {
		resp.HairColor = hair
	}

	if len(resp.Errors) == 0 {
		resp.Errors = nil
	}

	return resp
}
