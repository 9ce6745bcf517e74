package bodyService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"StyleSense/internal/api/body"
	"StyleSense/pkg/classify"
	contextPkg "StyleSense/pkg/context"
	"StyleSense/pkg/geometry"
	"StyleSense/pkg/landmark"
)

func (s *bodyService) AnalyzeFromURL(ctx context.Context, imageURL string) (*body.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	imageData, err := s.utils.FetchImage(ctx, imageURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"image_url":  imageURL,
		}).Error("Failed to fetch image for body analysis")
		return nil, err
	}

	return s.AnalyzeImage(ctx, imageData)
}

func (s *bodyService) AnalyzeImage(ctx context.Context, imageData []byte) (*body.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	set, err := s.landmarkProvider.DetectPose(ctx, imageData)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Pose detection failed")
		return nil, err
	}

	resp, err := s.classifySet(set)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Body classification failed")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"shape":      resp.Shape,
		"proportion": resp.Proportion,
	}).Info("Body analysis complete")

	return resp, nil
}

// AnalyzeFrame classifies a single video frame received over the streaming
// endpoint. The detector connection is shared, so no request context here.
func (s *bodyService) AnalyzeFrame(frame []byte) (*body.AnalyzeResponse, error) {
	set, err := s.websocketPkg.ProcessPoseFrame(frame)
	if err != nil {
		return nil, err
	}

	return s.classifySet(set)
}

func (s *bodyService) classifySet(set *landmark.Set) (*body.AnalyzeResponse, error) {
	bundle := geometry.Compute(set, geometry.BodyRatioDefs)

	shape, err := classify.BodyShape(bundle)
	if err != nil {
		return nil, err
	}

	proportion, err := classify.BodyProportion(bundle)
	if err != nil {
		return nil, err
	}

	ratios := make(map[string]float64, len(shape.Ratios)+len(proportion.Ratios))
	for name, v := range shape.Ratios {
		ratios[name] = v
	}
	for name, v := range proportion.Ratios {
		ratios[name] = v
	}

	return &body.AnalyzeResponse{
		Shape:             string(shape.Label),
		ShapeDetails:      classify.ShapeDetails(shape.Label),
		Proportion:        string(proportion.Label),
		ProportionDetails: classify.ProportionDetails(proportion.Label),
		Ratios:            ratios,
	}, nil
}
