package geometry

import "StyleSense/pkg/landmark"

// Ratio names shared between the calculator and the classifiers.
const (
	RatioShoulderToHip     = "shoulder_to_hip"
	RatioWaistToHip        = "waist_to_hip"
	RatioTorsoToLeg        = "torso_to_leg"
	RatioFaceLengthToWidth = "face_length_to_width"
	RatioJawToCheek        = "jaw_to_cheek"
	RatioForeheadToJaw     = "forehead_to_jaw"
	RatioLeftEyeAspect     = "left_eye_aspect"
	RatioRightEyeAspect    = "right_eye_aspect"
)

// BodyRatioDefs measures the torso against the mean of both legs, from the
// shoulder midline to the hip midline, matching the pose keypoints the
// detector emits. Waist ratios stay undefined when the model has no waist.
var BodyRatioDefs = []RatioDef{
	{
		Name: RatioShoulderToHip,
		Num:  Span(At(landmark.RightShoulder), At(landmark.LeftShoulder)),
		Den:  Span(At(landmark.RightHip), At(landmark.LeftHip)),
	},
	{
		Name: RatioWaistToHip,
		Num:  Span(At(landmark.RightWaist), At(landmark.LeftWaist)),
		Den:  Span(At(landmark.RightHip), At(landmark.LeftHip)),
	},
	{
		Name: RatioTorsoToLeg,
		Num: Span(
			Mid(landmark.RightShoulder, landmark.LeftShoulder),
			Mid(landmark.RightHip, landmark.LeftHip),
		),
		Den: MeanSpan(
			Segment{From: At(landmark.RightHip), To: At(landmark.RightAnkle)},
			Segment{From: At(landmark.LeftHip), To: At(landmark.LeftAnkle)},
		),
	},
}

// FaceRatioDefs: face length runs nose bridge to chin, width is the upper
// cheek span, jaw width is taken at the jaw curve, forehead width between the
// outer brow points.
var FaceRatioDefs = []RatioDef{
	{
		Name: RatioFaceLengthToWidth,
		Num:  Span(At(landmark.NoseBridge), At(landmark.Chin)),
		Den:  Span(At(landmark.CheekLeftUpper), At(landmark.CheekRightUpper)),
	},
	{
		Name: RatioJawToCheek,
		Num:  Span(At(landmark.JawCurveLeft), At(landmark.JawCurveRight)),
		Den:  Span(At(landmark.CheekLeftUpper), At(landmark.CheekRightUpper)),
	},
	{
		Name: RatioForeheadToJaw,
		Num:  Span(At(landmark.BrowLeft), At(landmark.BrowRight)),
		Den:  Span(At(landmark.JawCurveLeft), At(landmark.JawCurveRight)),
	},
	{
		Name: RatioLeftEyeAspect,
		Num:  Span(At(landmark.LeftEyeOuterCorner), At(landmark.LeftEyeInnerCorner)),
		Den: MeanSpan(
			Segment{From: At(landmark.LeftEyeUpperOuter), To: At(landmark.LeftEyeLowerOuter)},
			Segment{From: At(landmark.LeftEyeUpperInner), To: At(landmark.LeftEyeLowerInner)},
		),
	},
	{
		Name: RatioRightEyeAspect,
		Num:  Span(At(landmark.RightEyeOuterCorner), At(landmark.RightEyeInnerCorner)),
		Den: MeanSpan(
			Segment{From: At(landmark.RightEyeUpperOuter), To: At(landmark.RightEyeLowerOuter)},
			Segment{From: At(landmark.RightEyeUpperInner), To: At(landmark.RightEyeLowerInner)},
		),
	},
}
