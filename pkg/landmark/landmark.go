package landmark

import (
	"errors"
	"fmt"
	"strings"
)

// Name identifies a single anatomical keypoint. The set of valid names is
// fixed: pose names follow the detector service's MediaPipe-style keys, face
// names map to the dlib 68-point indices the face detector emits.
type Name string

// Pose keypoints.
const (
	LeftShoulder  Name = "LShoulder"
	RightShoulder Name = "RShoulder"
	LeftHip       Name = "LHip"
	RightHip      Name = "RHip"
	LeftKnee      Name = "LKnee"
	RightKnee     Name = "RKnee"
	LeftAnkle     Name = "LAnkle"
	RightAnkle    Name = "RAnkle"

	// Waist points are optional in the detector contract; not every pose
	// model produces them.
	LeftWaist  Name = "LWaist"
	RightWaist Name = "RWaist"
)

// Face keypoints (dlib 68-point subset used by the classifiers).
const (
	JawLeft       Name = "jaw_left"        // point 0
	JawCurveLeft  Name = "jaw_curve_left"  // point 4
	Chin          Name = "chin"            // point 8
	JawCurveRight Name = "jaw_curve_right" // point 12
	JawRight      Name = "jaw_right"       // point 16

	CheekLeftUpper  Name = "cheek_left_upper"  // point 1
	CheekLeftMid    Name = "cheek_left_mid"    // point 2
	CheekLeftLower  Name = "cheek_left_lower"  // point 3
	CheekRightLower Name = "cheek_right_lower" // point 13
	CheekRightMid   Name = "cheek_right_mid"   // point 14
	CheekRightUpper Name = "cheek_right_upper" // point 15

	BrowLeft   Name = "brow_left"   // point 19
	BrowRight  Name = "brow_right"  // point 24
	NoseBridge Name = "nose_bridge" // point 27

	LeftEyeOuterCorner Name = "left_eye_outer_corner" // point 36
	LeftEyeUpperOuter  Name = "left_eye_upper_outer"  // point 37
	LeftEyeUpperInner  Name = "left_eye_upper_inner"  // point 38
	LeftEyeInnerCorner Name = "left_eye_inner_corner" // point 39
	LeftEyeLowerInner  Name = "left_eye_lower_inner"  // point 40
	LeftEyeLowerOuter  Name = "left_eye_lower_outer"  // point 41

	RightEyeInnerCorner Name = "right_eye_inner_corner" // point 42
	RightEyeUpperInner  Name = "right_eye_upper_inner"  // point 43
	RightEyeUpperOuter  Name = "right_eye_upper_outer"  // point 44
	RightEyeOuterCorner Name = "right_eye_outer_corner" // point 45
	RightEyeLowerOuter  Name = "right_eye_lower_outer"  // point 46
	RightEyeLowerInner  Name = "right_eye_lower_inner"  // point 47
)

// Point is a 2D keypoint in image-pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var (
	ErrNoPoseDetected = errors.New("no pose detected in the image")
	ErrNoFaceDetected = errors.New("no face detected in the image")
)

// InsufficientLandmarksError reports required landmarks (or measurements
// derived from them) that are absent from the detected set.
type InsufficientLandmarksError struct {
	Missing []string
}

func (e *InsufficientLandmarksError) Error() string {
	if len(e.Missing) == 0 {
		return "required landmarks are missing"
	}
	return fmt.Sprintf("missing %s for analysis", strings.Join(e.Missing, ", "))
}

// NewInsufficientLandmarksError builds the error from the missing names.
func NewInsufficientLandmarksError(missing ...string) error {
	return &InsufficientLandmarksError{Missing: missing}
}

// Set is an immutable collection of named keypoints for one image. A missing
// key is a detectable, typed condition, never a zero-valued point.
type Set struct {
	points map[Name]Point
}

func NewSet(points map[Name]Point) *Set {
	cp := make(map[Name]Point, len(points))
	for n, p := range points {
		cp[n] = p
	}
	return &Set{points: cp}
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

func (s *Set) Get(name Name) (Point, bool) {
	if s == nil {
		return Point{}, false
	}
	p, ok := s.points[name]
	return p, ok
}

// Require returns the points for the given names in order, or an
// InsufficientLandmarksError naming every absent point.
func (s *Set) Require(names ...Name) ([]Point, error) {
	points := make([]Point, 0, len(names))
	var missing []string
	for _, n := range names {
		p, ok := s.Get(n)
		if !ok {
			missing = append(missing, string(n))
			continue
		}
		points = append(points, p)
	}
	if len(missing) > 0 {
		return nil, &InsufficientLandmarksError{Missing: missing}
	}
	return points, nil
}
