package classify

// ShapeDetail carries the human-readable styling notes returned alongside a
// body shape label.
type ShapeDetail struct {
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	ClothingTips    []string `json:"clothing_tips"`
}

// ProportionDetail carries the styling note for a torso-to-leg proportion.
type ProportionDetail struct {
	Description string `json:"description"`
	ClothingTip string `json:"clothing_tip"`
}

var shapeDetails = map[Label]ShapeDetail{
	BodyHourglass: {
		Description: "Your shoulders and hips are balanced with a defined waist.",
		Characteristics: []string{
			"Balanced shoulder and hip measurements",
			"Clearly defined waistline",
		},
		ClothingTips: []string{
			"Fitted and wrap styles that follow your waistline",
			"Belts to emphasise your natural waist",
			"Avoid boxy cuts that hide your definition",
		},
	},
	BodyRectangle: {
		Description: "Your shoulders, waist and hips are close in proportion.",
		Characteristics: []string{
			"Balanced shoulder and hip measurements",
			"Little difference between waist and hips",
		},
		ClothingTips: []string{
			"Most styles work well with your balanced proportions",
			"Layering and peplum cuts to create waist definition",
			"Experiment with different silhouettes to determine your preference",
		},
	},
	BodyPear: {
		Description: "Your hips are wider than your shoulders.",
		Characteristics: []string{
			"Hips wider than shoulders",
			"Weight tends to distribute in the lower body",
		},
		ClothingTips: []string{
			"Clothing that balances your proportions",
			"Tops with details or structure to add visual width to shoulders",
			"A-line skirts and dresses that skim over hips",
		},
	},
	BodyInvertedTriangle: {
		Description: "Your shoulders are wider than your hips.",
		Characteristics: []string{
			"Broader shoulders compared to hips",
			"Athletic upper body",
		},
		ClothingTips: []string{
			"Full or pleated skirts to add volume to lower body",
			"Wide-leg pants to balance proportions",
			"V-necks to soften shoulder line",
		},
	},
}

var unknownShapeDetail = ShapeDetail{
	Description:     "Unable to determine body shape accurately.",
	Characteristics: []string{"N/A"},
	ClothingTips:    []string{"Consider a professional style consultation."},
}

var proportionDetails = map[Label]ProportionDetail{
	ProportionBalanced: {
		Description: "Your torso and legs are in balanced proportion to each other.",
		ClothingTip: "Most clothing styles work well for your balanced proportions.",
	},
	ProportionLongTorso: {
		Description: "Your torso is proportionally longer than your legs.",
		ClothingTip: "High-waisted bottoms can help create the illusion of longer legs.",
	},
	ProportionLongLegs: {
		Description: "Your legs are proportionally longer than your torso.",
		ClothingTip: "Mid to low-rise bottoms and longer tops work well for your proportions.",
	},
}

var unknownProportionDetail = ProportionDetail{
	Description: "Unable to determine body proportions accurately.",
	ClothingTip: "Consider a professional fitting consultation.",
}

// ShapeDetails returns the styling notes for a body shape label.
func ShapeDetails(shape Label) ShapeDetail {
	if d, ok := shapeDetails[shape]; ok {
		return d
	}
	return unknownShapeDetail
}

// ProportionDetails returns the styling note for a proportion label.
func ProportionDetails(proportion Label) ProportionDetail {
	if d, ok := proportionDetails[proportion]; ok {
		return d
	}
	return unknownProportionDetail
}
