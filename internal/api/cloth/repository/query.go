package clothRepository

const (
	queryCreateItem = `
		INSERT INTO wardrobe_items (
			id,
			user_id,
			type,
			color,
			pattern,
			fabric,
			description,
			brand,
			image_url,
			created_at
		) VALUES (
			:id,
			:user_id,
			:type,
			:color,
			:pattern,
			:fabric,
			:description,
			:brand,
			:image_url,
			:created_at
		)
	`

	queryGetItemByID = `
		SELECT
			id,
			user_id,
			type,
			color,
			pattern,
			fabric,
			description,
			brand,
			image_url,
			created_at
		FROM wardrobe_items
		WHERE id = :id
	`

	queryGetItemsByUserID = `
		SELECT
			id,
			user_id,
			type,
			color,
			pattern,
			fabric,
			description,
			brand,
			image_url,
			created_at
		FROM wardrobe_items
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryDeleteItem = `
		DELETE FROM wardrobe_items
		WHERE id = :id
	`
)
