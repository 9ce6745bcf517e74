package clothRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"StyleSense/internal/api/cloth"
	"StyleSense/internal/entity"
	contextPkg "StyleSense/pkg/context"
)

type WardrobeItemDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Type        sql.NullString `db:"type"`
	Color       sql.NullString `db:"color"`
	Pattern     sql.NullString `db:"pattern"`
	Fabric      sql.NullString `db:"fabric"`
	Description sql.NullString `db:"description"`
	Brand       sql.NullString `db:"brand"`
	ImageURL    sql.NullString `db:"image_url"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *wardrobeRepository) CreateItem(c context.Context, item entity.WardrobeItem) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          item.ID,
		"user_id":     item.UserID,
		"type":        item.Type,
		"color":       item.Color,
		"pattern":     item.Pattern,
		"fabric":      item.Fabric,
		"description": item.Description,
		"brand":       item.Brand,
		"image_url":   item.ImageURL,
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateItem")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating wardrobe item")
		return err
	}

	return nil
}

func (r *wardrobeRepository) GetItemByID(c context.Context, id string) (entity.WardrobeItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var item WardrobeItemDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetItemByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemByID named query preparation err")
		return entity.WardrobeItem{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetItemByID no rows found")
			return entity.WardrobeItem{}, cloth.ErrItemNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemByID execution err")
		return entity.WardrobeItem{}, err
	}

	return r.makeWardrobeItem(item), nil
}

func (r *wardrobeRepository) GetItemsByUserID(c context.Context, userID string) ([]entity.WardrobeItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var items []WardrobeItemDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetItemsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &items, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemsByUserID execution err")
		return nil, err
	}

	result := make([]entity.WardrobeItem, 0, len(items))
	for _, item := range items {
		result = append(result, r.makeWardrobeItem(item))
	}

	return result, nil
}

func (r *wardrobeRepository) DeleteItem(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem execution err")
		return err
	}

	return nil
}

func (r *wardrobeRepository) makeWardrobeItem(item WardrobeItemDB) entity.WardrobeItem {
	return entity.WardrobeItem{
		ID:          item.ID.String,
		UserID:      item.UserID.String,
		Type:        item.Type.String,
		Color:       item.Color.String,
		Pattern:     item.Pattern.String,
		Fabric:      item.Fabric.String,
		Description: item.Description.String,
		Brand:       item.Brand.String,
		ImageURL:    item.ImageURL.String,
		CreatedAt:   item.CreatedAt,
	}
}
