package repository

import (
	"context"
	"time"

	"delights/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository interface {
	Create(item *model.MenuItem) error
	Update(item *model.MenuItem) error
	Delete(id string) error
	FindByID(id string) (*model.MenuItem, error)
	FindAll() ([]*model.MenuItem, error)
}

type MongoMenuRepository struct {
	collection *mongo.Collection
}

func NewMongoMenuRepository(db *mongo.Database) *MongoMenuRepository {
	return &MongoMenuRepository{
		collection: db.Collection("menu_items"),
	}
}

func (r *MongoMenuRepository) Create(item *model.MenuItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *MongoMenuRepository) Update(item *model.MenuItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMenuRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMenuRepository) FindByID(id string) (*model.MenuItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var item model.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoMenuRepository) FindAll() ([]*model.MenuItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.MenuItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
