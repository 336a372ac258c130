package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.CartRepository = (*CartRepo)(nil)

type cartItemDoc struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
}

type cartDoc struct {
	ID        string        `bson:"_id"`
	UserID    string        `bson:"user_id"`
	Items     []cartItemDoc `bson:"items"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// CartRepo implementación del puerto CartRepository sobre MongoDB. Cada
// operación es una sola escritura sobre el documento del carrito, atómica a
// nivel de documento; no hay aislamiento entre operaciones distintas.
type CartRepo struct {
	collection *mongo.Collection
}

// NewCartRepository construye el adaptador de persistencia para carritos.
func NewCartRepository(db *mongo.Database) *CartRepo {
	return &CartRepo{collection: db.Collection(cartsCollection)}
}

// GetByUser devuelve el carrito del usuario, o nil, nil si aún no tiene.
func (r *CartRepo) GetByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	var doc cartDoc
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	items := make([]entity.CartItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, entity.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &entity.Cart{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Items:     items,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// SetItem reemplaza la cantidad de la línea existente o agrega una nueva;
// crea el carrito si el usuario no tiene. La invariante de a lo sumo una
// línea por producto la sostiene el update con array filters.
func (r *CartRepo) SetItem(ctx context.Context, userID string, item entity.CartItem) error {
	now := time.Now()
	filter := bson.M{"user_id": userID}

	var existing cartDoc
	err := r.collection.FindOne(ctx, filter).Decode(&existing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			doc := cartDoc{
				ID:        uuid.New().String(),
				UserID:    userID,
				Items:     []cartItemDoc{{ProductID: item.ProductID, Quantity: item.Quantity}},
				CreatedAt: now,
				UpdatedAt: now,
			}
			if _, err := r.collection.InsertOne(ctx, doc); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					// Otro request creó el carrito entre el FindOne y este
					// insert; reintentar una vez sobre el ya existente.
					return r.SetItem(ctx, userID, item)
				}
				return fmt.Errorf("create cart with item: %w", err)
			}
			return nil
		}
		return fmt.Errorf("check existing cart: %w", err)
	}

	hasItem := false
	for _, it := range existing.Items {
		if it.ProductID == item.ProductID {
			hasItem = true
			break
		}
	}

	if hasItem {
		update := bson.M{"$set": bson.M{
			"items.$[elem].quantity": item.Quantity,
			"updated_at":             now,
		}}
		arrayFilters := options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"elem.product_id": item.ProductID}},
		})
		if _, err := r.collection.UpdateOne(ctx, filter, update, arrayFilters); err != nil {
			return fmt.Errorf("replace cart item: %w", err)
		}
		return nil
	}

	update := bson.M{
		"$push": bson.M{"items": cartItemDoc{ProductID: item.ProductID, Quantity: item.Quantity}},
		"$set":  bson.M{"updated_at": now},
	}
	if _, err := r.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

// RemoveItem quita la línea del producto con $pull; si la línea no existe el
// documento queda igual y no es un error.
func (r *CartRepo) RemoveItem(ctx context.Context, userID, productID string) error {
	update := bson.M{
		"$pull": bson.M{"items": bson.M{"product_id": productID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// Clear deja el carrito con cero líneas. El documento se conserva.
func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	update := bson.M{"$set": bson.M{
		"items":      []cartItemDoc{},
		"updated_at": time.Now(),
	}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
