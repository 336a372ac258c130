package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

type orderLineDoc struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
}

type orderDoc struct {
	ID         string               `bson:"_id"`
	UserID     string               `bson:"user_id"`
	Items      []orderLineDoc       `bson:"items"`
	TotalPrice primitive.Decimal128 `bson:"total_price"`
	CreatedAt  time.Time            `bson:"created_at"`
}

// OrderRepo implementación del puerto OrderRepository sobre MongoDB.
// Las órdenes son solo-inserción: no hay Update ni Delete.
type OrderRepo struct {
	collection *mongo.Collection
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{collection: db.Collection(ordersCollection)}
}

// Create inserta la orden como documento nuevo e independiente.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	total, err := toDecimal128(order.TotalPrice)
	if err != nil {
		return err
	}
	lines := make([]orderLineDoc, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, orderLineDoc{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	doc := orderDoc{
		ID:         order.ID,
		UserID:     order.UserID,
		Items:      lines,
		TotalPrice: total,
		CreatedAt:  order.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByUser devuelve las órdenes del usuario, la más reciente primero.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Order
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		total, err := fromDecimal128(doc.TotalPrice)
		if err != nil {
			return nil, err
		}
		items := make([]entity.OrderLineItem, 0, len(doc.Items))
		for _, it := range doc.Items {
			items = append(items, entity.OrderLineItem{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		list = append(list, &entity.Order{
			ID:         doc.ID,
			UserID:     doc.UserID,
			Items:      items,
			TotalPrice: total,
			CreatedAt:  doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return list, nil
}
