package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

const collectionRequests = "requests"

type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

type requestDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID  string             `bson:"employee_id"`
	Type        string             `bson:"type"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	StartDate   time.Time          `bson:"start_date"`
	EndDate     time.Time          `bson:"end_date"`
	Status      string             `bson:"status"`
	ApprovedBy  string             `bson:"approved_by,omitempty"`
	Comments    string             `bson:"comments,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *requestDoc) toDomain() *domain.LeaveRequest {
	return &domain.LeaveRequest{
		ID:          d.ID.Hex(),
		EmployeeID:  d.EmployeeID,
		Type:        domain.RequestType(d.Type),
		Title:       d.Title,
		Description: d.Description,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Status:      domain.RequestStatus(d.Status),
		ApprovedBy:  d.ApprovedBy,
		Comments:    d.Comments,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := requestDoc{
		EmployeeID:  req.EmployeeID,
		Type:        string(req.Type),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc requestDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.LeaveRequest, error) {
	return r.list(ctx, bson.M{"employee_id": employeeID})
}

func (r *RequestRepository) ListAll(ctx context.Context) ([]*domain.LeaveRequest, error) {
	return r.list(ctx, bson.M{})
}

func (r *RequestRepository) list(ctx context.Context, filter bson.M) ([]*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	var requests []*domain.LeaveRequest
	for cur.Next(ctx) {
		var doc requestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		requests = append(requests, doc.toDomain())
	}
	return requests, cur.Err()
}

func (r *RequestRepository) Decide(ctx context.Context, id string, d ports.RequestDecision) (*domain.LeaveRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc requestDoc
	err = r.col.FindOneAndUpdate(ctx,
		// The status filter makes the decide atomic: two racing admins cannot
		// both transition the same PENDING request.
		bson.M{"_id": oid, "status": string(domain.RequestPending)},
		bson.M{"$set": bson.M{
			"status":      string(d.Status),
			"approved_by": d.ApprovedBy,
			"comments":    d.Comments,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestFinalized
		}
		return nil, fmt.Errorf("decide request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RequestRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"employee_id": employeeID}); err != nil {
		return fmt.Errorf("delete requests by employee: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing per-employee and status listings.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
