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
)

const collectionAttendance = "attendance"

type AttendanceRepository struct {
	col *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{col: db.Collection(collectionAttendance)}
}

type attendanceDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	Date       time.Time          `bson:"date"`
	CheckIn    time.Time          `bson:"check_in"`
	CheckOut   *time.Time         `bson:"check_out"`
}

func (d *attendanceDoc) toDomain() *domain.AttendanceRecord {
	return &domain.AttendanceRecord{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := attendanceDoc{
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date,
		CheckIn:    rec.CheckIn,
		CheckOut:   rec.CheckOut,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert attendance: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindOpen returns the employee's open record, latest check-in first. The sort
// only matters if the open-record invariant was ever violated externally.
func (r *AttendanceRepository) FindOpen(ctx context.Context, employeeID string) (*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc attendanceDoc
	err := r.col.FindOne(ctx,
		bson.M{"employee_id": employeeID, "check_out": nil},
		options.FindOne().SetSort(bson.D{{Key: "check_in", Value: -1}}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoActiveCheckIn
		}
		return nil, fmt.Errorf("find open attendance: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AttendanceRepository) Close(ctx context.Context, id string, checkOut time.Time) (*domain.AttendanceRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNoActiveCheckIn
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc attendanceDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "check_out": nil},
		bson.M{"$set": bson.M{"check_out": checkOut}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoActiveCheckIn
		}
		return nil, fmt.Errorf("close attendance: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AttendanceRepository) FindByDay(ctx context.Context, employeeID string, day time.Time) (*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc attendanceDoc
	err := r.col.FindOne(ctx,
		bson.M{
			"employee_id": employeeID,
			"date":        bson.M{"$gte": day, "$lt": day.AddDate(0, 0, 1)},
		},
		options.FindOne().SetSort(bson.D{{Key: "check_in", Value: -1}}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find attendance by day: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AttendanceRepository) ListRecent(ctx context.Context, employeeID string, limit int) ([]*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"employee_id": employeeID},
		options.Find().SetSort(bson.D{{Key: "check_in", Value: -1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("list recent attendance: %w", err)
	}
	defer cur.Close(ctx)

	var records []*domain.AttendanceRecord
	for cur.Next(ctx) {
		var doc attendanceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode attendance: %w", err)
		}
		records = append(records, doc.toDomain())
	}
	return records, cur.Err()
}

func (r *AttendanceRepository) CountCheckInsSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, bson.M{"check_in": bson.M{"$gte": since}})
}

func (r *AttendanceRepository) CountCheckInsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, bson.M{"check_in": bson.M{"$gte": from, "$lt": to}})
}

func (r *AttendanceRepository) CountOpen(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{"check_out": nil})
}

func (r *AttendanceRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return n, nil
}

func (r *AttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"employee_id": employeeID}); err != nil {
		return fmt.Errorf("delete attendance by employee: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing open-record lookups and day counts.
func (r *AttendanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "check_in", Value: -1}}},
		{Keys: bson.D{{Key: "check_in", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
