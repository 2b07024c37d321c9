package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "users"

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user. Leveling fields left at zero get their starting values.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" || user.Role == "" {
		return primitive.NilObjectID, errors.New("user email and role are required")
	}

	user.ID = primitive.NewObjectID()
	if user.Level == 0 {
		user.Level = domain.StartingLevel
	}
	if user.NextLevelExp == 0 {
		user.NextLevelExp = domain.StartingNextLevelExp
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// email carries a unique index
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	return insertedObjectID(result)
}

// GetByEmail retrieves a user by their email address.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.collection, bson.M{"email": email})
}

// GetByID retrieves a user by their MongoDB ObjectID.
func (r *mongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return findOne[domain.User](ctx, r.collection, bson.M{"_id": id})
}

// GetByIDs retrieves every user whose ID is listed. Unknown IDs are skipped.
func (r *mongoUserRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	return findAll[domain.User](ctx, r.collection, bson.M{"_id": bson.M{"$in": ids}})
}

// ListIDs returns the IDs of all users.
func (r *mongoUserRepository) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	type idOnly struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	docs, err := findAll[idOnly](ctx, r.collection, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

// AddClientIDToCoach adds a client's ID to a coach's ClientIDs array.
func (r *mongoUserRepository) AddClientIDToCoach(ctx context.Context, coachID, clientID primitive.ObjectID) error {
	filter := bson.M{"_id": coachID, "role": domain.RoleCoach}
	update := bson.M{
		"$addToSet": bson.M{"clientIds": clientID}, // $addToSet prevents duplicates
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}

	// an already linked client matches without modifying
	return matchedOrNotFound(r.collection.UpdateOne(ctx, filter, update))
}

// GetClientsByCoachID retrieves all client users associated with a specific coach.
func (r *mongoUserRepository) GetClientsByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	coach, err := r.GetByID(ctx, coachID)
	if err != nil {
		return nil, err
	}

	if !coach.IsCoach() {
		return nil, repository.ErrNotFound
	}

	if len(coach.ClientIDs) == 0 {
		return []domain.User{}, nil
	}

	return r.GetByIDs(ctx, coach.ClientIDs)
}

// SetCoachForClient sets the CoachID field for a specific client user.
func (r *mongoUserRepository) SetCoachForClient(ctx context.Context, clientID, coachID primitive.ObjectID) error {
	filter := bson.M{"_id": clientID, "role": domain.RoleClient}
	update := bson.M{
		"$set": bson.M{
			"coachId":   coachID,
			"updatedAt": time.Now().UTC(),
		},
	}

	return matchedOrNotFound(r.collection.UpdateOne(ctx, filter, update))
}

// AddFriend appends friendID to the user's friend list.
func (r *mongoUserRepository) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) error {
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$addToSet": bson.M{"friendIds": friendID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}

	return matchedOrNotFound(r.collection.UpdateOne(ctx, filter, update))
}

// UpdateProgress stores the leveling fields of a user if nobody changed them since update.From
// was read.
func (r *mongoUserRepository) UpdateProgress(ctx context.Context, id primitive.ObjectID, update repository.ProgressUpdate) error {
	filter := progressFilter(id, update.From)
	updateDoc := bson.M{
		"$set": bson.M{
			"level":        update.To.Level,
			"experience":   update.To.Experience,
			"nextLevelExp": update.To.NextLevelExp,
			"updatedAt":    time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrUpdateFailed
	}
	return nil
}

func progressFilter(id primitive.ObjectID, from repository.ProgressLevel) bson.M {
	return bson.M{
		"_id":        id,
		"level":      from.Level,
		"experience": from.Experience,
	}
}

// AddBadges pushes each badge unless the user already holds its code.
func (r *mongoUserRepository) AddBadges(ctx context.Context, id primitive.ObjectID, badges []domain.UnlockedBadge) error {
	for _, b := range badges {
		filter := bson.M{"_id": id, "badges.code": bson.M{"$ne": b.Code}}
		update := bson.M{
			"$push": bson.M{"badges": b},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		}
		if _, err := r.collection.UpdateOne(ctx, filter, update); err != nil {
			return err
		}
	}
	return nil
}

// EnsureUserIndexes creates necessary indexes for the users collection.
// Call this once during application startup.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}},
			Options: options.Index().SetSparse(true), // only clients have a coach
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
