package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/innovest/platform/internal/core/domain"
)

// EnsureAdminUser seeds the bootstrap admin account when no admin exists yet.
// The seeded account is pre-approved; every other route into the users
// collection starts at pending.
func EnsureAdminUser(ctx context.Context, db *mongo.Database, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	coll := db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := coll.FindOne(ctx, bson.M{"role": string(domain.RoleAdmin)}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("seed admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Phone:        "555-123-4567",
		Bio:          "System administrator",
		Role:         domain.RoleAdmin,
		Status:       domain.StatusApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := coll.InsertOne(ctx, toUserDoc(admin)); err != nil {
		// another instance may have seeded concurrently
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
