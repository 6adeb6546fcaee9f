package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

const usersCollection = "usuarios"

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a Firestore-backed user profile repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) col() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	_, err := r.col().Doc(profile.UID).Set(ctx, profile)
	return err
}

func (r *userRepository) GetByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return docToUser(snap)
}

func (r *userRepository) List(ctx context.Context) ([]entity.UserProfile, error) {
	it := r.col().OrderBy("correo", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var users []entity.UserProfile
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		user, err := docToUser(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, uid string, role enum.UserRole) error {
	_, err := r.col().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "rol", Value: role.String()},
	})
	if status.Code(err) == codes.NotFound {
		return apperror.NewNotFoundError("User")
	}
	return err
}

func docToUser(snap *firestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var user entity.UserProfile
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}
	user.UID = snap.Ref.ID
	return &user, nil
}
