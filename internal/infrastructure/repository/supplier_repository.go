package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
)

const suppliersCollection = "proveedores"

type supplierRepository struct {
	client *firestore.Client
}

// NewSupplierRepository creates a Firestore-backed supplier repository.
func NewSupplierRepository(client *firestore.Client) repository.SupplierRepository {
	return &supplierRepository{client: client}
}

func (r *supplierRepository) col() *firestore.CollectionRef {
	return r.client.Collection(suppliersCollection)
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) (string, error) {
	ref, _, err := r.col().Add(ctx, supplier)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return docToSupplier(snap)
}

func (r *supplierRepository) List(ctx context.Context) ([]entity.Supplier, error) {
	it := r.col().OrderBy("nombre", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var suppliers []entity.Supplier
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		supplier, err := docToSupplier(snap)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, *supplier)
	}
	return suppliers, nil
}

func docToSupplier(snap *firestore.DocumentSnapshot) (*entity.Supplier, error) {
	var supplier entity.Supplier
	if err := snap.DataTo(&supplier); err != nil {
		return nil, err
	}
	supplier.ID = snap.Ref.ID
	return &supplier, nil
}
