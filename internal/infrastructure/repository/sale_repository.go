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

const salesCollection = "ventas"

type saleRepository struct {
	client *firestore.Client
}

// NewSaleRepository creates a Firestore-backed sale repository.
func NewSaleRepository(client *firestore.Client) repository.SaleRepository {
	return &saleRepository{client: client}
}

func (r *saleRepository) col() *firestore.CollectionRef {
	return r.client.Collection(salesCollection)
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) (string, error) {
	ref, _, err := r.col().Add(ctx, sale)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return docToSale(snap)
}

func (r *saleRepository) List(ctx context.Context) ([]entity.Sale, error) {
	it := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var sales []entity.Sale
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		sale, err := docToSale(snap)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *sale)
	}
	return sales, nil
}

func docToSale(snap *firestore.DocumentSnapshot) (*entity.Sale, error) {
	var sale entity.Sale
	if err := snap.DataTo(&sale); err != nil {
		return nil, err
	}
	sale.ID = snap.Ref.ID
	return &sale, nil
}
