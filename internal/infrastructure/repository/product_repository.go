package repository

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

const productsCollection = "productos"

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates a Firestore-backed product repository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) col() *firestore.CollectionRef {
	return r.client.Collection(productsCollection)
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.col().Doc(product.ID).Create(ctx, product)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return apperror.NewConflictError("Barcode already registered")
		}
		return err
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return docToProduct(snap)
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	it := r.col().OrderBy("nombre", firestore.Asc).Documents(ctx)
	defer it.Stop()
	return collectProducts(it)
}

func (r *productRepository) ListBySupplier(ctx context.Context, supplierID string) ([]entity.Product, error) {
	it := r.col().Where("proveedorId", "==", supplierID).Documents(ctx)
	defer it.Stop()
	return collectProducts(it)
}

func (r *productRepository) AdjustQuantity(ctx context.Context, id string, delta int) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "cantidad", Value: firestore.Increment(delta)},
	})
	if status.Code(err) == codes.NotFound {
		return apperror.NewNotFoundError("Product")
	}
	return err
}

func (r *productRepository) RegisterSale(ctx context.Context, id string, qty int) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "cantidad", Value: firestore.Increment(-qty)},
		{Path: "ventas", Value: firestore.Increment(qty)},
	})
	if status.Code(err) == codes.NotFound {
		return apperror.NewNotFoundError("Product")
	}
	return err
}

func (r *productRepository) Watch(ctx context.Context) (<-chan []entity.Product, error) {
	out := make(chan []entity.Product)

	go func() {
		defer close(out)

		snapshots := r.col().OrderBy("nombre", firestore.Asc).Snapshots(ctx)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Printf("products: snapshot stream ended: %v", err)
				}
				return
			}

			products, err := collectProducts(snap.Documents)
			if err != nil {
				log.Printf("products: snapshot decode failed: %v", err)
				continue
			}

			select {
			case out <- products:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func docToProduct(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
	var product entity.Product
	if err := snap.DataTo(&product); err != nil {
		return nil, err
	}
	product.ID = snap.Ref.ID
	if product.Barcode == "" {
		product.Barcode = snap.Ref.ID
	}
	return &product, nil
}

func collectProducts(it *firestore.DocumentIterator) ([]entity.Product, error) {
	var products []entity.Product
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		product, err := docToProduct(snap)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}
