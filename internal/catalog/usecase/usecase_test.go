package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"github.com/shoplyhq/shoply/internal/pkg/idempotency"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/storage"
	"github.com/shoplyhq/shoply/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
modules:
  catalog:
    image_bucket: shoply-media
    image_base_url: https://media.example.com
    image_max_size_bytes: 64
`

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqNumberID struct{ next int64 }

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type fixedStringID struct{ id string }

func (f fixedStringID) Generate() string { return f.id }

type fakeDB struct {
	categories map[int64]entity.Category
	products   map[int64]entity.Product

	deletedProducts []int64
	updateErr       error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		categories: make(map[int64]entity.Category),
		products:   make(map[int64]entity.Product),
	}
}

func (f *fakeDB) ListCategories(context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeDB) GetCategory(_ context.Context, id int64) (*entity.Category, error) {
	if c, ok := f.categories[id]; ok {
		return &c, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) CreateCategory(_ context.Context, cat entity.Category) error {
	for _, c := range f.categories {
		if c.Name == cat.Name {
			return goerror.ErrConflict
		}
	}
	f.categories[cat.ID] = cat
	return nil
}

func (f *fakeDB) UpdateCategory(_ context.Context, cat entity.Category) error {
	for id, c := range f.categories {
		if id != cat.ID && c.Name == cat.Name {
			return goerror.ErrConflict
		}
	}
	f.categories[cat.ID] = cat
	return nil
}

func (f *fakeDB) DeleteCategory(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeDB) ListProducts(_ context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeDB) GetProduct(_ context.Context, id int64) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) CreateProduct(_ context.Context, p entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeDB) UpdateProduct(_ context.Context, p entity.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeDB) DeleteProduct(_ context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.products, id)
	f.deletedProducts = append(f.deletedProducts, id)
	return nil
}

func (f *fakeDB) UpdateProductImage(_ context.Context, id int64, imageURL string) error {
	p, ok := f.products[id]
	if !ok {
		return goerror.ErrNotFound
	}
	p.ImageURL = imageURL
	f.products[id] = p
	return nil
}

// fakeIdempotency replays the state machine in memory: first Exec runs fn,
// later Execs with the same key report completion or failure.
type fakeIdempotency struct {
	states map[string]idempotency.State
}

func newFakeIdempotency() *fakeIdempotency {
	return &fakeIdempotency{states: make(map[string]idempotency.State)}
}

func (f *fakeIdempotency) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	if st, ok := f.states[key]; ok {
		return st, nil
	}
	f.states[key] = idempotency.StateInProgress
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(_ context.Context, key string, _ time.Duration) error {
	f.states[key] = idempotency.StateCompleted
	return nil
}

func (f *fakeIdempotency) MarkFailed(_ context.Context, key string, _ time.Duration) error {
	f.states[key] = idempotency.StateFailed
	return nil
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	state, err := f.Acquire(ctx, key, 0)
	if err != nil {
		return err
	}

	switch state {
	case idempotency.StateInProgress:
		return idempotency.ErrAlreadyInProgress
	case idempotency.StateCompleted:
		return idempotency.ErrAlreadyCompleted
	case idempotency.StateFailed:
		return idempotency.ErrAlreadyFailed
	}

	if err := fn(ctx); err != nil {
		_ = f.MarkFailed(ctx, key, 0)
		return err
	}
	return f.MarkCompleted(ctx, key, 0)
}

type storedObject struct {
	bucket      string
	key         string
	size        int64
	contentType string
}

type fakeStorage struct {
	puts   []storedObject
	putErr error
}

func (f *fakeStorage) Close() error { return nil }

func (f *fakeStorage) PutObject(_ context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
	if f.putErr != nil {
		return storage.ObjectInfo{}, f.putErr
	}

	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}

	f.puts = append(f.puts, storedObject{bucket: bucket, key: key, size: n, contentType: opts.ContentType})
	return storage.ObjectInfo{Bucket: bucket, Key: key, Size: n, ContentType: opts.ContentType}, nil
}

func (f *fakeStorage) GetObject(context.Context, string, string, storage.GetOptions) (io.ReadCloser, storage.ObjectInfo, error) {
	return nil, storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeStorage) StatObject(context.Context, string, string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeStorage) DeleteObject(context.Context, string, string) error { return nil }

func (f *fakeStorage) ListObjects(context.Context, string, string, storage.ListOptions) ([]storage.ObjectInfo, error) {
	return nil, nil
}

func (f *fakeStorage) PresignGet(context.Context, string, string, time.Duration) (string, error) {
	return "", storage.ErrMissingSigner
}

func (f *fakeStorage) PresignPut(context.Context, string, string, storage.PutOptions, time.Duration) (string, error) {
	return "", storage.ErrMissingSigner
}

type testEnv struct {
	uc      *Usecase
	db      *fakeDB
	idemp   *fakeIdempotency
	storage *fakeStorage
	clock   fixedClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	db := newFakeDB()
	idemp := newFakeIdempotency()
	store := &fakeStorage{}
	clk := fixedClock{now: time.Now()}

	uc := New(Dependency{
		RepoDB:      db,
		Validator:   v10,
		Config:      cfg,
		UID:         &seqNumberID{},
		OID:         fixedStringID{id: "obj1"},
		Clock:       clk,
		Idempotency: idemp,
		Storage:     store,
		Instrument:  instrument.NewNoop(),
	})

	return &testEnv{uc: uc, db: db, idemp: idemp, storage: store, clock: clk}
}

func requireBusinessError(t *testing.T, err error, msg string, status int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, msg, gerr.Msg())
	require.Equal(t, status, gerr.StatusCode())
}

func seedCategory(env *testEnv, id int64, name string) {
	env.db.categories[id] = entity.Category{ID: id, Name: name}
}

func validProductInput(categoryID int64) ProductInput {
	return ProductInput{
		CategoryID:  categoryID,
		Name:        "Mechanical Keyboard",
		Description: "Tenkeyless, brown switches",
		Price:       "129.99",
		Stock:       10,
		IsAvailable: true,
	}
}
