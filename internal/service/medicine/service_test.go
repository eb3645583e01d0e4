package medicine

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

type fakeMedicineRepo struct {
	medicines map[int64]*model.Medicine
	nextID    int64
}

func newFakeMedicineRepo() *fakeMedicineRepo {
	return &fakeMedicineRepo{medicines: map[int64]*model.Medicine{}}
}

func (f *fakeMedicineRepo) Create(ctx context.Context, m *model.Medicine) (int64, error) {
	f.nextID++
	m.ID = f.nextID
	f.medicines[m.ID] = m
	return m.ID, nil
}

func (f *fakeMedicineRepo) List(ctx context.Context) ([]*model.Medicine, error) {
	list := []*model.Medicine{}
	for _, m := range f.medicines {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (f *fakeMedicineRepo) Update(ctx context.Context, m *model.Medicine) error {
	if _, ok := f.medicines[m.ID]; !ok {
		return repository.ErrNotFound
	}
	f.medicines[m.ID] = m
	return nil
}

func (f *fakeMedicineRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.medicines[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.medicines, id)
	return nil
}

func medicineRequest(name string, stock int, price float64) *model.MedicineRequest {
	return &model.MedicineRequest{Name: name, Stock: &stock, Price: &price}
}

func TestAddAndListMedicines(t *testing.T) {
	repo := newFakeMedicineRepo()
	svc := NewService(repo)

	_, err := svc.AddMedicine(context.Background(), medicineRequest("Paracetamol", 100, 2.50))
	require.NoError(t, err)
	id, err := svc.AddMedicine(context.Background(), medicineRequest("Amoxicillin", 40, 8.00))
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	medicines, err := svc.ListMedicines(context.Background())
	require.NoError(t, err)
	require.Len(t, medicines, 2)
	assert.Equal(t, "Amoxicillin", medicines[0].Name)
	assert.Equal(t, "Paracetamol", medicines[1].Name)
}

func TestUpdateMedicine(t *testing.T) {
	repo := newFakeMedicineRepo()
	svc := NewService(repo)

	id, err := svc.AddMedicine(context.Background(), medicineRequest("Paracetamol", 100, 2.50))
	require.NoError(t, err)

	err = svc.UpdateMedicine(context.Background(), id, medicineRequest("Paracetamol", 80, 2.75))
	require.NoError(t, err)
	assert.Equal(t, 80, repo.medicines[id].Stock)
	assert.Equal(t, 2.75, repo.medicines[id].Price)
}

func TestUpdateMedicineNotFound(t *testing.T) {
	repo := newFakeMedicineRepo()
	svc := NewService(repo)

	_, err := svc.AddMedicine(context.Background(), medicineRequest("Paracetamol", 100, 2.50))
	require.NoError(t, err)

	err = svc.UpdateMedicine(context.Background(), 99, medicineRequest("Ibuprofen", 10, 3.00))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
	assert.Len(t, repo.medicines, 1)
	assert.Equal(t, "Paracetamol", repo.medicines[1].Name)
}

func TestDeleteMedicineNotFound(t *testing.T) {
	repo := newFakeMedicineRepo()
	svc := NewService(repo)

	_, err := svc.AddMedicine(context.Background(), medicineRequest("Paracetamol", 100, 2.50))
	require.NoError(t, err)

	err = svc.DeleteMedicine(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
	assert.Len(t, repo.medicines, 1)

	err = svc.DeleteMedicine(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, repo.medicines)
}
