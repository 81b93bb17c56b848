package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/foodpoint-pos/kds"
	"github.com/yeremiapane/foodpoint-pos/models"
	"github.com/yeremiapane/foodpoint-pos/repositories"
)

type mockMenuRepo struct {
	mock.Mock
}

func (m *mockMenuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	if args.Error(0) == nil {
		item.ID = 1
	}
	return args.Error(0)
}

func (m *mockMenuRepo) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *mockMenuRepo) FindByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *mockMenuRepo) FindByID(ctx context.Context, id uint) (models.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.MenuItem), args.Error(1)
}

func (m *mockMenuRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockImages struct {
	mock.Mock
}

func (m *mockImages) Save(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *mockImages) Remove(url string) error {
	return m.Called(url).Error(0)
}

func TestMenuService_Create(t *testing.T) {
	repo := new(mockMenuRepo)
	images := new(mockImages)
	notifier := &recordingNotifier{}
	svc := NewMenuService(repo, images, notifier)

	file := newFileHeader(t, "pizza.jpg", []byte("x"))
	images.On("Save", file).Return("/uploads/abc_pizza.jpg", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.MenuItem")).Return(nil)

	item, err := svc.Create(context.Background(), CreateMenuItemInput{
		Name: " Pizza ", Category: "Main", Price: 12.5, Image: file,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), item.ID)
	assert.Equal(t, "Pizza", item.Name)
	require.NotNil(t, item.ImageUrl)
	assert.Equal(t, "/uploads/abc_pizza.jpg", *item.ImageUrl)
	assert.Equal(t, []string{kds.EventMenuItemCreated}, notifier.names())

	repo.AssertExpectations(t)
	images.AssertExpectations(t)
}

func TestMenuService_CreateValidation(t *testing.T) {
	repo := new(mockMenuRepo)
	images := new(mockImages)
	svc := NewMenuService(repo, images, NopNotifier{})
	file := newFileHeader(t, "pizza.jpg", []byte("x"))

	tests := []struct {
		name string
		in   CreateMenuItemInput
	}{
		{"missing name", CreateMenuItemInput{Category: "Main", Price: 1, Image: file}},
		{"missing category", CreateMenuItemInput{Name: "Pizza", Price: 1, Image: file}},
		{"negative price", CreateMenuItemInput{Name: "Pizza", Category: "Main", Price: -1, Image: file}},
		{"sub-cent price", CreateMenuItemInput{Name: "Pizza", Category: "Main", Price: 4.999, Image: file}},
		{"missing image", CreateMenuItemInput{Name: "Pizza", Category: "Main", Price: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	images.AssertNotCalled(t, "Save", mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuService_CreateImageWriteFails(t *testing.T) {
	repo := new(mockMenuRepo)
	images := new(mockImages)
	svc := NewMenuService(repo, images, NopNotifier{})

	file := newFileHeader(t, "pizza.jpg", []byte("x"))
	images.On("Save", file).Return("", errors.New("disk full"))

	_, err := svc.Create(context.Background(), CreateMenuItemInput{Name: "Pizza", Category: "Main", Price: 1, Image: file})
	assert.ErrorIs(t, err, ErrImageWrite)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuService_CreateRowFailsRemovesImage(t *testing.T) {
	repo := new(mockMenuRepo)
	images := new(mockImages)
	svc := NewMenuService(repo, images, NopNotifier{})

	file := newFileHeader(t, "pizza.jpg", []byte("x"))
	dbErr := errors.New("db down")
	images.On("Save", file).Return("/uploads/abc_pizza.jpg", nil)
	images.On("Remove", "/uploads/abc_pizza.jpg").Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.Create(context.Background(), CreateMenuItemInput{Name: "Pizza", Category: "Main", Price: 1, Image: file})
	assert.ErrorIs(t, err, dbErr)
	images.AssertCalled(t, "Remove", "/uploads/abc_pizza.jpg")
}

func TestMenuService_ListByCategory(t *testing.T) {
	repo := new(mockMenuRepo)
	svc := NewMenuService(repo, new(mockImages), NopNotifier{})

	drinks := []models.MenuItem{{ID: 2, Name: "Soda", Category: "Drinks"}}
	repo.On("FindByCategory", mock.Anything, "Drinks").Return(drinks, nil)
	repo.On("FindAll", mock.Anything).Return([]models.MenuItem{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.List(context.Background(), "Drinks")
	require.NoError(t, err)
	assert.Equal(t, drinks, got)

	all, err := svc.List(context.Background(), "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMenuService_DeleteUnknown(t *testing.T) {
	repo := new(mockMenuRepo)
	images := new(mockImages)
	svc := NewMenuService(repo, images, NopNotifier{})

	repo.On("FindByID", mock.Anything, uint(5)).Return(models.MenuItem{}, repositories.ErrNotFound)

	deleted, err := svc.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, deleted)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	images.AssertNotCalled(t, "Remove", mock.Anything)
}

func TestMenuService_DeleteKeepsGoingWhenImageRemovalFails(t *testing.T) {
	repo := new(mockMenuRepo)
	images := new(mockImages)
	notifier := &recordingNotifier{}
	svc := NewMenuService(repo, images, notifier)

	url := "/uploads/abc_pizza.jpg"
	repo.On("FindByID", mock.Anything, uint(3)).Return(models.MenuItem{ID: 3, ImageUrl: &url}, nil)
	images.On("Remove", url).Return(errors.New("permission denied"))
	repo.On("Delete", mock.Anything, uint(3)).Return(nil)

	deleted, err := svc.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{kds.EventMenuItemDeleted}, notifier.names())
	repo.AssertExpectations(t)
}

func TestMenuService_DeleteRowFails(t *testing.T) {
	repo := new(mockMenuRepo)
	svc := NewMenuService(repo, new(mockImages), NopNotifier{})

	dbErr := errors.New("locked")
	repo.On("FindByID", mock.Anything, uint(3)).Return(models.MenuItem{ID: 3}, nil)
	repo.On("Delete", mock.Anything, uint(3)).Return(dbErr)

	deleted, err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, deleted)
}
