package repository

import (
	"context"
	"errors"
	"testing"

	"healthathome/internal/domain/entities"
	mock_interfaces "healthathome/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCachedExamRepository_GetByCode(t *testing.T) {
	ctx := context.Background()
	hem := entities.LaboratoryExam{Codigo: "HEM01", Precio: "S/ 35.00", Activo: true}

	t.Run("hit skips storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExamRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		cache.EXPECT().Get(ctx, "HEM01").Return(hem, true, nil)

		got, err := NewCachedExamRepository(repo, cache).GetByCode(ctx, "HEM01")
		if err != nil || got.Codigo != "HEM01" {
			t.Fatalf("unexpected %+v %v", got, err)
		}
	})

	t.Run("miss reads storage and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExamRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		cache.EXPECT().Get(ctx, "HEM01").Return(entities.LaboratoryExam{}, false, nil)
		repo.EXPECT().GetByCode(ctx, "HEM01").Return(hem, nil)
		cache.EXPECT().Set(ctx, hem).Return(nil)

		if _, err := NewCachedExamRepository(repo, cache).GetByCode(ctx, "HEM01"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExamRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		cache.EXPECT().Get(ctx, "X").Return(entities.LaboratoryExam{}, false, nil)
		repo.EXPECT().GetByCode(ctx, "X").Return(entities.LaboratoryExam{}, nil)

		got, err := NewCachedExamRepository(repo, cache).GetByCode(ctx, "X")
		if err != nil || got.Codigo != "" {
			t.Fatalf("unexpected %+v %v", got, err)
		}
	})

	t.Run("cache outage falls back to storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExamRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		cache.EXPECT().Get(ctx, "HEM01").Return(entities.LaboratoryExam{}, false, errors.New("redis down"))
		repo.EXPECT().GetByCode(ctx, "HEM01").Return(hem, nil)
		cache.EXPECT().Set(ctx, hem).Return(errors.New("redis down"))

		got, err := NewCachedExamRepository(repo, cache).GetByCode(ctx, "HEM01")
		if err != nil || got.Codigo != "HEM01" {
			t.Fatalf("unexpected %+v %v", got, err)
		}
	})
}

func TestCachedExamRepository_GetByCodes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIExamRepository(ctrl)
	cache := mock_interfaces.NewMockICatalogCache(ctrl)

	a := entities.LaboratoryExam{Codigo: "A"}
	b := entities.LaboratoryExam{Codigo: "B"}
	cache.EXPECT().Get(ctx, "A").Return(a, true, nil)
	cache.EXPECT().Get(ctx, "B").Return(entities.LaboratoryExam{}, false, nil)
	cache.EXPECT().Get(ctx, "C").Return(entities.LaboratoryExam{}, false, nil)
	repo.EXPECT().GetByCodes(ctx, []string{"B", "C"}).Return([]entities.LaboratoryExam{b}, nil)
	cache.EXPECT().Set(ctx, b).Return(nil)

	got, err := NewCachedExamRepository(repo, cache).GetByCodes(ctx, []string{"A", "B", "C"})
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected %v %v", got, err)
	}
}

func TestCachedExamRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	hem := entities.LaboratoryExam{Codigo: "HEM01"}

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExamRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		gomock.InOrder(
			repo.EXPECT().Update(ctx, hem).Return(hem, nil),
			cache.EXPECT().Invalidate(ctx, "HEM01").Return(nil),
		)
		if _, err := NewCachedExamRepository(repo, cache).Update(ctx, hem); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExamRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		repo.EXPECT().Delete(ctx, "HEM01").Return(hem, nil)
		cache.EXPECT().Invalidate(ctx, "HEM01").Return(errors.New("redis down"))
		if _, err := NewCachedExamRepository(repo, cache).Delete(ctx, "HEM01"); err != nil {
			t.Fatalf("invalidate failures must not fail the write: %v", err)
		}
	})

	t.Run("failed write leaves the cache alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExamRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		repo.EXPECT().Create(ctx, hem).Return(entities.LaboratoryExam{}, errors.New("db"))
		if _, err := NewCachedExamRepository(repo, cache).Create(ctx, hem); err == nil {
			t.Fatalf("expected error")
		}
	})
}
