package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func singlePaneLayout(name string) *entity.LayoutState {
	return &entity.LayoutState{
		Version: entity.LayoutStateVersion,
		Name:    name,
		Center: &entity.PaneGroupSnapshot{
			ID: "n1",
			Pane: &entity.PaneSnapshot{
				ID:    "p1",
				Items: []entity.ItemSnapshot{{Kind: "file", Title: "main.go", Data: "/src/main.go"}},
			},
		},
	}
}

func TestManageLayoutsUseCase_Save(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	host := portmocks.NewMockLayoutHost(ctrl)
	repo := repomocks.NewMockLayoutRepository(t)

	host.EXPECT().Snapshot("work").Return(singlePaneLayout("work"))
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.LayoutState")).
		Run(func(_ context.Context, state *entity.LayoutState) {
			assert.Equal(t, "work", state.Name)
			assert.False(t, state.SavedAt.IsZero())
		}).
		Return(nil)

	uc := usecase.NewManageLayoutsUseCase(repo)
	state, err := uc.Save(ctx, host, " work ")
	require.NoError(t, err)
	assert.Equal(t, 1, state.CountPanes())
}

func TestManageLayoutsUseCase_Save_DefaultName(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	host := portmocks.NewMockLayoutHost(ctrl)
	repo := repomocks.NewMockLayoutRepository(t)

	host.EXPECT().Snapshot(usecase.DefaultLayoutName).Return(singlePaneLayout(usecase.DefaultLayoutName))
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewManageLayoutsUseCase(repo)
	_, err := uc.Save(ctx, host, "")
	require.NoError(t, err)
}

func TestManageLayoutsUseCase_Save_InvalidName(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	host := portmocks.NewMockLayoutHost(ctrl)
	repo := repomocks.NewMockLayoutRepository(t)

	uc := usecase.NewManageLayoutsUseCase(repo)
	_, err := uc.Save(ctx, host, "../etc")
	require.ErrorIs(t, err, usecase.ErrInvalidLayoutName)
}

func TestManageLayoutsUseCase_Save_RepoError(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	host := portmocks.NewMockLayoutHost(ctrl)
	repo := repomocks.NewMockLayoutRepository(t)

	host.EXPECT().Snapshot("work").Return(singlePaneLayout("work"))
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewManageLayoutsUseCase(repo)
	_, err := uc.Save(ctx, host, "work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestManageLayoutsUseCase_Restore(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	host := portmocks.NewMockLayoutHost(ctrl)
	repo := repomocks.NewMockLayoutRepository(t)

	stored := singlePaneLayout("work")
	repo.EXPECT().Get(mock.Anything, "work").Return(stored, nil)
	host.EXPECT().Restore(gomock.Any(), stored).Return(nil)

	uc := usecase.NewManageLayoutsUseCase(repo)
	found, err := uc.Restore(ctx, host, "work")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestManageLayoutsUseCase_Restore_NotFound(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	host := portmocks.NewMockLayoutHost(ctrl)
	repo := repomocks.NewMockLayoutRepository(t)

	repo.EXPECT().Get(mock.Anything, "work").Return(nil, repository.ErrLayoutNotFound)

	uc := usecase.NewManageLayoutsUseCase(repo)
	found, err := uc.Restore(ctx, host, "work")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestManageLayoutsUseCase_Restore_Rejected(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	host := portmocks.NewMockLayoutHost(ctrl)
	repo := repomocks.NewMockLayoutRepository(t)

	stored := singlePaneLayout("work")
	stored.Version = entity.LayoutStateVersion + 1
	repo.EXPECT().Get(mock.Anything, "work").Return(stored, nil)
	host.EXPECT().Restore(gomock.Any(), stored).Return(errors.New("unsupported version"))

	uc := usecase.NewManageLayoutsUseCase(repo)
	found, err := uc.Restore(ctx, host, "work")
	require.Error(t, err)
	assert.True(t, found)
}

func TestManageLayoutsUseCase_ListAndDelete(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)

	infos := []entity.LayoutInfo{{Name: "work", PaneCount: 2, ItemCount: 3, UpdatedAt: time.Now()}}
	repo.EXPECT().List(mock.Anything).Return(infos, nil)
	repo.EXPECT().Delete(mock.Anything, "work").Return(nil)
	repo.EXPECT().Delete(mock.Anything, "gone").Return(repository.ErrLayoutNotFound)

	uc := usecase.NewManageLayoutsUseCase(repo)

	got, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, infos, got)

	require.NoError(t, uc.Delete(ctx, "work"))
	assert.ErrorIs(t, uc.Delete(ctx, "gone"), repository.ErrLayoutNotFound)
}
