package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"someday-maybe/internal/board"
	"someday-maybe/internal/board/repository"
	"someday-maybe/internal/model"
	"someday-maybe/pkg/datemath"
	pkgLog "someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

// Options tunes behaviour that changed between product revisions.
type Options struct {
	// DefaultDueToday makes AddTask fill an empty due date with today.
	DefaultDueToday bool
	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

// implUseCase is the private implementation of board.UseCase. mu serialises
// every mutate+persist pair.
type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	attachments board.AttachmentCleaner
	dateMath    *datemath.Parser
	metrics     *metrics.Metrics
	opt         Options

	mu    sync.Mutex
	board model.Board
}

// New creates the Board Store and loads the persisted board. A missing or
// unreadable board is replaced by the default board, which is then saved.
func New(
	ctx context.Context,
	l pkgLog.Logger,
	repo repository.Repository,
	attachments board.AttachmentCleaner,
	dateMath *datemath.Parser,
	m *metrics.Metrics,
	opt Options,
) *implUseCase {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.NewID == nil {
		opt.NewID = uuid.NewString
	}

	uc := &implUseCase{
		l:           l,
		repo:        repo,
		attachments: attachments,
		dateMath:    dateMath,
		metrics:     m,
		opt:         opt,
	}
	uc.load(ctx)
	return uc
}

func (uc *implUseCase) load(ctx context.Context) {
	saved, found, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "board.usecase.load: falling back to default board: %v", err)
		found = false
	}

	if found {
		uc.board = normalizeBoard(saved)
		uc.l.Infof(ctx, "board.usecase.load: loaded %d lists", len(uc.board.Lists))
		return
	}

	uc.board = uc.defaultBoard()
	// A store that could not be read may still hold a good board; only an
	// absent or undecodable one is replaced on disk.
	if err != nil && !errors.Is(err, repository.ErrCorruptBoard) {
		return
	}
	if err := uc.persist(ctx); err != nil {
		uc.l.Warnf(ctx, "board.usecase.load: default board not saved: %v", err)
	}
}

func (uc *implUseCase) defaultBoard() model.Board {
	titles := []string{"To Do", "Reminders", "Done"}
	lists := make([]model.List, len(titles))
	for i, title := range titles {
		lists[i] = model.List{
			ID:       uc.opt.NewID(),
			Title:    title,
			SortMode: model.SortModeDate,
			Tasks:    []model.Task{},
		}
	}
	return model.Board{Theme: model.DefaultTheme, Lists: lists}
}
