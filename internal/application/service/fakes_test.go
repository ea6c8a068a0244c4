package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/truythudien/truythu-api/internal/domain/entity"
)

// In-memory repository fakes implementing the domain interfaces.

type fakePriceConfigRepo struct {
	cfg       *entity.PriceConfig
	getErr    error
	upsertErr error
}

func (f *fakePriceConfigRepo) Get(ctx context.Context) (*entity.PriceConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.cfg == nil {
		return nil, nil
	}
	cp := *f.cfg
	return &cp, nil
}

func (f *fakePriceConfigRepo) Upsert(ctx context.Context, cfg *entity.PriceConfig) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	cfg.UpdatedAt = time.Now()
	cp := *cfg
	f.cfg = &cp
	return nil
}

type fakeCalculationRepo struct {
	calcs     []entity.Calculation
	clock     time.Time
	createErr error
	listErr   error
}

func (f *fakeCalculationRepo) Create(ctx context.Context, calc *entity.Calculation) error {
	if f.createErr != nil {
		return f.createErr
	}
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}
	if f.clock.IsZero() {
		f.clock = time.Now()
	}
	f.clock = f.clock.Add(time.Second)
	calc.CreatedAt = f.clock
	f.calcs = append(f.calcs, *calc)
	return nil
}

func (f *fakeCalculationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Calculation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []entity.Calculation
	for _, c := range f.calcs {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeCalculationRepo) ListAll(ctx context.Context) ([]entity.Calculation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]entity.Calculation(nil), f.calcs...)
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(calcs []entity.Calculation) {
	sort.SliceStable(calcs, func(i, j int) bool {
		return calcs[i].CreatedAt.After(calcs[j].CreatedAt)
	})
}

type fakeUserRepo struct {
	users     []entity.User
	createErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	return append([]entity.User(nil), f.users...), nil
}
