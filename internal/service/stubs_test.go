package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── Cart repository stub ──────────────────────────────────────────────────────

type stubCartRepo struct {
	lines   map[uint]*model.CartLine
	seq     uint
	listErr error
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{lines: make(map[uint]*model.CartLine)}
}

func (r *stubCartRepo) DB() *gorm.DB { return nil }

func (r *stubCartRepo) Create(_ context.Context, l *model.CartLine) error {
	r.seq++
	l.ID = r.seq
	cp := *l
	r.lines[l.ID] = &cp
	return nil
}

func (r *stubCartRepo) FindByID(_ context.Context, id uint) (*model.CartLine, error) {
	l, ok := r.lines[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *stubCartRepo) bySession(sessionID string) []model.CartLine {
	out := make([]model.CartLine, 0)
	for _, l := range r.lines {
		if l.SessionID == sessionID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubCartRepo) ListBySession(_ context.Context, sessionID string) ([]model.CartLine, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.bySession(sessionID), nil
}

func (r *stubCartRepo) ListBySessionTx(_ *gorm.DB, sessionID string) ([]model.CartLine, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.bySession(sessionID), nil
}

func (r *stubCartRepo) Update(_ context.Context, l *model.CartLine) error {
	if _, ok := r.lines[l.ID]; !ok {
		return errNotFound
	}
	cp := *l
	r.lines[l.ID] = &cp
	return nil
}

func (r *stubCartRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.lines[id]; !ok {
		return 0, nil
	}
	delete(r.lines, id)
	return 1, nil
}

func (r *stubCartRepo) ClearSession(_ context.Context, sessionID string) error {
	for id, l := range r.lines {
		if l.SessionID == sessionID {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *stubCartRepo) ClearSessionTx(_ *gorm.DB, sessionID string) error {
	return r.ClearSession(context.Background(), sessionID)
}

func (r *stubCartRepo) TotalBySession(_ context.Context, sessionID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.bySession(sessionID) {
		total = total.Add(l.Amount)
	}
	return total, nil
}

var _ repository.CartRepository = (*stubCartRepo)(nil)

// ── Transaction repository stub ───────────────────────────────────────────────

type stubTxnRepo struct {
	lines    map[uint]*model.TransactionLine
	seq      uint
	batchErr error // injected to simulate a mid-transaction insert failure
}

func newStubTxnRepo() *stubTxnRepo {
	return &stubTxnRepo{lines: make(map[uint]*model.TransactionLine)}
}

func (r *stubTxnRepo) Create(_ context.Context, l *model.TransactionLine) error {
	r.seq++
	l.ID = r.seq
	cp := *l
	r.lines[l.ID] = &cp
	return nil
}

func (r *stubTxnRepo) CreateBatchTx(_ *gorm.DB, lines []model.TransactionLine) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	for i := range lines {
		r.seq++
		lines[i].ID = r.seq
		cp := lines[i]
		r.lines[cp.ID] = &cp
	}
	return nil
}

func (r *stubTxnRepo) FindByID(_ context.Context, id uint) (*model.TransactionLine, error) {
	l, ok := r.lines[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *stubTxnRepo) ListBySale(_ context.Context, saleID uuid.UUID) ([]model.TransactionLine, error) {
	out := make([]model.TransactionLine, 0)
	for _, l := range r.lines {
		if l.SaleID == saleID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTxnRepo) List(_ context.Context, _ dto.TransactionFilter) ([]model.TransactionLine, int64, error) {
	out := make([]model.TransactionLine, 0, len(r.lines))
	for _, l := range r.lines {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (r *stubTxnRepo) Update(_ context.Context, l *model.TransactionLine) error {
	if _, ok := r.lines[l.ID]; !ok {
		return errNotFound
	}
	cp := *l
	r.lines[l.ID] = &cp
	return nil
}

func (r *stubTxnRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.lines[id]; !ok {
		return 0, nil
	}
	delete(r.lines, id)
	return 1, nil
}

func (r *stubTxnRepo) CountBySale(_ context.Context, saleID uuid.UUID) (int64, error) {
	var n int64
	for _, l := range r.lines {
		if l.SaleID == saleID {
			n++
		}
	}
	return n, nil
}

func (r *stubTxnRepo) TotalBySale(_ context.Context, saleID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.lines {
		if l.SaleID == saleID {
			total = total.Add(l.Amount)
		}
	}
	return total, nil
}

var _ repository.TransactionRepository = (*stubTxnRepo)(nil)

// ── Item repository stub ──────────────────────────────────────────────────────

type stubItemRepo struct {
	items map[uuid.UUID]*model.Item
	inUse map[uuid.UUID]bool
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.Item), inUse: make(map[uuid.UUID]bool)}
}

func (r *stubItemRepo) add(name, uom string, sellPrice decimal.Decimal) uuid.UUID {
	id := uuid.New()
	r.items[id] = &model.Item{ID: id, Name: name, UOM: uom, SellPrice: sellPrice}
	return id
}

func (r *stubItemRepo) Create(_ context.Context, i *model.Item) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *stubItemRepo) List(_ context.Context, _ dto.ItemFilter) ([]model.Item, int64, error) {
	all, _ := r.ListAll(context.Background())
	return all, int64(len(all)), nil
}

func (r *stubItemRepo) ListAll(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, *i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (r *stubItemRepo) Update(_ context.Context, i *model.Item) error {
	if _, ok := r.items[i.ID]; !ok {
		return errNotFound
	}
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *stubItemRepo) InUse(_ context.Context, id uuid.UUID) (bool, error) {
	return r.inUse[id], nil
}

var _ repository.ItemRepository = (*stubItemRepo)(nil)

// ── Sale repository stub ──────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales       map[uuid.UUID]*model.Sale
	countByDate int64
	countErr    error
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) add(status string) uuid.UUID {
	id := uuid.New()
	r.sales[id] = &model.Sale{ID: id, Date: time.Now(), Status: status}
	return id
}

func (r *stubSaleRepo) Create(_ context.Context, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) Update(_ context.Context, s *model.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return errNotFound
	}
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *stubSaleRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.sales[id]; !ok {
		return 0, nil
	}
	delete(r.sales, id)
	return 1, nil
}

func (r *stubSaleRepo) CountByDate(_ context.Context, _ time.Time) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.countByDate, nil
}

func (r *stubSaleRepo) DONumberTaken(_ context.Context, do string, exclude *uuid.UUID) (bool, error) {
	for id, s := range r.sales {
		if exclude != nil && id == *exclude {
			continue
		}
		if s.DONumber != nil && *s.DONumber == do {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── Customer repository stub ──────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
	inUse     map[uuid.UUID]bool
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer), inUse: make(map[uuid.UUID]bool)}
}

func (r *stubCustomerRepo) add(name string) uuid.UUID {
	id := uuid.New()
	r.customers[id] = &model.Customer{ID: id, Name: name}
	return id
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomerRepo) List(_ context.Context, _ dto.CustomerFilter) ([]model.Customer, int64, error) {
	all, _ := r.ListAll(context.Background())
	return all, int64(len(all)), nil
}

func (r *stubCustomerRepo) ListAll(_ context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return errNotFound
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.customers[id]; !ok {
		return 0, nil
	}
	delete(r.customers, id)
	return 1, nil
}

func (r *stubCustomerRepo) InUse(_ context.Context, id uuid.UUID) (bool, error) {
	return r.inUse[id], nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── User repository stub ──────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) DB() *gorm.DB { return nil }

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) List(_ context.Context, _ dto.UserFilter) ([]model.User, int64, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Username < out[b].Username })
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return errNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

func (r *stubUserRepo) UsernameTaken(_ context.Context, username string, exclude *uuid.UUID) (bool, error) {
	for id, u := range r.users {
		if exclude != nil && id == *exclude {
			continue
		}
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Login attempt repository stub ─────────────────────────────────────────────

type stubAttemptRepo struct {
	attempts []model.LoginAttempt
}

func (r *stubAttemptRepo) Record(_ context.Context, a *model.LoginAttempt) error {
	a.CreatedAt = time.Now()
	r.attempts = append(r.attempts, *a)
	return nil
}

func (r *stubAttemptRepo) CountRecentFailures(_ context.Context, username, ip string, since time.Time) (int64, error) {
	var n int64
	for _, a := range r.attempts {
		if a.Username == username && a.IP == ip && !a.Success && !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

var _ repository.LoginAttemptRepository = (*stubAttemptRepo)(nil)
