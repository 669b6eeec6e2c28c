package service

import (
	"context"
	"time"

	"cloudshop/internal/model"

	"github.com/jackc/pgx/v5"
)

// In-memory repository fakes. They honor the same not-found conventions as
// the real implementations: (nil, nil) on lookups, pgx.ErrNoRows on writes
// that matched nothing.

type fakeUserRepo struct {
	users  []*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == login || u.Phone == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*model.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) PhoneExists(_ context.Context, phone string) (bool, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeAdminRepo struct {
	admins []*model.Admin
	nextID int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{nextID: 1}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	admin.ID = r.nextID
	r.nextID++
	cp := *admin
	r.admins = append(r.admins, &cp)
	return nil
}

func (r *fakeAdminRepo) FindByUsername(_ context.Context, username string) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id int) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	for _, a := range r.admins {
		if a.ID == id {
			a.PasswordHash = passwordHash
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeAdminRepo) Count(_ context.Context) (int, error) {
	return len(r.admins), nil
}

type fakeSmsRepo struct {
	codes map[string]model.SmsCode
}

func newFakeSmsRepo() *fakeSmsRepo {
	return &fakeSmsRepo{codes: make(map[string]model.SmsCode)}
}

func (r *fakeSmsRepo) Save(_ context.Context, code *model.SmsCode) error {
	r.codes[code.Phone] = *code
	return nil
}

func (r *fakeSmsRepo) Verify(_ context.Context, phone, code string) (*model.SmsCode, error) {
	sc, ok := r.codes[phone]
	if !ok || sc.Code != code || !sc.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	cp := sc
	return &cp, nil
}

func (r *fakeSmsRepo) Delete(_ context.Context, phone string) error {
	delete(r.codes, phone)
	return nil
}

type fakeCaptchaRepo struct {
	captchas map[string]*model.Captcha
}

func newFakeCaptchaRepo() *fakeCaptchaRepo {
	return &fakeCaptchaRepo{captchas: make(map[string]*model.Captcha)}
}

func (r *fakeCaptchaRepo) Save(_ context.Context, captcha *model.Captcha) error {
	cp := *captcha
	r.captchas[captcha.ID] = &cp
	return nil
}

func (r *fakeCaptchaRepo) Verify(_ context.Context, id, text string) (*model.Captcha, error) {
	c, ok := r.captchas[id]
	if !ok || c.Text != text || c.Used || !c.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCaptchaRepo) MarkUsed(_ context.Context, id string) error {
	if c, ok := r.captchas[id]; ok {
		c.Used = true
	}
	return nil
}

type fakeOrderRepo struct {
	orders []*model.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *model.Order) error {
	order.ID = r.nextID
	r.nextID++
	cp := *order
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) FindByOrderID(_ context.Context, orderID string) (*model.Order, error) {
	for _, o := range r.orders {
		if o.OrderID == orderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindByUser(_ context.Context, userID int) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID, status string) error {
	for _, o := range r.orders {
		if o.OrderID == orderID {
			o.Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

// fakeSender records sent codes and can be told to fail
type fakeSender struct {
	sent map[string]string
	fail error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(map[string]string)}
}

func (s *fakeSender) Send(_ context.Context, phone, code string) error {
	if s.fail != nil {
		return s.fail
	}
	s.sent[phone] = code
	return nil
}
