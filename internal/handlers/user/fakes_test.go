package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"quickplate_back_end/internal/models"
	"quickplate_back_end/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- fake UserStore ---

type fakeUsers struct {
	byID map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return store.ErrDuplicate
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) SetOtp(_ context.Context, userID, otp string) error {
	u, ok := f.byID[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.Otp = otp
	return nil
}

func (f *fakeUsers) ResetPassword(_ context.Context, userID, otp, hashedPassword string) error {
	u, ok := f.byID[userID]
	if !ok || u.Otp == "" || u.Otp != otp {
		return store.ErrNotFound
	}
	u.Password = hashedPassword
	u.Otp = ""
	return nil
}

func (f *fakeUsers) PushCartItem(_ context.Context, userID, foodID string) error {
	u, ok := f.byID[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.CartItems = append(u.CartItems, foodID)
	return nil
}

func (f *fakeUsers) PullCartItem(_ context.Context, userID, foodID string) error {
	u, ok := f.byID[userID]
	if !ok {
		return nil
	}
	kept := u.CartItems[:0]
	for _, id := range u.CartItems {
		if id != foodID {
			kept = append(kept, id)
		}
	}
	u.CartItems = kept
	return nil
}

func (f *fakeUsers) ClearCartItems(_ context.Context, userID string) error {
	if u, ok := f.byID[userID]; ok {
		u.CartItems = []string{}
	}
	return nil
}

// --- fake FoodStore ---

type fakeFoods struct {
	byID map[string]*models.Food
}

func newFakeFoods() *fakeFoods {
	return &fakeFoods{byID: map[string]*models.Food{}}
}

func (f *fakeFoods) Insert(_ context.Context, food *models.Food) error {
	cp := *food
	f.byID[food.ID] = &cp
	return nil
}

func (f *fakeFoods) FindByUserAndProduct(_ context.Context, userID, productID string) (*models.Food, error) {
	for _, food := range f.byID {
		if food.UserID == userID && food.ProductID == productID {
			cp := *food
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeFoods) FindByUser(_ context.Context, userID string) ([]models.Food, error) {
	var out []models.Food
	for _, food := range f.byID {
		if food.UserID == userID {
			out = append(out, *food)
		}
	}
	return out, nil
}

func (f *fakeFoods) Increment(_ context.Context, id string) (*models.Food, error) {
	food, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	food.Quantity++
	food.TotalPrice = food.Price * float64(food.Quantity)
	cp := *food
	return &cp, nil
}

func (f *fakeFoods) Decrement(_ context.Context, id string) (*models.Food, bool, error) {
	food, ok := f.byID[id]
	if !ok {
		return nil, false, store.ErrNotFound
	}
	if food.Quantity <= 0 {
		return nil, false, store.ErrMinQuantity
	}
	if food.Quantity == 1 {
		delete(f.byID, id)
		cp := *food
		cp.Quantity = 0
		cp.TotalPrice = 0
		return &cp, true, nil
	}
	food.Quantity--
	food.TotalPrice = food.Price * float64(food.Quantity)
	cp := *food
	return &cp, false, nil
}

func (f *fakeFoods) DeleteOwned(_ context.Context, id, userID string) error {
	food, ok := f.byID[id]
	if !ok || food.UserID != userID {
		return store.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeFoods) DeleteByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for id, food := range f.byID {
		if food.UserID == userID {
			delete(f.byID, id)
			n++
		}
	}
	return n, nil
}

// --- fake CodeStore ---

type fakeCodes struct {
	byCode map[string]string
}

func newFakeCodes() *fakeCodes {
	return &fakeCodes{byCode: map[string]string{}}
}

func (f *fakeCodes) BindCode(_ context.Context, code, userID string, _ time.Duration) error {
	f.byCode[code] = userID
	return nil
}

func (f *fakeCodes) LookupCode(_ context.Context, code string) (string, error) {
	return f.byCode[code], nil
}

func (f *fakeCodes) DeleteCode(_ context.Context, code string) error {
	delete(f.byCode, code)
	return nil
}

// --- fake Mailer ---

type fakeMailer struct {
	err      error
	sentTo   string
	sentOtp  string
	sentName string
	calls    int
}

func (f *fakeMailer) SendOtpEmail(to, name, otp string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.sentTo = to
	f.sentName = name
	f.sentOtp = otp
	return nil
}

var errSMTPDown = errors.New("smtp unreachable")

// --- helpers HTTP ---

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
