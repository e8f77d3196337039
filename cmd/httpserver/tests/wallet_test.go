package tests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/test"
	"github.com/go-petr/coin-wallet/pkg/web"
)

func TestSeededCryptocurrencies(t *testing.T) {
	server := newServer(t, testConfig())

	recorder := do(t, server, http.MethodGet, "/api/cryptocurrencies", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	var got []domain.Cryptocurrency
	decode(t, recorder, &got)

	type listed struct {
		ID     int32
		Symbol string
		Price  string
	}

	want := []listed{
		{1, "BTC", "42350.00"},
		{2, "ETH", "2680.50"},
		{3, "ADA", "0.48"},
		{4, "SOL", "98.32"},
	}

	gotListed := make([]listed, len(got))
	for i, c := range got {
		gotListed[i] = listed{c.ID, c.Symbol, c.Price}
	}

	if diff := cmp.Diff(want, gotListed); diff != "" {
		t.Errorf("cryptocurrencies mismatch (-want +got):\n%s", diff)
	}
}

func TestDemoUser(t *testing.T) {
	server := newServer(t, testConfig())

	recorder := do(t, server, http.MethodGet, "/api/users/1", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	if strings.Contains(recorder.Body.String(), "assword") {
		t.Errorf("user response exposes password data: %s", recorder.Body.String())
	}

	var got domain.User
	decode(t, recorder, &got)

	want := domain.User{
		ID:               1,
		Username:         "alexchen",
		Email:            "alex.chen@gameexpert.com",
		FirstName:        "Alex",
		LastName:         "Chen",
		TotalBalance:     "12450.67",
		AvailableBalance: "8250.30",
	}

	ignore := cmpopts.IgnoreFields(domain.User{}, "Avatar", "CreatedAt")
	if diff := cmp.Diff(want, got, ignore); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}

	if got.Avatar == nil {
		t.Errorf("got.Avatar = nil, want the demo avatar")
	}

	recorder = do(t, server, http.MethodGet, "/api/users/2", nil)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Status code of unknown user: got %v, want %v", recorder.Code, http.StatusNotFound)
	}
}

func TestUnknownCryptocurrency(t *testing.T) {
	server := newServer(t, testConfig())

	recorder := do(t, server, http.MethodGet, "/api/cryptocurrencies/999", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusNotFound)
	}

	var res web.JSONError
	decode(t, recorder, &res)

	if res.Message != domain.ErrCryptocurrencyNotFound.Error() {
		t.Errorf("res.Message=%q, want %q", res.Message, domain.ErrCryptocurrencyNotFound.Error())
	}
}

func TestSwapIsListedInTransactions(t *testing.T) {
	server := newServer(t, testConfig())

	recorder := do(t, server, http.MethodPost, "/api/swap", gin.H{
		"fromCryptoId": 1,
		"toCryptoId":   2,
		"amount":       "5",
		"userId":       1,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	var res domain.SwapResult
	decode(t, recorder, &res)

	if !res.Success {
		t.Errorf("res.Success = false, want true")
	}

	wantTx := domain.Transaction{
		ID:        1,
		UserID:    1,
		Type:      domain.TransactionSwap,
		CryptoID:  1,
		Amount:    "5",
		Status:    domain.TransactionCompleted,
		CreatedAt: time.Now(),
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Minute)
	if diff := cmp.Diff(wantTx, res.Transaction, compareCreatedAt); diff != "" {
		t.Errorf("res.Transaction mismatch (-want +got):\n%s", diff)
	}

	recorder = do(t, server, http.MethodGet, "/api/users/1/transactions", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	var txs []domain.Transaction
	decode(t, recorder, &txs)

	if diff := cmp.Diff([]domain.Transaction{res.Transaction}, txs, compareCreatedAt); diff != "" {
		t.Errorf("transactions mismatch (-want +got):\n%s", diff)
	}
}

func TestSwapRejectsNonPositiveAmount(t *testing.T) {
	server := newServer(t, testConfig())

	for _, amount := range []string{"0", "-1"} {
		recorder := do(t, server, http.MethodPost, "/api/swap", gin.H{
			"fromCryptoId": 1,
			"toCryptoId":   2,
			"amount":       amount,
			"userId":       1,
		})
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("amount %s: status code got %v, want %v", amount, recorder.Code, http.StatusBadRequest)
		}
	}

	if n := server.Store.Transactions.Len(); n != 0 {
		t.Errorf("transactions stored = %d, want 0", n)
	}
}

func TestCreateOrderWithoutAmount(t *testing.T) {
	server := newServer(t, testConfig())

	recorder := do(t, server, http.MethodPost, "/api/orders", gin.H{
		"userId":       1,
		"type":         "buy",
		"fromCryptoId": 1,
		"toCryptoId":   2,
		"price":        "42350.00",
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusBadRequest)
	}

	var res web.JSONError
	decode(t, recorder, &res)

	if res.Message != "amount is required" {
		t.Errorf(`res.Message=%q, want "amount is required"`, res.Message)
	}

	recorder = do(t, server, http.MethodGet, "/api/users/1/orders", nil)
	if got := strings.TrimSpace(recorder.Body.String()); got != "[]" {
		t.Errorf("orders of user 1 = %s, want []", got)
	}
}

func TestTransactionLifecycle(t *testing.T) {
	server := newServer(t, testConfig())

	body := gin.H{"userId": 1, "type": "buy", "cryptoId": 2, "amount": "1.5", "price": "2680.50"}

	for want := int32(1); want <= 2; want++ {
		recorder := do(t, server, http.MethodPost, "/api/transactions", body)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusCreated)
		}

		var tx domain.Transaction
		decode(t, recorder, &tx)

		if tx.ID != want {
			t.Errorf("tx.ID = %d, want %d", tx.ID, want)
		}
		if tx.Status != domain.TransactionPending {
			t.Errorf("tx.Status = %q, want %q", tx.Status, domain.TransactionPending)
		}
	}

	recorder := do(t, server, http.MethodPatch, "/api/transactions/2", gin.H{"status": "completed"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	recorder = do(t, server, http.MethodGet, "/api/transactions/2", nil)

	var tx domain.Transaction
	decode(t, recorder, &tx)

	if tx.Status != domain.TransactionCompleted || tx.Amount != "1.5" {
		t.Errorf("tx = %+v, want completed with amount 1.5", tx)
	}

	recorder = do(t, server, http.MethodPatch, "/api/transactions/3", gin.H{"status": "completed"})
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Status code of unknown transaction: got %v, want %v", recorder.Code, http.StatusNotFound)
	}
}

func TestDuplicateUserIsRejected(t *testing.T) {
	server := newServer(t, testConfig())

	recorder := do(t, server, http.MethodPost, "/api/users", gin.H{
		"username":  "alexchen",
		"password":  "password123",
		"email":     "someone@else.com",
		"firstName": "Alex",
		"lastName":  "Chen",
	})
	if recorder.Code != http.StatusConflict {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusConflict)
	}

	if n := server.Store.Users.Len(); n != 1 {
		t.Errorf("users stored = %d, want 1", n)
	}

	recorder = do(t, server, http.MethodPost, "/api/users", gin.H{
		"username":  "mariarossi",
		"password":  "secret42",
		"email":     "maria@rossi.it",
		"firstName": "Maria",
		"lastName":  "Rossi",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusCreated)
	}

	var user domain.User
	decode(t, recorder, &user)

	if user.ID != 2 || user.TotalBalance != "0" || user.AvailableBalance != "0" {
		t.Errorf("user = %+v, want id 2 with zero balances", user)
	}
}

func TestAssets(t *testing.T) {
	server := newServer(t, testConfig())
	user := test.SeedUser(t, server.Store)

	body := gin.H{"userId": user.ID, "cryptoId": 1, "balance": "0.25"}

	recorder := do(t, server, http.MethodPost, "/api/assets", body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusCreated)
	}

	var asset domain.UserAsset
	decode(t, recorder, &asset)

	want := domain.UserAsset{ID: 1, UserID: user.ID, CryptoID: 1, Balance: "0.25", LockedBalance: "0"}
	if diff := cmp.Diff(want, asset); diff != "" {
		t.Errorf("asset mismatch (-want +got):\n%s", diff)
	}

	recorder = do(t, server, http.MethodPost, "/api/assets", body)
	if recorder.Code != http.StatusConflict {
		t.Errorf("Status code of duplicate asset: got %v, want %v", recorder.Code, http.StatusConflict)
	}

	test.SeedAsset(t, server.Store, 1, 2, "3")

	recorder = do(t, server, http.MethodGet, "/api/users/1/assets", nil)

	var assets []domain.UserAsset
	decode(t, recorder, &assets)

	if len(assets) != 1 || assets[0].CryptoID != 2 {
		t.Errorf("assets of user 1 = %+v, want only the ETH asset", assets)
	}
}

func TestCryptocurrencyUpdateStampsUpdatedAt(t *testing.T) {
	server := newServer(t, testConfig())
	crypto := test.SeedCryptocurrency(t, server.Store)

	url := fmt.Sprintf("/api/cryptocurrencies/%d", crypto.ID)

	time.Sleep(5 * time.Millisecond)

	recorder := do(t, server, http.MethodPatch, url, gin.H{"price": "1.01"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	var got domain.Cryptocurrency
	decode(t, recorder, &got)

	if got.Price != "1.01" || got.Symbol != crypto.Symbol {
		t.Errorf("got = %+v, want price 1.01 and symbol %s", got, crypto.Symbol)
	}

	if !got.UpdatedAt.After(crypto.UpdatedAt) {
		t.Errorf("got.UpdatedAt = %v, want after %v", got.UpdatedAt, crypto.UpdatedAt)
	}
}

func TestOrdersOfUser(t *testing.T) {
	server := newServer(t, testConfig())
	other := test.SeedUser(t, server.Store)

	mine := test.SeedOrder(t, server.Store, 1, 1, 2)
	test.SeedOrder(t, server.Store, other.ID, 2, 1)

	recorder := do(t, server, http.MethodGet, "/api/users/1/orders", nil)

	var orders []domain.Order
	decode(t, recorder, &orders)

	if diff := cmp.Diff([]domain.Order{mine}, orders, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", diff)
	}

	recorder = do(t, server, http.MethodPatch, "/api/orders/99", gin.H{"status": "cancelled"})
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Status code of unknown order: got %v, want %v", recorder.Code, http.StatusNotFound)
	}
}

func TestTransactionsOfUser(t *testing.T) {
	server := newServer(t, testConfig())
	other := test.SeedUser(t, server.Store)

	mine := test.SeedTransactions(t, server.Store, 3, 1, 1)
	test.SeedTransactions(t, server.Store, 2, other.ID, 2)

	recorder := do(t, server, http.MethodGet, "/api/users/1/transactions", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	var got []domain.Transaction
	decode(t, recorder, &got)

	if diff := cmp.Diff(mine, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("transactions mismatch (-want +got):\n%s", diff)
	}

	recorder = do(t, server, http.MethodGet, fmt.Sprintf("/api/users/%d/transactions", other.ID+1), nil)
	if got := recorder.Body.String(); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestSeedDisabled(t *testing.T) {
	config := testConfig()
	config.SeedData = false

	server := newServer(t, config)

	recorder := do(t, server, http.MethodGet, "/api/cryptocurrencies", nil)
	if got := recorder.Body.String(); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newServer(t, testConfig())

	recorder := do(t, server, http.MethodGet, "/api/wallets", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusNotFound)
	}
}

func TestRateLimit(t *testing.T) {
	config := testConfig()
	config.RateLimitRPS = 0.001
	config.RateLimitBurst = 2

	server := newServer(t, config)

	for i := 0; i < 2; i++ {
		if recorder := do(t, server, http.MethodGet, "/api/cryptocurrencies", nil); recorder.Code != http.StatusOK {
			t.Fatalf("request %d: status code got %v, want %v", i, recorder.Code, http.StatusOK)
		}
	}

	recorder := do(t, server, http.MethodGet, "/api/cryptocurrencies", nil)
	if recorder.Code != http.StatusTooManyRequests {
		t.Errorf("Status code: got %v, want %v", recorder.Code, http.StatusTooManyRequests)
	}
}

func TestCORS(t *testing.T) {
	config := testConfig()
	config.CORSAllowedOrigins = []string{"http://localhost:5173"}

	server := newServer(t, config)

	req, err := http.NewRequest(http.MethodGet, "/api/cryptocurrencies", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:5173")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the frontend origin", got)
	}
}
