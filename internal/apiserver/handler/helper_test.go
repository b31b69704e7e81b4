package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	jsvc "github.com/distrilink/fieldsales/internal/auth/jwt"
)

type testServer struct {
	router *gin.Engine
	db     database.Database
	jwt    *jsvc.Service

	admin    *database.User
	customer *database.User
}

// newTestServer builds a full router over an in-memory store with one Admin
// and one Customer account seeded.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := mustNewJWTService()
	h := NewHandler(db, svc, zap.NewNop())
	r := gin.New()
	h.RegisterRoutes(r)

	ctx := context.Background()
	adminRole := &database.Role{RoleName: database.RoleAdmin}
	customerRole := &database.Role{RoleName: database.RoleCustomer}
	require.NoError(t, db.CreateRole(ctx, adminRole))
	require.NoError(t, db.CreateRole(ctx, customerRole))

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &database.User{Username: "root", FullName: "Root Admin", Password: string(hashed), RoleID: adminRole.ID, IsActive: true}
	customer := &database.User{Username: "alice", FullName: "Alice B", Password: string(hashed), RoleID: customerRole.ID, IsActive: true}
	require.NoError(t, db.CreateUser(ctx, admin))
	require.NoError(t, db.CreateUser(ctx, customer))

	return &testServer{router: r, db: db, jwt: svc, admin: admin, customer: customer}
}

func (ts *testServer) tokenFor(t *testing.T, user *database.User, role string) string {
	t.Helper()
	token, err := ts.jwt.GenerateToken(user.ID, user.Username, role)
	require.NoError(t, err)
	return token
}

func (ts *testServer) adminToken(t *testing.T) string {
	return ts.tokenFor(t, ts.admin, database.RoleAdmin)
}

func (ts *testServer) customerToken(t *testing.T) string {
	return ts.tokenFor(t, ts.customer, database.RoleCustomer)
}

// do runs a request against the test router. A non-empty token is attached
// as a Bearer credential; a non-nil body is JSON encoded.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, (&url.URL{Path: path}).RequestURI(), reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func itoa(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func uintPtr(v uint) *uint        { return &v }

// seedProductInput returns a valid product payload with the given name.
func seedProductInput(name string) map[string]any {
	return map[string]any{
		"name":             name,
		"product_code":     "PC-" + name,
		"productVolume":    "500ml",
		"price":            120.0,
		"adoPrice":         100.0,
		"mdPrice":          95.0,
		"sdPrice":          90.0,
		"distributorPrice": 85.0,
		"status":           true,
	}
}
