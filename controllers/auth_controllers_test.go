package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelhub/config"
	"hotelhub/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Position{},
		&models.Customer{},
		&models.User{},
		&models.Notification{},
	))
	config.DB = db

	router := gin.New()
	router.POST("/auth/register", Register)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterCreatesAccountWithProfile(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(t, router, "/auth/register", gin.H{
		"name":        "Nguyễn Văn A",
		"email":       "a@example.com",
		"password":    "matkhau123",
		"phoneNumber": "0912345678",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "a@example.com").First(&user).Error)
	assert.Regexp(t, `^NV\d{3}$`, user.Code)
	require.NotNil(t, user.CustomerID)

	var customer models.Customer
	require.NoError(t, config.DB.First(&customer, *user.CustomerID).Error)
	assert.Equal(t, "Nguyễn Văn A", customer.Name)
	assert.Regexp(t, `^KH\d{3}$`, customer.Code)
}

func TestRegisterSucceedsWhenProfileWriteFails(t *testing.T) {
	router := setupAuthRouter(t)

	// Bảng hồ sơ khách hàng hỏng: bước gắn hồ sơ sẽ lỗi,
	// việc tạo tài khoản vẫn phải thành công
	require.NoError(t, config.DB.Migrator().DropTable(&models.Customer{}))

	w := postJSON(t, router, "/auth/register", gin.H{
		"name":        "Trần Thị B",
		"email":       "b@example.com",
		"password":    "matkhau123",
		"phoneNumber": "0987654321",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "b@example.com").First(&user).Error)
	assert.Nil(t, user.CustomerID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	router := setupAuthRouter(t)

	body := gin.H{
		"name":        "Nguyễn Văn A",
		"email":       "a@example.com",
		"password":    "matkhau123",
		"phoneNumber": "0912345678",
	}
	require.Equal(t, http.StatusOK, postJSON(t, router, "/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, router, "/auth/register", body).Code)
}
