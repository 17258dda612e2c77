package controllers

import (
	"sort"
	"strings"
	"time"

	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"
	"hotelhub/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) CustomerController {
	return CustomerController{DB: db}
}

func toCustomerResponse(cu *models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:             cu.ID,
		Code:           cu.Code,
		Name:           cu.Name,
		Email:          cu.Email,
		PhoneNumber:    cu.PhoneNumber,
		IdentityNumber: cu.IdentityNumber,
		Address:        cu.Address,
		Gender:         cu.Gender,
		DateOfBirth:    cu.DateOfBirth,
		CreatedAt:      cu.CreatedAt.Format(time.RFC3339),
	}
}

// normalizeQuery bỏ dấu tiếng Việt và đưa về chữ thường để so khớp
func normalizeQuery(input string) string {
	return strings.ToLower(unidecode.Unidecode(input))
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// GetCustomers liệt kê khách hàng, hỗ trợ tìm mờ theo tên
// (gõ không dấu hoặc gõ sai vài ký tự vẫn tìm được)
func (cc CustomerController) GetCustomers(c *gin.Context) {
	page, limit := parsePagination(c)
	name := c.Query("name")
	identity := c.Query("identityNumber")
	phone := c.Query("phone")

	query := cc.DB.Order("created_at DESC")
	if identity != "" {
		query = query.Where("identity_number = ?", identity)
	}
	if phone != "" {
		query = query.Where("phone_number = ?", phone)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		response.ServerError(c)
		return
	}

	if name != "" {
		normalized := normalizeQuery(name)

		names := make([]string, 0, len(customers))
		byName := make(map[string][]int)
		for i := range customers {
			key := normalizeQuery(customers[i].Name)
			names = append(names, key)
			byName[key] = append(byName[key], i)
		}

		type scored struct {
			index int
			score float64
		}
		var matches []scored

		cm := closestmatch.New(names, []int{2, 3})
		closest := cm.ClosestN(normalized, 10)

		seen := make(map[int]bool)
		for _, candidate := range closest {
			for _, idx := range byName[candidate] {
				if seen[idx] {
					continue
				}
				score := calculateSimilarity(normalized, candidate)
				if strings.Contains(candidate, normalized) {
					score = 1.0
				}
				if score >= 0.4 {
					matches = append(matches, scored{index: idx, score: score})
					seen[idx] = true
				}
			}
		}

		sort.Slice(matches, func(i, j int) bool {
			return matches[i].score > matches[j].score
		})

		filtered := make([]models.Customer, 0, len(matches))
		for _, m := range matches {
			filtered = append(filtered, customers[m.index])
		}
		customers = filtered
	}

	pageItems, total := paginate(customers, page, limit)
	result := make([]dto.CustomerResponse, 0, len(pageItems))
	for i := range pageItems {
		result = append(result, toCustomerResponse(&pageItems[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetCustomerDetail trả về chi tiết một khách hàng
func (cc CustomerController) GetCustomerDetail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toCustomerResponse(&customer))
}

// CreateCustomer tạo hồ sơ khách hàng với mã ngẫu nhiên (luồng tại quầy)
func (cc CustomerController) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer := models.Customer{
		Name:           req.Name,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		IdentityNumber: req.IdentityNumber,
		Address:        req.Address,
		Gender:         req.Gender,
	}
	if req.DateOfBirth != "" {
		customer.DateOfBirth = req.DateOfBirth
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.FromError(c, err)
		return
	}

	code, err := services.RandomCustomerCode()
	if err != nil {
		response.ServerError(c)
		return
	}
	customer.Code = code

	if err := cc.DB.Create(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCustomerResponse(&customer))
}

// UpdateCustomer cập nhật hồ sơ khách hàng
func (cc CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = *req.PhoneNumber
	}
	if req.IdentityNumber != nil {
		customer.IdentityNumber = *req.IdentityNumber
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Gender != nil {
		customer.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		customer.DateOfBirth = *req.DateOfBirth
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.FromError(c, err)
		return
	}

	if err := cc.DB.Save(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCustomerResponse(&customer))
}

// DeleteCustomer xóa hồ sơ khách hàng chưa có đặt phòng
func (cc CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var count int64
	if err := cc.DB.Model(&models.Booking{}).Where("customer_id = ?", id).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Khách hàng đã có đặt phòng, không thể xóa")
		return
	}

	result := cc.DB.Delete(&models.Customer{}, id)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, nil)
}
