package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB là kết nối gorm dùng chung của toàn ứng dụng
var DB *gorm.DB

// dsnForEnv dựng chuỗi kết nối postgres theo môi trường.
// Biến kết nối của từng môi trường mang tiền tố DEV_ / QC_ / PROD_.
func dsnForEnv(env string) (string, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV_"
	case "qc":
		prefix = "QC_"
	case "prod":
		prefix = "PROD_"
	default:
		return "", fmt.Errorf("môi trường không hợp lệ: %q", env)
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=Asia/Ho_Chi_Minh",
		os.Getenv(prefix+"DB_HOST"),
		os.Getenv(prefix+"DB_USER"),
		os.Getenv(prefix+"DB_PASSWORD"),
		os.Getenv(prefix+"DB_NAME"),
		os.Getenv(prefix+"DB_PORT"),
	)
	return dsn, nil
}

func ConnectDB() {
	dsn, err := dsnForEnv(os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("Không dựng được cấu hình DB: %v", err)
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Không kết nối được DB: %v", err)
	}

	log.Println("Đã kết nối DB")
}
