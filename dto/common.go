package dto

import "time"

// DateLayout là định dạng ngày dùng chung cho request/response
const DateLayout = "02/01/2006"

// ParseDate đọc ngày theo định dạng dd/mm/yyyy
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate xuất ngày theo định dạng dd/mm/yyyy
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
