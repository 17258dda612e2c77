package jobs

import (
	"log"
	"time"

	"hotelhub/utils"

	"github.com/robfig/cron/v3"
)

// NoShowSweeper định nghĩa interface cho việc quét các đơn quá hạn nhận phòng
type NoShowSweeper interface {
	SweepNoShow(now time.Time) (int, error)
}

var noShowSweeper NoShowSweeper

// SetNoShowSweeper thiết lập implementation cho NoShowSweeper
func SetNoShowSweeper(sweeper NoShowSweeper) {
	noShowSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Quét NoShow lúc 0h mỗi ngày: đơn Pending đã qua ngày nhận phòng
	// bị đánh dấu không đến và phòng được trả về trạng thái trống
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		if noShowSweeper == nil {
			log.Printf("Lỗi: NoShowSweeper chưa được thiết lập")
			return
		}
		marked, err := noShowSweeper.SweepNoShow(now)
		if err != nil {
			utils.LogError("Lỗi khi quét đơn quá hạn nhận phòng: %v", err)
			return
		}
		if marked > 0 {
			utils.LogInfo("Đã đánh dấu %d đơn không đến lúc: %v", marked, now)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
