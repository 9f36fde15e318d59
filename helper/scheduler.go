package helper

import (
	"fmt"
	"log"
	"time"
	"vietqr_checkout/config"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"
	"vietqr_checkout/templates"
	"vietqr_checkout/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var (
	pendingMonitor  *cron.Cron
	digestScheduler gocron.Scheduler
)

var ictZone = time.FixedZone("ICT", 7*3600)

// ReportStalePendingOrders đếm các đơn VietQR vẫn pending quá lâu. Chỉ đọc, không đổi trạng thái.
func ReportStalePendingOrders(db *gorm.DB, now time.Time, after time.Duration) (int64, error) {
	var count int64
	err := db.Model(&model.Order{}).
		Where("payment_method = ? AND payment_status = ? AND created_at < ?",
			constants.PAYMENT_METHOD_VIETQR, constants.PAYMENT_STATUS_PENDING, now.Add(-after).UTC()).
		Count(&count).Error
	return count, err
}

func StartPendingOrderMonitor(db *gorm.DB) {
	after := config.Duration("PENDING_ALERT_AFTER", 30*time.Minute)
	pendingMonitor = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút
	_, err := pendingMonitor.AddFunc("*/5 * * * *", func() {
		count, err := ReportStalePendingOrders(db, time.Now(), after)
		if err != nil {
			log.Printf("Lỗi kiểm tra đơn VietQR pending: %v", err)
			return
		}
		if count > 0 {
			log.Printf("Có %d đơn VietQR chờ xác nhận chuyển khoản quá %s", count, after)
		}
	})
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	pendingMonitor.Start()
	log.Println("Scheduler đơn VietQR pending đã khởi động (mỗi 5 phút)")
}

type DailyDigest struct {
	Day     time.Time
	Count   int64
	Pending int64
	Total   float64
}

// BuildDailyDigest tổng hợp đơn VietQR tạo trong ngày day (theo giờ ICT)
func BuildDailyDigest(db *gorm.DB, day time.Time) (DailyDigest, error) {
	local := day.In(ictZone)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, ictZone)
	end := start.AddDate(0, 0, 1)

	base := func() *gorm.DB {
		return db.Model(&model.Order{}).
			Where("payment_method = ? AND created_at >= ? AND created_at < ?",
				constants.PAYMENT_METHOD_VIETQR, start.UTC(), end.UTC())
	}

	var agg struct {
		Count int64
		Total float64
	}
	if err := base().Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total").Scan(&agg).Error; err != nil {
		return DailyDigest{}, err
	}

	var pending int64
	if err := base().Where("payment_status = ?", constants.PAYMENT_STATUS_PENDING).Count(&pending).Error; err != nil {
		return DailyDigest{}, err
	}

	return DailyDigest{Day: start, Count: agg.Count, Pending: pending, Total: agg.Total}, nil
}

func sendDailyDigest(db *gorm.DB) {
	log.Println("[CRON] VietQR daily digest triggered")

	digest, err := BuildDailyDigest(db, time.Now().In(ictZone).AddDate(0, 0, -1))
	if err != nil {
		log.Printf("Lỗi tổng hợp đơn VietQR: %v", err)
		return
	}
	log.Printf("VietQR %s: %d đơn, %d pending, tổng %s",
		digest.Day.Format("02/01/2006"), digest.Count, digest.Pending, utils.FormatVND(digest.Total))

	to := config.Config("ADMIN_EMAIL")
	if to == "" || !utils.MailEnabled() {
		return
	}
	body, err := utils.RenderEmail(templates.DailyDigestEmail, utils.DailyDigestEmailData{
		Day:          digest.Day.Format("02/01/2006"),
		Count:        digest.Count,
		Pending:      digest.Pending,
		TotalDisplay: utils.FormatVND(digest.Total),
	})
	if err != nil {
		log.Printf("Lỗi render email tổng hợp: %v", err)
		return
	}
	if err := utils.SendMail(to, fmt.Sprintf("VietQR digest %s", digest.Day.Format("02/01/2006")), body); err != nil {
		log.Printf("Lỗi gửi email tổng hợp: %v", err)
	}
}

func StartDailyDigestScheduler(db *gorm.DB) {
	s, err := gocron.NewScheduler(gocron.WithLocation(ictZone))
	if err != nil {
		log.Printf("Lỗi khởi tạo gocron: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(sendDailyDigest, db),
	)
	if err != nil {
		log.Printf("Lỗi tạo job tổng hợp VietQR: %v", err)
		return
	}

	digestScheduler = s
	s.Start()
	log.Println("VietQR digest scheduler started (00:05 ICT)")
}

// StopSchedulers dừng các scheduler khi tắt server
func StopSchedulers() {
	if pendingMonitor != nil {
		pendingMonitor.Stop()
	}
	if digestScheduler != nil {
		if err := digestScheduler.Shutdown(); err != nil {
			log.Printf("Lỗi dừng gocron: %v", err)
		}
	}
	log.Println("Scheduler đã dừng")
}
