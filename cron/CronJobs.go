package cron

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"

	"optifolio.app/services"
)

// StartScheduler loads the FX rates once at startup and keeps them fresh
// with a daily refresh shortly after midnight, when a new calendar-day cache
// key takes over.
func StartScheduler() {
	LoadData()

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 5 0 * * *", func() {
		LoadData()
	})
	if err != nil {
		log.Errorf("Failed to start cron job: %v", err)
		return
	}

	c.Start()
}

func LoadData() {
	log.Info("Starting FX rate refresh...")
	if err := services.Fx.Refresh(); err != nil {
		log.Warnf("Warning: failed to refresh FX rates: %v", err)
	}
	log.Info("Finished FX rate refresh")
}
