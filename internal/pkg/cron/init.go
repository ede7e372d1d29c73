package cron

import log "log/slog"

// InitCron 注册并启动定时任务，目前只有每日打卡快照一项
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	log.Info("定时任务注册完成", "jobs", len(mgr.engine.Entries()))
	return nil
}
