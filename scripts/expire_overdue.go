// 手动触发超时测评过期脚本
//
// 该功能已集成到主应用的后台定时任务中（按 lifecycle.expiry_sweep_seconds 周期执行）。
// 此脚本仅用于手动触发，例如定时任务停止后需要立即清理积压数据时。
//
// 用法: go run scripts/expire_overdue.go

package main

import (
	"log"

	"hire_assess_backend/internal/config"
	"hire_assess_backend/internal/repository"
	"hire_assess_backend/internal/service"
	"hire_assess_backend/pkg/database"
	"hire_assess_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	svc := service.NewCandidateAssessmentService(
		repository.NewCandidateAssessmentRepository(db),
		repository.NewUserRepository(db),
		repository.NewAssessmentRepository(db),
		repository.NewQuestionRepository(db),
		nil,
	)

	log.Println("手动触发过期清理任务...")
	if err := svc.ExpireOverdue(); err != nil {
		log.Fatalf("过期清理失败: %v", err)
	}
	log.Println("完成！")
}
