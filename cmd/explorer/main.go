package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"doudizhu/internal/config"
	"doudizhu/internal/logger"
	"doudizhu/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		cfg = config.Default()
	}

	if err := logger.Init(); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	model := ui.NewExplorerModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动牌型浏览器时出错: %v", err)
	}
}
